package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/discoverdxb/appcore/i18n"
)

type CatalogFile struct {
	Language string            `yaml:"language"`
	Strings  map[string]string `yaml:"strings"`
}

type Result struct {
	Languages        []string
	UnsupportedLangs []string
	MissingKeys      map[string][]string
	RedundantKeys    map[string][]string
	BlankValues      map[string][]string // lang -> keys with blank or malformed values
}

// CheckCatalogs performs:
//  1. key alignment against the canonical i18n.Keys (missing / redundant)
//  2. blank-value check; the placeholder key must be exactly one space
//  3. supported-language check
func CheckCatalogs(dir string) (*Result, error) {
	files, err := scanYAML(dir)
	if err != nil {
		return nil, err
	}

	canon := make(map[string]struct{}, len(i18n.Keys))
	for _, k := range i18n.Keys {
		canon[k] = struct{}{}
	}

	res := &Result{
		MissingKeys:   make(map[string][]string),
		RedundantKeys: make(map[string][]string),
		BlankValues:   make(map[string][]string),
	}

	for _, file := range files {
		lang := file.Language
		res.Languages = append(res.Languages, lang)

		if !i18n.Lang(lang).Valid() {
			res.UnsupportedLangs = append(res.UnsupportedLangs, lang)
		}

		for _, k := range i18n.Keys {
			v, ok := file.Strings[k]
			if !ok {
				res.MissingKeys[lang] = append(res.MissingKeys[lang], k)
				continue
			}
			if k == i18n.PlaceholderKey {
				if v != " " {
					res.BlankValues[lang] = append(res.BlankValues[lang], k)
				}
				continue
			}
			if strings.TrimSpace(v) == "" {
				res.BlankValues[lang] = append(res.BlankValues[lang], k)
			}
		}

		var redundant []string
		for k := range file.Strings {
			if _, ok := canon[k]; !ok {
				redundant = append(redundant, k)
			}
		}
		if len(redundant) > 0 {
			sort.Strings(redundant)
			res.RedundantKeys[lang] = redundant
		}
	}

	sort.Strings(res.Languages)
	sort.Strings(res.UnsupportedLangs)

	return res, nil
}

func scanYAML(dir string) ([]CatalogFile, error) {
	var res []CatalogFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		var cf CatalogFile
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return fmt.Errorf("yaml error %s: %w", path, err)
		}
		if cf.Language == "" {
			return fmt.Errorf("file %s missing 'language' field", path)
		}

		res = append(res, cf)
		return nil
	})

	return res, err
}
