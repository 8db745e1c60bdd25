package i18n

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// catalogFile mirrors the locale YAML layout:
//
//	language: en
//	strings:
//	  appTitle: "Discover DXB"
//	  ...
type catalogFile struct {
	Language string `yaml:"language"`
	Strings  Table  `yaml:"strings"`
}

// tables is loaded once at startup. A broken embedded catalog is a build
// defect, so loading panics instead of returning an error.
var tables = mustLoadFS(localeFS, "locales")

// LoadFS reads every `.yaml/.yml` catalog under dir in fsys and returns one
// table per supported language. It fails on unsupported or duplicate
// languages, unknown or blank keys, a malformed placeholder, and on any
// supported language left without a catalog.
func LoadFS(fsys fs.FS, dir string) (map[Lang]Table, error) {
	loaded := make(map[Lang]Table)
	err := fs.WalkDir(fsys, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		lang, table, err := decodeCatalog(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog %s: %w", path, err)
		}
		if _, ok := loaded[lang]; ok {
			return fmt.Errorf("catalog %s: duplicate language %q", path, lang)
		}
		loaded[lang] = table
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, lang := range Supported() {
		if _, ok := loaded[lang]; !ok {
			return nil, fmt.Errorf("no catalog for language %q", lang)
		}
	}
	return loaded, nil
}

func decodeCatalog(fsys fs.FS, path string) (Lang, Table, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", Table{}, err
	}
	var cf catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil {
		return "", Table{}, fmt.Errorf("yaml decode: %w", err)
	}
	if cf.Language == "" {
		return "", Table{}, fmt.Errorf("missing 'language' field")
	}
	lang := Lang(cf.Language)
	if !lang.Valid() {
		return "", Table{}, fmt.Errorf("unsupported language %q", cf.Language)
	}
	if err := validateTable(cf.Strings); err != nil {
		return "", Table{}, err
	}
	return lang, cf.Strings, nil
}

func validateTable(t Table) error {
	m := t.Map()
	for _, key := range Keys {
		v := m[key]
		if key == PlaceholderKey {
			if v != " " {
				return fmt.Errorf("key %s: placeholder must be a single space", key)
			}
			continue
		}
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("key %s: blank value", key)
		}
	}
	return nil
}

func mustLoadFS(fsys fs.FS, dir string) map[Lang]Table {
	loaded, err := LoadFS(fsys, dir)
	if err != nil {
		panic(err)
	}
	return loaded
}
