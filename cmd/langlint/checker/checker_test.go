package checker

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCheckCatalogs(t *testing.T) {
	t.Run("CheckCatalogs_Clean", func(t *testing.T) {
		res, err := CheckCatalogs("../../../i18n/locales")
		if err != nil {
			t.Fatalf("CheckCatalogs: %v", err)
		}
		if len(res.Languages) != 2 {
			t.Fatalf("Languages = %v", res.Languages)
		}
		for lang, arr := range res.MissingKeys {
			if len(arr) > 0 {
				t.Fatalf("[%s] missing keys: %v", lang, arr)
			}
		}
		for lang, arr := range res.RedundantKeys {
			if len(arr) > 0 {
				t.Fatalf("[%s] redundant keys: %v", lang, arr)
			}
		}
		for lang, arr := range res.BlankValues {
			if len(arr) > 0 {
				t.Fatalf("[%s] blank values: %v", lang, arr)
			}
		}
		if len(res.UnsupportedLangs) > 0 {
			t.Fatalf("unsupported languages: %v", res.UnsupportedLangs)
		}
	})

	t.Run("CheckCatalogs_FindsIssues", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalog(t, dir, "fr.yaml", "language: fr\nstrings:\n  appTitle: \"Titre\"\n  legacyKey: \"x\"\n  favorite: \"\"\n  emptyDescription: \"n/a\"\n")

		res, err := CheckCatalogs(dir)
		if err != nil {
			t.Fatalf("CheckCatalogs: %v", err)
		}

		if len(res.UnsupportedLangs) != 1 || res.UnsupportedLangs[0] != "fr" {
			t.Fatalf("UnsupportedLangs = %v", res.UnsupportedLangs)
		}
		if len(res.MissingKeys["fr"]) == 0 {
			t.Fatal("expected missing keys")
		}
		if got := res.RedundantKeys["fr"]; len(got) != 1 || got[0] != "legacyKey" {
			t.Fatalf("RedundantKeys = %v", got)
		}
		blank := map[string]bool{}
		for _, k := range res.BlankValues["fr"] {
			blank[k] = true
		}
		if !blank["favorite"] {
			t.Fatalf("BlankValues = %v, want favorite flagged", res.BlankValues["fr"])
		}
		if !blank["emptyDescription"] {
			t.Fatalf("BlankValues = %v, want malformed placeholder flagged", res.BlankValues["fr"])
		}
	})

	t.Run("CheckCatalogs_MissingLanguageField", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalog(t, dir, "en.yaml", "strings:\n  appTitle: \"x\"\n")

		if _, err := CheckCatalogs(dir); err == nil {
			t.Fatal("expected error for catalog without language field")
		}
	})
}
