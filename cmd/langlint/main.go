package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/discoverdxb/appcore/cmd/langlint/checker"
)

func main() {
	dir := flag.String("d", "./i18n/locales", "directory of YAML locale catalogs")
	failOnError := flag.Bool("fail", false, "exit with code 1 if any issue found")
	flag.Parse()

	res, err := checker.CheckCatalogs(*dir)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	printResult(res)

	if *failOnError && hasIssues(res) {
		os.Exit(1)
	}
}

func printResult(res *checker.Result) {
	fmt.Println("=== LANG CHECK RESULT ===")
	fmt.Println("Languages:", res.Languages)

	if len(res.UnsupportedLangs) > 0 {
		fmt.Println("Unsupported languages:")
		for _, lang := range res.UnsupportedLangs {
			fmt.Println("  -", lang)
		}
	} else {
		fmt.Println("Unsupported languages: None")
	}

	for _, lang := range res.Languages {
		fmt.Printf("\n--- [%s] ---\n", lang)

		// missing keys
		if arr := res.MissingKeys[lang]; len(arr) > 0 {
			fmt.Println("Missing keys:")
			for _, k := range arr {
				fmt.Println("  -", k)
			}
		} else {
			fmt.Println("Missing keys: None")
		}

		// redundant
		if arr := res.RedundantKeys[lang]; len(arr) > 0 {
			fmt.Println("Redundant keys:")
			for _, k := range arr {
				fmt.Println("  -", k)
			}
		} else {
			fmt.Println("Redundant keys: None")
		}

		// blank values
		if arr := res.BlankValues[lang]; len(arr) > 0 {
			fmt.Println("Blank values:")
			for _, k := range arr {
				fmt.Println("  -", k)
			}
		} else {
			fmt.Println("Blank values: None")
		}
	}
}

func hasIssues(res *checker.Result) bool {
	if len(res.UnsupportedLangs) > 0 {
		return true
	}
	for _, arr := range res.MissingKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range res.RedundantKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range res.BlankValues {
		if len(arr) > 0 {
			return true
		}
	}
	return false
}
