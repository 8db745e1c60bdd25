package i18n

// Table is the complete, immutable set of display strings for one language.
// Every supported language carries a value for every field. EmptyDescription
// is a single space in all languages, kept as a layout placeholder so a
// detail card without a description still reserves its line.
type Table struct {
	AppTitle                string `yaml:"appTitle"`
	DiscoverButton          string `yaml:"discoverButton"`
	HomePage                string `yaml:"homePage"`
	Directory               string `yaml:"directory"`
	English                 string `yaml:"english"`
	Arabic                  string `yaml:"arabic"`
	DiscoverDxbDirectory    string `yaml:"discoverDxbDirectory"`
	Dubai                   string `yaml:"dubai"`
	AbuDhabi                string `yaml:"abuDhabi"`
	Sharjah                 string `yaml:"sharjah"`
	BurjKhalifa             string `yaml:"burjKhalifa"`
	BurjKhalifaDescription  string `yaml:"burjKhalifaDescription"`
	DubaiMall               string `yaml:"dubaiMall"`
	DubaiMallDescription    string `yaml:"dubaiMallDescription"`
	PalmJumeirah            string `yaml:"palmJumeirah"`
	PalmJumeirahDescription string `yaml:"palmJumeirahDescription"`
	NoTitle                 string `yaml:"noTitle"`
	NoImageFound            string `yaml:"noImageFound"`
	EmptyDescription        string `yaml:"emptyDescription"`
	Favorite                string `yaml:"favorite"`
	SelectLanguage          string `yaml:"selectLanguage"`
	SwitchLanguage          string `yaml:"switchLanguage"`
}

// PlaceholderKey maps to a single space in every language. Views render it
// where a description is intentionally blank.
const PlaceholderKey = "emptyDescription"

// Keys lists every canonical key, in Table field order.
var Keys = []string{
	"appTitle",
	"discoverButton",
	"homePage",
	"directory",
	"english",
	"arabic",
	"discoverDxbDirectory",
	"dubai",
	"abuDhabi",
	"sharjah",
	"burjKhalifa",
	"burjKhalifaDescription",
	"dubaiMall",
	"dubaiMallDescription",
	"palmJumeirah",
	"palmJumeirahDescription",
	"noTitle",
	"noImageFound",
	"emptyDescription",
	"favorite",
	"selectLanguage",
	"switchLanguage",
}

// Map returns a key -> value view of t, aligned with Keys.
func (t Table) Map() map[string]string {
	return map[string]string{
		"appTitle":                t.AppTitle,
		"discoverButton":          t.DiscoverButton,
		"homePage":                t.HomePage,
		"directory":               t.Directory,
		"english":                 t.English,
		"arabic":                  t.Arabic,
		"discoverDxbDirectory":    t.DiscoverDxbDirectory,
		"dubai":                   t.Dubai,
		"abuDhabi":                t.AbuDhabi,
		"sharjah":                 t.Sharjah,
		"burjKhalifa":             t.BurjKhalifa,
		"burjKhalifaDescription":  t.BurjKhalifaDescription,
		"dubaiMall":               t.DubaiMall,
		"dubaiMallDescription":    t.DubaiMallDescription,
		"palmJumeirah":            t.PalmJumeirah,
		"palmJumeirahDescription": t.PalmJumeirahDescription,
		"noTitle":                 t.NoTitle,
		"noImageFound":            t.NoImageFound,
		"emptyDescription":        t.EmptyDescription,
		"favorite":                t.Favorite,
		"selectLanguage":          t.SelectLanguage,
		"switchLanguage":          t.SwitchLanguage,
	}
}

// Resolve returns the string table for lang. It is total over the supported
// set; an invalid lang resolves as Default. Tables are values, so callers
// cannot mutate the catalog.
func Resolve(lang Lang) Table {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[Default]
}
