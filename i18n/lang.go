package i18n

import "golang.org/x/text/language"

// Lang identifies one supported display language.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// Default is the language a fresh session starts in.
const Default = English

// Supported returns the closed set of languages, in declaration order.
func Supported() []Lang {
	return []Lang{English, Arabic}
}

// Valid reports whether l is a member of the supported set.
func (l Lang) Valid() bool {
	return l == English || l == Arabic
}

// Other returns the opposite element of the two-language cycle.
// An invalid receiver maps to Default.
func (l Lang) Other() Lang {
	switch l {
	case English:
		return Arabic
	case Arabic:
		return English
	default:
		return Default
	}
}

// Tag returns the BCP 47 tag for l, for host locale-negotiation layers.
func (l Lang) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

// matcher tags are in Supported() order so the match index maps back.
var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Match negotiates a supported Lang from caller preferences such as device
// locales or Accept-Language values. Unparseable or unmatched preferences
// fall back to Default.
func Match(prefs ...string) Lang {
	var tags []language.Tag
	for _, p := range prefs {
		if t, err := language.Parse(p); err == nil {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return Default
	}
	_, idx, _ := matcher.Match(tags...)
	return Supported()[idx]
}
