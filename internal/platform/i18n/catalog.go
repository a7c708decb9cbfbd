// Package i18n exposes the translation catalog consumed by the settings
// screens: which languages the application can be displayed in.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language describes one supported application language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// Catalog lists the languages translations exist for.
type Catalog interface {
	Languages() []Language
}

// StaticCatalog serves the built-in language list with CLDR display names.
type StaticCatalog struct {
	languages []Language
}

// translated is the set of languages the application ships translations for.
var translated = []string{
	"en", "de", "es", "fr", "id", "it", "ja", "ko", "nl", "pt", "th", "tr", "zh",
}

// NewStaticCatalog builds the catalog once; display names come from
// golang.org/x/text rather than a hand-maintained table.
func NewStaticCatalog() *StaticCatalog {
	english := display.English.Languages()
	languages := make([]Language, 0, len(translated))
	for _, code := range translated {
		tag := language.Make(code)
		languages = append(languages, Language{
			Code:       code,
			Name:       english.Name(tag),
			NativeName: display.Self.Name(tag),
		})
	}
	return &StaticCatalog{languages: languages}
}

// Languages returns the supported languages in catalog order.
func (c *StaticCatalog) Languages() []Language {
	out := make([]Language, len(c.languages))
	copy(out, c.languages)
	return out
}
