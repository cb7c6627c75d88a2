// Package i18n provides the CLI's translated surface strings. Bundles are
// embedded JSON, decoded once into a Catalog owned by the caller.
package i18n

import (
	"embed"
	"fmt"

	"github.com/knadh/koanf/parsers/json"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is the fallback for missing keys and unknown languages.
const DefaultLanguage = "en"

// SupportedLanguages lists the bundled locales.
var SupportedLanguages = []string{"en", "es", "ar"}

// Table holds the translations of one language.
type Table map[string]string

// Get returns the translation for key if present.
func (t Table) Get(key string) (string, bool) {
	s, ok := t[key]
	return s, ok
}

// Catalog resolves keys against a requested language with an explicit
// fallback chain: requested language, default language, the key itself.
type Catalog struct {
	lang     Table
	fallback Table
}

// Load builds a catalog for the given language code. Unknown codes fall back
// to the default language entirely.
func Load(lang string) (*Catalog, error) {
	fallback, err := loadTable(DefaultLanguage)
	if err != nil {
		return nil, err
	}
	table := fallback
	if lang != DefaultLanguage {
		if t, err := loadTable(lang); err == nil {
			table = t
		}
	}
	return &Catalog{lang: table, fallback: fallback}, nil
}

// Lookup returns the translated text for key.
func (c *Catalog) Lookup(key string) string {
	if s, ok := c.lang.Get(key); ok {
		return s
	}
	if s, ok := c.fallback.Get(key); ok {
		return s
	}
	return key
}

func loadTable(lang string) (Table, error) {
	raw, err := localeFS.ReadFile("locales/" + lang + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown language %q: %w", lang, err)
	}
	parsed, err := json.Parser().Unmarshal(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed locale %q: %w", lang, err)
	}
	table := make(Table, len(parsed))
	for key, value := range parsed {
		if s, ok := value.(string); ok {
			table[key] = s
		}
	}
	return table, nil
}

// Supported reports whether lang has a bundled locale.
func Supported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
