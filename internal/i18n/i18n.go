// Package i18n holds the translated HUD and banner strings. Messages are
// looked up by key; an unknown key is returned unchanged.
package i18n

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

// DefaultLanguage is used until SetLanguage is called.
const DefaultLanguage = "en"

var (
	mu       sync.RWMutex
	language = DefaultLanguage
	catalogs = map[string]*gotext.Po{}
)

// Languages lists the embedded catalogs.
func Languages() []string {
	return []string{"en", "fr"}
}

// SetLanguage switches the active catalog. Region suffixes such as
// "fr_FR.UTF-8" are accepted.
func SetLanguage(lang string) error {
	lang = normalize(lang)
	if _, err := catalog(lang); err != nil {
		return err
	}
	mu.Lock()
	language = lang
	mu.Unlock()
	return nil
}

// Language returns the active language code.
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return language
}

// T returns the catalog string for key. Strings that take values carry
// fmt verbs and are formatted by the caller.
func T(key string) string {
	po, err := catalog(Language())
	if err != nil {
		return key
	}
	return po.Get(key)
}

func catalog(lang string) (*gotext.Po, error) {
	mu.RLock()
	po, ok := catalogs[lang]
	mu.RUnlock()
	if ok {
		return po, nil
	}

	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("i18n: unsupported language %q", lang)
	}
	po = gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	catalogs[lang] = po
	mu.Unlock()
	return po, nil
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_.-"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" || lang == "c" || lang == "posix" {
		return DefaultLanguage
	}
	return lang
}
