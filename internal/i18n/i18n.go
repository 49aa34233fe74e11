// Package i18n renders user-facing report strings in English or Russian
// from embedded locale tables.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Bundle holds the flattened message tables for all supported languages.
type Bundle struct {
	messages map[string]map[string]string // lang -> dotted key -> template
}

// Load parses the embedded locale files.
func Load() (*Bundle, error) {
	b := &Bundle{messages: make(map[string]map[string]string)}
	for _, lang := range []string{"en", "ru"} {
		raw, err := localeFS.ReadFile("locales/" + lang + ".yaml")
		if err != nil {
			return nil, eris.Wrapf(err, "i18n: read locale %s", lang)
		}
		var tree map[string]any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return nil, eris.Wrapf(err, "i18n: parse locale %s", lang)
		}
		flat := make(map[string]string)
		flatten("", tree, flat)
		b.messages[lang] = flat
	}
	return b, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}

// T renders a message by dotted key, substituting {name} placeholders from
// args. Unknown languages fall back to English; unknown keys render as the
// key itself so a missing translation is visible, not fatal.
func (b *Bundle) T(lang, key string, args map[string]any) string {
	msgs, ok := b.messages[lang]
	if !ok {
		msgs = b.messages["en"]
	}
	tmpl, ok := msgs[key]
	if !ok {
		if en, found := b.messages["en"][key]; found {
			tmpl = en
		} else {
			return key
		}
	}
	for name, val := range args {
		tmpl = strings.ReplaceAll(tmpl, "{"+name+"}", fmt.Sprintf("%v", val))
	}
	return tmpl
}

// Plural returns "N unit" with the unit form matching n in the given
// language. Units are locale table keys: "day", "class".
func (b *Bundle) Plural(lang, unit string, n int) string {
	form := "other"
	switch lang {
	case "ru":
		form = russianPlural(n)
	default:
		if n == 1 || n == -1 {
			form = "one"
		}
	}
	word := b.T(lang, "plural."+unit+"."+form, nil)
	return fmt.Sprintf("%d %s", n, word)
}

// russianPlural picks the Russian plural form (one/few/other) for n.
func russianPlural(n int) string {
	if n < 0 {
		n = -n
	}
	mod10 := n % 10
	mod100 := n % 100
	switch {
	case mod10 == 1 && mod100 != 11:
		return "one"
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return "few"
	default:
		return "other"
	}
}
