// Package i18n translates documentation strings using the gettext
// catalogs shipped by the chat client.
package i18n

import (
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

// Domain is the gettext domain of the client's message catalogs.
const Domain = "weechat"

// Translator translates source strings for one locale.
type Translator interface {
	Translate(s string) string
}

// Catalog hands out per-locale translators backed by a gettext catalog
// tree ({localedir}/{locale}/LC_MESSAGES/{domain}.po|.mo).
type Catalog struct {
	localedir string
	domain    string
}

// NewCatalog returns a catalog rooted at localedir. An empty localedir
// yields passthrough translators, keeping all strings untranslated.
func NewCatalog(localedir string) *Catalog {
	return &Catalog{localedir: localedir, domain: Domain}
}

// ForLocale returns the translator for one locale. Locales without a
// catalog file fall back to the source strings.
func (c *Catalog) ForLocale(locale string) Translator {
	if c.localedir == "" {
		return passthrough{}
	}
	l := gotext.NewLocale(c.localedir, locale)
	l.AddDomain(c.domain)
	return &localeTranslator{locale: l, domain: c.domain}
}

type passthrough struct{}

func (passthrough) Translate(s string) string { return s }

type localeTranslator struct {
	locale *gotext.Locale
	domain string
}

// Translate returns the catalog translation of s, or s unchanged when
// the catalog has none. Empty input stays empty.
func (t *localeTranslator) Translate(s string) string {
	if s == "" {
		return ""
	}
	if out := t.locale.GetD(t.domain, s); out != "" {
		return out
	}
	return s
}

// DirPrefix maps a locale to the language directory of the documentation
// tree ("fr_FR" -> "fr").
func DirPrefix(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err == nil {
		if base, _ := tag.Base(); base.String() != "und" {
			return base.String()
		}
	}
	if len(locale) >= 2 {
		return locale[:2]
	}
	return locale
}
