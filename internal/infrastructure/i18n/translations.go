package i18n

import (
	"embed"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"projecthub/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var supported = []struct {
	tag  language.Tag
	file string
}{
	{language.English, "active.en.toml"},
	{language.BrazilianPortuguese, "active.pt-BR.toml"},
}

var _ output.T = (*Translator)(nil)

// Translator renders API messages in the language negotiated from an
// Accept-Language value.
type Translator struct {
	bundle          *i18n.Bundle
	matcher         language.Matcher
	tags            []language.Tag
	defaultLanguage language.Tag
}

// NewTranslator loads the embedded message files. defaultLocale is used when
// a request names no supported language; an unparsable value means English.
func NewTranslator(defaultLocale string) *Translator {
	def, err := language.Parse(defaultLocale)
	if err != nil {
		log.Printf("⚠️ i18n: unknown default locale %q, using en", defaultLocale)
		def = language.English
	}

	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		if _, err := bundle.LoadMessageFileFS(localeFS, s.file); err != nil {
			log.Printf("❌ i18n: failed to load %s: %v", s.file, err)
			continue
		}
		tags = append(tags, s.tag)
	}

	return &Translator{
		bundle:          bundle,
		matcher:         language.NewMatcher(tags),
		tags:            tags,
		defaultLanguage: def,
	}
}

// resolve picks the supported language that best serves locale.
func (t *Translator) resolve(locale string) language.Tag {
	if locale == "" || len(t.tags) == 0 {
		return t.defaultLanguage
	}
	wanted, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(wanted) == 0 {
		return t.defaultLanguage
	}
	_, idx, conf := t.matcher.Match(wanted...)
	if conf == language.No {
		return t.defaultLanguage
	}
	return t.tags[idx]
}

// T renders key in the language negotiated from locale. A key missing from
// every message file is returned unchanged.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	lang := t.resolve(locale)
	localizer := i18n.NewLocalizer(t.bundle, lang.String(), t.defaultLanguage.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: no message %s for %s: %v", key, lang, err)
		return key
	}
	return msg
}
