package output

// T exposes a minimal i18n contract for user-facing messages.
type T interface {
	// T renders the message identified by key for the given locale. locale is
	// either a language tag ("pt-BR") or a raw Accept-Language header value;
	// data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}
