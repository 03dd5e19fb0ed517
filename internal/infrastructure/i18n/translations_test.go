package i18n

import "testing"

func TestTranslatorLocales(t *testing.T) {
	t.Parallel()

	tr := NewTranslator("en")
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "", want: "Project not found"},
		{locale: "en", want: "Project not found"},
		{locale: "pt-BR", want: "Projeto não encontrado"},
		{locale: "pt-BR,pt;q=0.9,en;q=0.8", want: "Projeto não encontrado"},
		{locale: "de", want: "Project not found"},
	}
	for _, tt := range tests {
		if got := tr.T(tt.locale, "errors.project_not_found", nil); got != tt.want {
			t.Fatalf("T(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestTranslatorTemplateData(t *testing.T) {
	t.Parallel()

	tr := NewTranslator("pt-BR")
	got := tr.T("", "validation.required", map[string]any{"Field": "email"})
	if got != "email é obrigatório" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslatorUnknownKey(t *testing.T) {
	t.Parallel()

	tr := NewTranslator("en")
	if got := tr.T("en", "errors.does_not_exist", nil); got != "errors.does_not_exist" {
		t.Fatalf("got %q, want key fallback", got)
	}
	if got := tr.T("en", "", nil); got != "" {
		t.Fatalf("empty key = %q", got)
	}
}

func TestNewTranslatorBadDefault(t *testing.T) {
	t.Parallel()

	tr := NewTranslator("not a locale!")
	if got := tr.T("", "errors.invalid_data", nil); got != "Invalid data" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveNegotiatesSupportedLanguage(t *testing.T) {
	t.Parallel()

	tr := NewTranslator("en")
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "pt", want: "pt-BR"},
		{locale: "fr-FR,pt-BR;q=0.5", want: "pt-BR"},
		{locale: "en-GB", want: "en"},
		{locale: "ja", want: "en"},
		{locale: ";;;", want: "en"},
	}
	for _, tt := range tests {
		if got := tr.resolve(tt.locale).String(); got != tt.want {
			t.Fatalf("resolve(%q) = %s, want %s", tt.locale, got, tt.want)
		}
	}
}
