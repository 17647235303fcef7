package lemma

import "testing"

func TestNormalizeGenericPipeline(t *testing.T) {
	t.Parallel()

	n := New()
	cases := []struct {
		name     string
		surface  string
		language string
		want     string
	}{
		{"lowercases", "Bonjour", "xx", "bonjour"},
		{"trims punctuation", "«mot»", "xx", "mot"},
		{"trims whitespace", "  chat  ", "xx", "chat"},
		{"width folds fullwidth", "ｗｏｒｄ", "xx", "word"},
		{"collapses interior spaces", "a   b", "xx", "a b"},
		{"empty in empty out", "", "fr", ""},
		{"punctuation only", "!!!", "fr", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := n.Normalize(tc.surface, tc.language); got != tc.want {
				t.Fatalf("Normalize(%q, %q) = %q, want %q", tc.surface, tc.language, got, tc.want)
			}
		})
	}
}

func TestNormalizeFrenchFolding(t *testing.T) {
	t.Parallel()

	n := New()
	cases := []struct {
		surface string
		want    string
	}{
		{"parlé", "parler"},
		{"parle", "parler"},
		{"parlait", "parler"},
		{"parlons", "parler"},
		{"parlées", "parler"},
		{"parler", "parler"}, // infinitive untouched
	}
	for _, tc := range cases {
		if got := n.Normalize(tc.surface, "fr"); got != tc.want {
			t.Errorf("Normalize(%q, fr) = %q, want %q", tc.surface, got, tc.want)
		}
	}
}

func TestNormalizeEnglishFolding(t *testing.T) {
	t.Parallel()

	n := New()
	cases := []struct {
		surface string
		want    string
	}{
		{"cats", "cat"},
		{"carries", "carry"},
		{"walking", "walk"},
		{"walked", "walk"},
	}
	for _, tc := range cases {
		if got := n.Normalize(tc.surface, "en"); got != tc.want {
			t.Errorf("Normalize(%q, en) = %q, want %q", tc.surface, got, tc.want)
		}
	}
}

func TestNormalizeUnknownLanguagePassthrough(t *testing.T) {
	t.Parallel()

	n := New()
	if got := n.Normalize("parlé", "de"); got != "parlé" {
		t.Fatalf("unknown language should not fold, got %q", got)
	}
	if got := n.Normalize("Wort", ""); got != "wort" {
		t.Fatalf("blank language still cleans, got %q", got)
	}
}

func TestNormalizeRegionSubtags(t *testing.T) {
	t.Parallel()

	n := New()
	if got := n.Normalize("parlé", "fr-CA"); got != "parler" {
		t.Fatalf("fr-CA should use fr rules, got %q", got)
	}
	if got := n.Normalize("parlé", "FR"); got != "parler" {
		t.Fatalf("language codes are case insensitive, got %q", got)
	}
}

func TestNormalizeMinStemGuard(t *testing.T) {
	t.Parallel()

	n := New()
	// short tokens must not be folded into nonsense
	if got := n.Normalize("es", "es"); got != "es" {
		t.Fatalf("minStem guard failed, got %q", got)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	t.Parallel()

	n := New()
	a := n.Normalize("Parlé!", "fr")
	for i := 0; i < 100; i++ {
		if b := n.Normalize("Parlé!", "fr"); b != a {
			t.Fatalf("normalize not deterministic: %q vs %q", a, b)
		}
	}
}
