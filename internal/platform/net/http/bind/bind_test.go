package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "lexicore/internal/platform/errors"
)

type samplePayload struct {
	UserID   string `json:"user_id" validate:"required,uuid4"`
	Language string `json:"language" validate:"required,lang_code"`
	Module   string `json:"module" validate:"required,module_source"`
	Word     string `json:"word" validate:"required,min=1"`
}

func TestParseJSONValid(t *testing.T) {
	t.Parallel()

	body := `{"user_id":"0f8fad5b-d9cb-469f-a165-70867728950e","language":"fr","module":"cloze","word":"parler"}`
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))

	got, err := ParseJSON[samplePayload](r)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Word != "parler" || got.Language != "fr" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("POST", "/", strings.NewReader(""))
	_, err := ParseJSON[samplePayload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error code, got %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	t.Parallel()

	body := `{"user_id":"0f8fad5b-d9cb-469f-a165-70867728950e","language":"fr","module":"cloze","word":"x","bogus":1}`
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	_, err := ParseJSON[samplePayload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error code, got %v", err)
	}
}

func TestParseJSONValidationFailure(t *testing.T) {
	t.Parallel()

	body := `{"user_id":"not-a-uuid","language":"fr","module":"cloze","word":"x"}`
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	_, err := ParseJSON[samplePayload](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error code, got %v", err)
	}
}

func TestLangCodeTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		lang string
		ok   bool
	}{
		{"fr", true},
		{"pt-BR", true},
		{"deu", true},
		{"f", false},
		{"fr1", false},
		{"", false},
	}
	for _, tc := range cases {
		body := `{"user_id":"0f8fad5b-d9cb-469f-a165-70867728950e","language":"` + tc.lang + `","module":"reading","word":"x"}`
		r := httptest.NewRequest("POST", "/", strings.NewReader(body))
		_, err := ParseJSON[samplePayload](r)
		if tc.ok && err != nil {
			t.Errorf("lang %q: unexpected error %v", tc.lang, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("lang %q: expected error", tc.lang)
		}
	}
}

func TestModuleSourceTag(t *testing.T) {
	t.Parallel()

	for _, m := range []string{"cloze", "reading", "flashcard", "foundation"} {
		body := `{"user_id":"0f8fad5b-d9cb-469f-a165-70867728950e","language":"fr","module":"` + m + `","word":"x"}`
		r := httptest.NewRequest("POST", "/", strings.NewReader(body))
		if _, err := ParseJSON[samplePayload](r); err != nil {
			t.Errorf("module %q: unexpected error %v", m, err)
		}
	}

	body := `{"user_id":"0f8fad5b-d9cb-469f-a165-70867728950e","language":"fr","module":"quiz","word":"x"}`
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	if _, err := ParseJSON[samplePayload](r); err == nil {
		t.Error("module quiz: expected error")
	}
}
