// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "lexicore/internal/platform/errors"
	"lexicore/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds the singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations,
// json tag names, and the project's custom tags
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerLangCode(v, trans)
		registerModuleSource(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	var reader io.Reader = r.Body
	if o.MaxBytes > 0 {
		reader = io.LimitReader(r.Body, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().Validator.Struct(dst); err != nil {
		if inv, ok := err.(*validator.InvalidValidationError); ok {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := ValidationFieldAndMessage(err)
		return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
	}

	return dst, nil
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// custom tags

// registerLangCode validates a BCP-47 primary subtag like "fr" or "pt-BR"
func registerLangCode(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("lang_code", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		primary := s
		if i := strings.IndexAny(s, "-_"); i >= 0 {
			primary = s[:i]
		}
		if len(primary) < 2 || len(primary) > 3 {
			return false
		}
		for _, r := range primary {
			if r < 'a' || r > 'z' {
				if r < 'A' || r > 'Z' {
					return false
				}
			}
		}
		return true
	})
	_ = v.RegisterTranslation("lang_code", trans,
		func(ut ut.Translator) error {
			return ut.Add("lang_code", "{0} must be an ISO language code", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("lang_code", fe.Field())
			return msg
		},
	)
}

// registerModuleSource validates the producing learning activity
func registerModuleSource(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("module_source", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "cloze", "reading", "flashcard", "foundation":
			return true
		}
		return false
	})
	_ = v.RegisterTranslation("module_source", trans,
		func(ut ut.Translator) error {
			return ut.Add("module_source", "{0} must be one of cloze, reading, flashcard, foundation", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("module_source", fe.Field())
			return msg
		},
	)
}
