// Package validation checks request payloads against named rule-sets and
// reports failures per field, keyed by the JSON field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophpass/internal/rpc"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Rule-set names.
const (
	ForgotPassword = "FORGOT_PASSWORD"
	ResetPassword  = "RESET_PASSWORD"
	ChangePassword = "CHANGE_PASSWORD"
	Login          = "LOGIN"
)

// GeneralKey holds errors that do not belong to a single field.
const GeneralKey = "_"

// ruleSets maps a rule-set name to the request type it validates. The rules
// themselves are the validate tags of that type.
var ruleSets = map[string]reflect.Type{
	ForgotPassword: reflect.TypeOf(rpc.ForgotPasswordRequest{}),
	ResetPassword:  reflect.TypeOf(rpc.ResetPasswordRequest{}),
	ChangePassword: reflect.TypeOf(rpc.ChangePasswordRequest{}),
	Login:          reflect.TypeOf(rpc.LoginRequest{}),
}

type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("register translations: %w", err)
	}
	if err := registerNefield(v, trans); err != nil {
		return nil, err
	}
	if err := registerBcryptMax(v, trans); err != nil {
		return nil, err
	}

	return &Validator{validate: v, trans: trans}, nil
}

// Validate reports whether payload satisfies ruleSet. On failure errs maps
// field names to human readable messages. An unknown rule-set or a payload
// of the wrong type fails under GeneralKey.
func (v *Validator) Validate(ruleSet string, payload any) (bool, map[string][]string) {
	want, ok := ruleSets[ruleSet]
	if !ok {
		return false, general(fmt.Sprintf("unknown rule-set %s", ruleSet))
	}

	rv := reflect.ValueOf(payload)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Kind() == reflect.Pointer {
		return false, general("empty payload")
	}
	if rv.Type() != want {
		return false, general(fmt.Sprintf("payload %s does not match rule-set %s", rv.Type(), ruleSet))
	}

	err := v.validate.Struct(rv.Interface())
	if err == nil {
		return true, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, general(err.Error())
	}

	errs := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		errs[fe.Field()] = append(errs[fe.Field()], fe.Translate(v.trans))
	}
	return false, errs
}

func general(msg string) map[string][]string {
	return map[string][]string{GeneralKey: {msg}}
}

// registerNefield replaces the default nefield message, which names the Go
// field, with one naming the JSON field.
func registerNefield(v *validator.Validate, trans ut.Translator) error {
	err := v.RegisterTranslation("nefield", trans,
		func(ut ut.Translator) error {
			return ut.Add("nefield", "{0} must differ from {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("nefield", fe.Field(), jsonName(fe))
			return t
		},
	)
	if err != nil {
		return fmt.Errorf("register nefield translation: %w", err)
	}
	return nil
}

// bcryptMaxBytes is the longest input bcrypt accepts. It counts bytes, not
// runes.
const bcryptMaxBytes = 72

func registerBcryptMax(v *validator.Validate, trans ut.Translator) error {
	err := v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= bcryptMaxBytes
	})
	if err != nil {
		return fmt.Errorf("register bcryptmax: %w", err)
	}

	err = v.RegisterTranslation("bcryptmax", trans,
		func(ut ut.Translator) error {
			return ut.Add("bcryptmax", "{0} must be at most {1} bytes long", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("bcryptmax", fe.Field(), strconv.Itoa(bcryptMaxBytes))
			return t
		},
	)
	if err != nil {
		return fmt.Errorf("register bcryptmax translation: %w", err)
	}
	return nil
}

// jsonName resolves the JSON name of the field fe is compared against.
func jsonName(fe validator.FieldError) string {
	// StructNamespace is "Type.Field"; the comparison target lives on the same type.
	typeName, _, _ := strings.Cut(fe.StructNamespace(), ".")
	for _, t := range ruleSets {
		if t.Name() != typeName {
			continue
		}
		if f, ok := t.FieldByName(fe.Param()); ok {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			return name
		}
	}
	return fe.Param()
}
