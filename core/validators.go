package core

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	empIDTag   = "empid"
	empIDText  = "only letters, numbers, hyphens and underscores are allowed"
	empIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	personNameTag   = "personname"
	personNameText  = "only letters, spaces, hyphens and apostrophes are allowed"
	personNameRegex = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

	dateOnlyTag  = "dateonly"
	dateOnlyText = "must be a valid date in YYYY-MM-DD format"

	pastDateTag  = "pastdate"
	pastDateText = "cannot be a future date"

	attStatusTag  = "attstatus"
	attStatusText = "must be 'Present' or 'Absent'"

	requiredTag  = "required"
	requiredText = "this field is required"
)

func init() {
	Validate = validator.New()

	enLocale := en.New()
	Translator, _ = ut.New(enLocale, enLocale).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(empIDTag, empIDValidation)
	RegisterCustomTranslation(empIDTag, empIDText)

	_ = Validate.RegisterValidation(personNameTag, personNameValidation)
	RegisterCustomTranslation(personNameTag, personNameText)

	_ = Validate.RegisterValidation(dateOnlyTag, dateOnlyValidation)
	RegisterCustomTranslation(dateOnlyTag, dateOnlyText)

	_ = Validate.RegisterValidation(pastDateTag, pastDateValidation)
	RegisterCustomTranslation(pastDateTag, pastDateText)

	_ = Validate.RegisterValidation(attStatusTag, attStatusValidation)
	RegisterCustomTranslation(attStatusTag, attStatusText)

	RegisterCustomTranslation(requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// empIDValidation only allows alphanumeric characters, hyphens and underscores.
func empIDValidation(fl validator.FieldLevel) bool {
	return empIDRegex.MatchString(fl.Field().String())
}

// personNameValidation only allows letters, spaces, hyphens and apostrophes.
func personNameValidation(fl validator.FieldLevel) bool {
	return personNameRegex.MatchString(fl.Field().String())
}

// dateOnlyValidation checks the YYYY-MM-DD wire format.
func dateOnlyValidation(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// pastDateValidation rejects dates strictly after the current date. It runs
// after dateOnlyValidation so the value is known to parse.
func pastDateValidation(fl validator.FieldLevel) bool {
	d, err := time.Parse(DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.After(today)
}

// attStatusValidation accepts case-insensitive Present/Absent.
func attStatusValidation(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "present", "absent":
		return true
	}
	return false
}
