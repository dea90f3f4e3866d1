package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_br_translations "github.com/go-playground/validator/v10/translations/pt_BR"

	"github.com/RaczoOBY/bible-app/internal/model"
)

// Validator is the shared validator instance.
var Validator *validator.Validate

// Trans translates validation error messages (pt-BR, the product language).
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"month":     "mês",
	"day":       "dia",
	"slot":      "leitura",
	"completed": "status de conclusão",
}

func init() {
	Validator = validator.New()

	// Report field names from the json tag, not the Go name.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	portuguese := pt_BR.New()
	uni := ut.New(portuguese, portuguese)
	var found bool
	Trans, found = uni.GetTranslator("pt_BR")
	if !found {
		log.Fatal("translator not found")
	}

	if err := pt_br_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "{0} é obrigatório.")
	registerTranslation("oneof", "{0} tem um valor inválido.")
}

// NewValidationErrorResponse turns validator errors into one AppError.
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	var fields []string
	var messages []string

	for _, err := range errs {
		fields = append(fields, err.Field())
		messages = append(messages, err.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
