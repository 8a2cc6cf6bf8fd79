package util

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/SeakMengs/PdfPress/pkg/pdfpress"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// credit: https://github.com/go-playground/validator/issues/559#issuecomment-976459959

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldAlias maps struct field names to the names clients send, e.g. "Pages" to "pages".
type fieldAlias map[string]string

func (a fieldAlias) name(field string) string {
	if alias, ok := a[field]; ok {
		return alias
	}
	return field
}

func describe(fe validator.FieldError, field string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "numeric":
		return fmt.Sprintf("%v must be numeric", field)
	case "min":
		return fmt.Sprintf("%v must contain at least %v item(s)", field, fe.Param())
	case "max":
		return fmt.Sprintf("%v must contain at most %v item(s)", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%v must be less than or equal to %v", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%v must be one of [%v]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace characters", field)
	case "pageList":
		return fmt.Sprintf("%v must be a comma or space separated list of at most %d pages or ranges, e.g. 1,3,5-7", field, pdfpress.MaxPageListLength)
	case "dive":
		return fmt.Sprintf("%v contains an invalid item", field)
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error()
}

// isPageError reports errors caused by the page list a client sent.
func isPageError(err error) bool {
	return errors.Is(err, pdfpress.ErrInvalidPageList) || errors.Is(err, pdfpress.ErrPageOutOfRange)
}

/*
GenerateErrorMessages turns err into the list of field errors returned to clients.

Validation errors produce one entry per failing field:

	[
	  {
		"field": "pages",
		"message": "pages is required"
	  }
	]

Page list errors from the engine are reported on "pages". Anything else
becomes a single entry on "Unknown".

Optional parameters:
  - map[string]string renames struct fields, e.g. map[string]string{"Pages": "pages"}
  - string names the field a non validation error is reported on
*/
func GenerateErrorMessages(err error, optionalParams ...interface{}) []ApiError {
	alias := fieldAlias{}
	fieldName := ""

	for _, param := range optionalParams {
		switch v := param.(type) {
		case map[string]string:
			alias = fieldAlias(v)
		case string:
			fieldName = v
		}
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, 0, len(ve))
		for _, fe := range ve {
			field := alias.name(fe.Field())
			out = append(out, ApiError{Field: field, Message: describe(fe, field)})
		}
		return out
	}

	if fieldName == "" {
		fieldName = "Unknown"
		if isPageError(err) {
			fieldName = "pages"
		}
	}

	return []ApiError{{Field: fieldName, Message: err.Error()}}
}

// GenerateErrorMessagesAsString returns only the first message, e.g. "pages is required".
func GenerateErrorMessagesAsString(err error, customField map[string]string) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return describe(ve[0], fieldAlias(customField).name(ve[0].Field()))
	}

	return err.Error()
}

// RegisterBindingValidations registers the custom tags on the validator gin binds forms with.
func RegisterBindingValidations() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return RegisterCustomValidations(v)
	}
	return nil
}

func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		return err
	}
	return v.RegisterValidation("pageList", PageList)
}

// check if string is empty, after trimming spaces
// Usage: `binding:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return len(strings.TrimSpace(field.String())) > 0
}

// check if string parses as a page list, e.g. "1,3,5-7"
// Usage: `binding:"pageList"`
func PageList(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	_, err := pdfpress.ParsePageList(field.String())
	return err == nil
}
