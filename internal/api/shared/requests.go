package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/email-writer-api/internal/domain"
)

// Global validator instance for reuse. Field names in errors use JSON names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
// Decoding failures are returned as domain validation errors naming the
// offending field where the decoder reports one. Unknown fields are ignored.
// The body must hold exactly one JSON value; trailing data is rejected.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if err == nil {
		if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
			return domain.NewValidationError("", "request body is not valid JSON", domain.ErrValidation)
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", "field required", domain.ErrValidation)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domain.NewValidationError(typeErr.Field,
			fmt.Sprintf("expected %s, got %s", typeErr.Type.Kind(), typeErr.Value), domain.ErrValidation)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError("", "request body is not valid JSON", domain.ErrValidation)
	default:
		return domain.NewValidationError("", "invalid request format", domain.ErrValidation)
	}
}

// ValidateRequest validates the given struct using the validator package.
// Every failing field is reported, joined in declaration order.
func ValidateRequest(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewValidationError("", err.Error(), domain.ErrValidation)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Field()+": "+validationTagMessage(fe.Tag()))
	}

	return domain.NewValidationError("", strings.Join(messages, "; "), domain.ErrValidation)
}

// validationTagMessage maps validation tags to user-friendly error messages
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "field required"
	default:
		return "validation failed on '" + tag + "'"
	}
}
