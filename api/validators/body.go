package validators

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/vrikshai/vriksh-backend/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// FieldMessenger lets a request type supply the response copy for a field
// that failed struct validation. The first failing field, in declaration
// order, decides the message.
type FieldMessenger interface {
	FieldMessage(field string) (string, bool)
}

// DecodeJSONBody decodes the request body into dest and runs struct
// validation against its validate tags. Malformed JSON and failed
// validation both come back as validation errors; the request type
// controls the copy via FieldMessenger.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid JSON in request body").
			WithDetails(map[string]any{"error": err.Error()})
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(dest, err)
	}
	return nil
}

func formatValidationErrors(dest any, err error) *pkgerrors.Error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid JSON in request body")
	}

	details := map[string]string{}
	for _, fieldErr := range errs {
		details[fieldErr.Field()] = validationMessage(fieldErr)
	}

	first := errs[0]
	msg := fmt.Sprintf("%s %s", first.Field(), validationMessage(first))
	if messenger, ok := dest.(FieldMessenger); ok {
		if custom, found := messenger.FieldMessage(first.Field()); found {
			msg = custom
		}
	}
	return pkgerrors.New(pkgerrors.CodeValidation, msg).WithDetails(details)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "required_without":
		return "is required"
	}
	return "is invalid"
}
