package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromBinding translates request decoding and validation failures into an
// InvalidInput error. Anything else is returned as a generic bad request.
func FromBinding(err error) *AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return FromValidation(verrs)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = typeErr.Type.String()
		}
		return NewInvalidInputError(fmt.Sprintf("Invalid value for field '%s': %s", field, typeErr.Value))
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return NewInvalidInputError("Invalid request body")
}

// FromValidation converts validator errors into field errors whose messages
// are also joined into the top-level message.
func FromValidation(verrs validator.ValidationErrors) *AppError {
	fields := make([]FieldError, 0, len(verrs))
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe)
		msg := fieldMessage(name, fe)
		fields = append(fields, FieldError{Field: name, Message: msg})
		messages = append(messages, msg)
	}
	return NewValidationError(strings.Join(messages, ", "), fields)
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		ns = fe.Field()
	}
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = lowerFirst(p)
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func fieldMessage(name string, fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email"
	case "uuid", "uuid4":
		return name + " must be a valid identifier"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s entries", name, fe.Param())
		}
		return fmt.Sprintf("%s must not be less than %s", name, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must not be less than %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must not be greater than %s", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "numeric":
		return name + " must contain only digits"
	case "dscale":
		return fmt.Sprintf("%s must have at most %s decimal places", name, fe.Param())
	case "dgte", "dlte", "dgt":
		return fmt.Sprintf("%s is out of range (%s %s)", name, fe.Tag()[1:], fe.Param())
	default:
		return name + " is invalid"
	}
}
