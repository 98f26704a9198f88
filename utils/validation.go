package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator; field names in errors follow json tags.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return field.Name
		})
	})
	return validate
}

// FieldErrors maps each failing field to a readable message.
func FieldErrors(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}
	return fields
}

// ValidationMessage describes the first failing field.
func ValidationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "Invalid input"
	}
	return fieldMessage(errs[0])
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", field, lowerFirst(fe.Param()))
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, lowerFirst(fe.Param()))
	}
	return fmt.Sprintf("%s is invalid", field)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
