package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxNameLength = 32

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("name", validateName)
}

// validateName accepts handles and project names usable as a path segment.
func validateName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s != "" &&
		len(s) <= maxNameLength &&
		!strings.ContainsAny(s, `/\`) &&
		!strings.HasSuffix(s, ".git") &&
		s != "." && s != ".."
}

func checkStruct(in any) error {
	return describe(validate.Struct(in))
}

func checkName(field, value string) error {
	if err := validate.Var(value, "name"); err != nil {
		return fmt.Errorf("%w: %s %q is not a valid name", ErrInvalidInput, field, value)
	}
	return nil
}

func describe(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}
