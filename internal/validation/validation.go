// Package validation checks transfer shapes against their `validate` tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/unclebandit/customer-service/internal/errors"
)

// phonePattern accepts digits with common separators, an optional leading
// plus and an optional extension. Letters are rejected.
var phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-.]*[0-9][0-9 ()\-.]*( ?(x|ext\.?) ?[0-9]+)?$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the json tag name func and
// the custom "phone" and "mailaddr" rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		if err := v.RegisterValidation("phone", validPhone); err != nil {
			panic(fmt.Sprintf("register phone validation: %v", err))
		}
		if err := v.RegisterValidation("mailaddr", validMailAddr); err != nil {
			panic(fmt.Sprintf("register mailaddr validation: %v", err))
		}
		instance = v
	})
	return instance
}

func validPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// validMailAddr requires exactly one "@", neither first nor last. Anything
// else about the address, a trailing dot included, is left to the caller.
func validMailAddr(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	at := strings.IndexByte(s, '@')
	return at > 0 && at == strings.LastIndexByte(s, '@') && at < len(s)-1
}

// Struct validates v and returns an *appErrors.ErrValidation describing
// every failing field, or nil.
func Struct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := map[string][]string{}
	for _, fe := range fieldErrs {
		fields[fe.Field()] = append(fields[fe.Field()], message(fe))
	}
	return appErrors.NewValidation(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "max":
		return fmt.Sprintf("The field %s must be a string with a maximum length of %s.", fe.Field(), fe.Param())
	case "mailaddr":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", fe.Field())
	case "phone":
		return fmt.Sprintf("The %s field is not a valid phone number.", fe.Field())
	}
	return fmt.Sprintf("The %s field failed on the '%s' rule.", fe.Field(), fe.Tag())
}
