// Package views holds helpers shared by the per-page view types.
package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrUnknownField = errors.New("unknown form field")

var validate = validator.New()

// CheckField reports ErrUnknownField unless name is one of allowed.
func CheckField(name string, allowed ...string) error {
	if err := validate.Var(name, "required,oneof="+strings.Join(allowed, " ")); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}
