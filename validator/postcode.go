package validator

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/postal-lib/foundation/postal"
)

// validatePostcode backs the `postcode` tag. The tag parameter names the
// sibling struct field holding the country code:
//
//	type Address struct {
//		Country string `validate:"required"`
//		Zip     string `validate:"postcode=Country"`
//	}
//
// Unknown countries validate as true (passthrough semantics); a blank or
// unresolvable country field validates as false because no rule can be
// chosen.
func validatePostcode(fl validator.FieldLevel) bool {
	param := fl.Param()
	if param == "" {
		return false
	}

	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	country := parent.FieldByName(param)
	if !country.IsValid() || country.Kind() != reflect.String {
		return false
	}

	_, ok := postal.Validate(country.String(), fl.Field().String())
	return ok
}
