// Package validation binds and validates request payloads.
//
// Payload structs carry `validate` tags checked by go-playground's
// validator; rules a tag cannot express are returned as
// CustomValidationErrors. Either way the client receives a 400 with
// one entry per offending field, keyed by the field's JSON name.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the name clients send, e.g. imageUrl, not ImageURL.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "param", "query"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return v
}

// Struct validates s against its `validate` tags. The validator caches
// struct metadata and is safe for concurrent use.
func Struct(s any) error {
	return validate.Struct(s)
}
