package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/yusing/go-netwatch/internal/gperr"
)

var validate = validator.New()

// ValidateWithFieldTags checks s against its validate struct tags.
//
// Each violated field contributes one error, mapped through fieldErrs
// by field name when present, subjected with the field namespace.
func ValidateWithFieldTags(s any, fieldErrs map[string]error) gperr.Error {
	errs := gperr.NewBuilder("validation error")
	err := validate.Struct(s)
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		for _, e := range valErrs {
			detail := e.ActualTag()
			if e.Param() != "" {
				detail += ":" + e.Param()
			}
			fieldErr := fieldErrs[e.Field()]
			if fieldErr == nil {
				fieldErr = errors.New("invalid " + e.Field())
			}
			errs.Add(gperr.Wrap(fieldErr).
				Subject(e.Namespace()).
				Withf("require %q", detail))
		}
	}
	return errs.Error()
}
