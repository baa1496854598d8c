package sizing

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// paramsValidate checks the struct tags on Params and Traffic.
// Field names in errors use the json tag so they match scenario files.
var paramsValidate *validator.Validate

func init() {
	paramsValidate = validator.New()
	paramsValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate rejects inputs that the estimator would turn into a non-finite or
// meaningless size: probabilities outside (0, 1), fewer than two variants, a
// zero effect, a negative buffer, or a treatment rate outside [0, 1].
func (p Params) Validate() error {
	if err := paramsValidate.Struct(p); err != nil {
		return describeValidation(err)
	}
	_, treatment := p.Rates()
	if treatment < 0 || treatment > 1 {
		return fmt.Errorf("mde: implied treatment rate %g is outside [0, 1]", treatment)
	}
	return nil
}

// ValidateSettings checks everything Validate does except the effect, for
// callers that solve for the effect instead of supplying it.
func (p Params) ValidateSettings() error {
	p.Effect = 1
	if err := paramsValidate.Struct(p); err != nil {
		return describeValidation(err)
	}
	return nil
}

// describeValidation flattens validator errors into one readable error.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s (got %v)", fe.Field(), constraint(fe), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func constraint(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "> " + fe.Param()
	case "gte":
		return ">= " + fe.Param()
	case "lt":
		return "< " + fe.Param()
	case "lte":
		return "<= " + fe.Param()
	case "ne":
		return "!= " + fe.Param()
	default:
		if fe.Param() != "" {
			return fe.Tag() + "=" + fe.Param()
		}
		return fe.Tag()
	}
}
