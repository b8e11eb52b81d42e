package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-phoneinput/components/phoneinput"
	"github.com/goliatone/go-phoneinput/pkg/phoneformat"
)

// TagPhone validates a string as a phone number. The optional parameter names
// the region used for numbers without a country code (phone=GB).
const TagPhone = "phone"

// Validator wraps a go-playground validator with the phone tag registered.
type Validator struct {
	v      *validator.Validate
	format phoneformat.Formatter
}

// New creates a Validator. The formatter's default region applies to tags
// without a region parameter.
func New(fns ...phoneformat.FormatterOption) (*Validator, error) {
	val := &Validator{
		v:      validator.New(validator.WithRequiredStructEnabled()),
		format: phoneformat.NewFormatter(fns...),
	}
	if err := Register(val.v, val.format); err != nil {
		return nil, err
	}
	return val, nil
}

// Register adds the phone tag to an existing go-playground validator.
func Register(v *validator.Validate, format phoneformat.Formatter) error {
	if v == nil {
		return fmt.Errorf("validation: missing validator")
	}
	err := v.RegisterValidation(TagPhone, func(fl validator.FieldLevel) bool {
		return format.IsValid(fl.Field().String(), strings.TrimSpace(fl.Param()))
	})
	if err != nil {
		return fmt.Errorf("validation: register %q: %w", TagPhone, err)
	}
	return nil
}

// Engine exposes the underlying go-playground validator.
func (val *Validator) Engine() *validator.Validate { return val.v }

// Struct validates s and returns the raw go-playground error.
func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

// Var validates a single value against a tag, e.g. Var(value, "phone=US").
func (val *Validator) Var(field any, tag string) error {
	return val.v.Var(field, tag)
}

// Results validates s and maps every failing field to the result the phone
// field reports for the same failure, keyed by struct namespace. A nil map
// means s is valid.
func (val *Validator) Results(s any) (map[string]phoneinput.Result, error) {
	err := val.v.Struct(s)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validation: validate: %w", err)
	}

	out := make(map[string]phoneinput.Result, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Namespace()] = resultFor(fe)
	}
	return out, nil
}

// VarResult validates a single value against a tag and reports the outcome as
// a field result.
func (val *Validator) VarResult(field any, tag string) phoneinput.Result {
	err := val.v.Var(field, tag)
	if err == nil {
		return phoneinput.Result{IsValid: true}
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return resultFor(fieldErrs[0])
	}
	return phoneinput.Result{IsValid: false, Msg: err.Error()}
}

func resultFor(fe validator.FieldError) phoneinput.Result {
	switch fe.Tag() {
	case "required":
		return phoneinput.Result{IsValid: false, Msg: phoneinput.MessageRequired}
	case TagPhone:
		return phoneinput.Result{IsValid: false, Msg: phoneinput.MessageInvalid}
	default:
		return phoneinput.Result{IsValid: false, Msg: fmt.Sprintf("failed %q validation", fe.Tag())}
	}
}
