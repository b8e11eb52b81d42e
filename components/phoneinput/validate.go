package phoneinput

import "strings"

// Validation messages.
const (
	MessageRequired = "Required"
	MessageInvalid  = "Invalid Phone Number"
)

// Result is the outcome of a validation run. Msg is empty when IsValid.
type Result struct {
	IsValid bool   `json:"isValid"`
	Msg     string `json:"msg,omitempty"`
}

// Validate checks the displayed value and writes the invalid flag and
// validity back into the field state. When onSubmit is true the field is
// marked as touched first, so a submitted form surfaces its errors.
func (f *Field) Validate(onSubmit bool) Result {
	if onSubmit {
		f.flags = f.flags.with(FlagTouched, true)
	}

	value := strings.TrimSpace(f.value)
	result := Result{IsValid: true}

	switch {
	case f.props.Required && value == "":
		result = Result{IsValid: false, Msg: MessageRequired}
	case value != "" && !f.props.Formatter.IsValid(value, f.country.Abbreviation):
		result = Result{IsValid: false, Msg: MessageInvalid}
	}

	f.flags = f.flags.with(FlagInvalid, !result.IsValid)
	if result.IsValid {
		f.validity = ValidityValid
	} else {
		f.validity = ValidityInvalid
	}
	return result
}
