package phoneinput

// ValidateFunc validates a field. onSubmit marks the field as touched first.
type ValidateFunc func(onSubmit bool) Result

// Validator coordinates validation across the fields of a form. A field
// registers on Mount, unregisters on Unmount and, after each keystroke, asks
// the validator to run instead of validating itself.
type Validator interface {
	Register(field *Field, validate ValidateFunc)
	Unregister(field *Field)
	Validate()
}
