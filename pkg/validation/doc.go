// Package validation wires the phone input's validation rules into
// github.com/go-playground/validator so submitted payloads are checked with the
// same rules the field applies while the user types.
//
//	type Contact struct {
//		Phone  string `validate:"required,phone"`
//		Office string `validate:"omitempty,phone=GB"`
//	}
package validation
