// Package phoneinput implements a phone number form input: a country select
// paired with a text input that displays digits in the selected country's
// national format while reporting E.164 values to the caller.
//
// A Field is driven by discrete events, mirroring a component lifecycle:
//
//	field := phoneinput.New(
//		phoneinput.WithLabel("Office Phone"),
//		phoneinput.WithRequired(true),
//		phoneinput.WithOnChange(func(e164 string) { ... }),
//	)
//	field.Mount()
//	field.Focus(phoneinput.Event{})
//	field.Change("8013560504") // displays "(801) 356-0504", emits "+18013560504"
//	field.Blur(phoneinput.Event{})
//	defer field.Unmount()
//
// Every handler runs to completion synchronously. A Field must not be used
// from multiple goroutines at once.
package phoneinput
