package phoneinput

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-phoneinput/components/countries"
	"github.com/goliatone/go-phoneinput/pkg/phoneformat"
)

// ErrUnknownCountry is returned when a country outside the field's option
// list is selected.
var ErrUnknownCountry = errors.New("phoneinput: unknown country")

// Event types passed to callbacks when the caller leaves Event.Type empty.
const (
	EventFocus = "focus"
	EventBlur  = "blur"
)

// Field is a phone number input instance. It owns its display state and only
// mutates it from its own event handlers.
type Field struct {
	props   Props
	options []countries.Option
	country countries.Option

	value             string
	flags             Flags
	placeholder       string
	placeholderHolder string
	requiredVisible   bool
	validity          Validity

	mounted    bool
	registered Validator
}

// New constructs a field from default props plus any overrides. The country
// list is resolved once here and never changes for the life of the field.
func New(fns ...OptionFn) *Field {
	return NewWithProps(NewProps(fns...))
}

// NewWithProps constructs a field from a pre-built Props value.
func NewWithProps(props Props) *Field {
	props = normalizeProps(props)

	options := props.Countries
	if len(options) == 0 {
		options = countries.DefaultCountries()
	}

	return &Field{
		props:       props,
		options:     options,
		country:     resolveCountry(options, props.Country),
		flags:       FlagEmpty,
		placeholder: props.Placeholder,
		validity:    ValidityUnknown,
	}
}

func resolveCountry(options []countries.Option, abbr string) countries.Option {
	if option, ok := countries.Find(options, abbr); ok {
		return option
	}
	if option, ok := countries.Find(options, DefaultCountry); ok {
		return option
	}
	if len(options) > 0 {
		return options[0]
	}
	option, _ := countries.NewOption(DefaultCountry)
	return option
}

// Mount registers the field with its validator and applies the initial value
// and required props. Calling Mount on a mounted field does nothing.
func (f *Field) Mount() {
	if f.mounted {
		return
	}
	f.mounted = true

	if v := f.props.Validator; v != nil {
		v.Register(f, f.Validate)
		f.registered = v
	}

	if f.props.Value != nil && *f.props.Value != "" {
		f.value = *f.props.Value
		f.flags = 0
	}
	if f.props.Required {
		f.requiredVisible = true
	}
	f.placeholderHolder = f.placeholder
}

// Unmount releases the validator registration. Calling Unmount on an
// unmounted field does nothing.
func (f *Field) Unmount() {
	if !f.mounted {
		return
	}
	f.mounted = false
	if f.registered != nil {
		f.registered.Unregister(f)
		f.registered = nil
	}
}

// Change handles a keystroke. Non-digits are dropped, the display switches to
// national format, the caller receives the E.164 value and validation runs,
// in that order. With a validator the form validator runs instead of the
// field's own validation.
func (f *Field) Change(input string) {
	digits := phoneformat.Digits(input)
	region := f.country.Abbreviation

	f.value = f.props.Formatter.ToNational(digits, region)
	f.props.OnChange(f.props.Formatter.ToInternational(digits, region))

	if v := f.props.Validator; v != nil {
		v.Validate()
		return
	}
	f.Validate(false)
}

// Focus clears the placeholder and marks the field as touched.
func (f *Field) Focus(evt Event) {
	f.placeholder = ""
	f.flags = f.flags.with(FlagTouched, true)

	if f.props.OnFocus != nil {
		f.props.OnFocus(f.event(evt, EventFocus))
	}
}

// Blur validates, restores the placeholder and refreshes the empty and
// required markers.
func (f *Field) Blur(evt Event) {
	f.Validate(false)

	f.placeholder = f.placeholderHolder
	f.flags = f.flags.with(FlagEmpty, f.value == "")
	f.requiredVisible = f.props.Required && len(f.value) < 1

	if f.props.OnBlur != nil {
		f.props.OnBlur(f.event(evt, EventBlur))
	}
}

func (f *Field) event(evt Event, kind string) Event {
	if evt.Type == "" {
		evt.Type = kind
	}
	if evt.Value == "" {
		evt.Value = f.value
	}
	return evt
}

// SelectCountry switches the numbering plan and re-emits the current value in
// E.164 form for the new region.
func (f *Field) SelectCountry(option countries.Option) error {
	return f.SelectCountryCode(option.Abbreviation)
}

// SelectCountryCode is SelectCountry keyed by region abbreviation.
func (f *Field) SelectCountryCode(abbr string) error {
	option, ok := countries.Find(f.options, abbr)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCountry, abbr)
	}
	f.country = option
	f.props.OnChange(f.props.Formatter.ToInternational(f.value, option.Abbreviation))
	return nil
}

// Receive applies updated props from the parent. A defined, non-empty value
// that differs from the displayed one replaces it: the selected country's
// dial code prefix is stripped, the rest is formatted nationally and the
// field is validated. It reports whether the displayed value changed.
//
// The selected country and the validator registration made at Mount are kept.
func (f *Field) Receive(next Props) bool {
	next = normalizeProps(next)
	next.Country = f.props.Country
	next.Countries = f.props.Countries
	next.Validator = f.props.Validator
	f.props = next

	if next.Value == nil || *next.Value == "" || *next.Value == f.value {
		return false
	}

	stripped := phoneformat.StripDialCode(*next.Value, f.country.DialCode)
	f.value = f.props.Formatter.ToNational(stripped, f.country.Abbreviation)
	f.flags = f.flags.with(FlagEmpty, false)
	f.Validate(false)
	return true
}

// State returns a snapshot of the current display state.
func (f *Field) State() State {
	return State{
		DisplayValue:    f.value,
		Country:         f.country,
		Flags:           f.flags,
		Placeholder:     f.placeholder,
		RequiredVisible: f.requiredVisible,
		Validity:        f.validity,
		Mounted:         f.mounted,
	}
}

// DisplayValue returns the nationally formatted value shown in the input.
func (f *Field) DisplayValue() string { return f.value }

// Value returns the displayed value in E.164 form for the selected country.
func (f *Field) Value() string {
	return f.props.Formatter.ToInternational(f.value, f.country.Abbreviation)
}

// Country returns the selected country.
func (f *Field) Country() countries.Option { return f.country }

// Countries returns a copy of the option list.
func (f *Field) Countries() []countries.Option {
	return append([]countries.Option{}, f.options...)
}

// Props returns the current props.
func (f *Field) Props() Props { return f.props }

// ClassName returns the root element class attribute.
func (f *Field) ClassName() string {
	return ClassNames(f.flags.Classes(), f.props.ClassName)
}

// RequiredClassName returns the class attribute of the required marker.
func (f *Field) RequiredClassName() string {
	return ClassNames([]string{ClassRequiredMarker}, classList(classToggle{ClassShowRequired, f.requiredVisible})...)
}
