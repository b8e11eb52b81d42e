package phoneinput

import (
	"github.com/goliatone/go-phoneinput/components/countries"
	"github.com/goliatone/go-phoneinput/pkg/phoneformat"
)

// DefaultCountry is the region selected when props do not name one.
const DefaultCountry = "US"

// Event is forwarded to the OnFocus and OnBlur callbacks.
type Event struct {
	Type  string
	Value string
}

// Props holds the caller supplied configuration of a Field. A nil Value means
// the value is unset.
type Props struct {
	Value       *string
	Required    bool
	Country     string
	Label       string
	Name        string
	Placeholder string
	ClassName   string

	OnChange func(value string)
	OnFocus  func(evt Event)
	OnBlur   func(evt Event)

	Validator Validator

	// Countries overrides the option list; defaults to countries.DefaultCountries.
	Countries []countries.Option
	Formatter phoneformat.Formatter
}

type OptionFn func(*Props)

func DefaultProps() Props {
	return Props{
		Country:   DefaultCountry,
		Formatter: phoneformat.NewFormatter(),
	}
}

// NewProps applies fns over DefaultProps and fills in no-op callbacks.
func NewProps(fns ...OptionFn) Props {
	props := DefaultProps()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&props)
	}
	return normalizeProps(props)
}

func normalizeProps(props Props) Props {
	if props.Country == "" {
		props.Country = DefaultCountry
	}
	if props.OnChange == nil {
		props.OnChange = func(string) {}
	}
	if props.Value != nil {
		value := *props.Value
		props.Value = &value
	}
	if props.Countries != nil {
		props.Countries = append([]countries.Option{}, props.Countries...)
	}
	return props
}

// WithValue sets the initial or controlled raw value.
func WithValue(value string) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.Value = &value
	}
}

func WithRequired(required bool) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.Required = required
	}
}

// WithCountry selects the initial region by abbreviation, e.g. "GB".
func WithCountry(abbr string) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.Country = abbr
	}
}

func WithLabel(label string) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.Label = label
	}
}

func WithName(name string) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.Name = name
	}
}

func WithPlaceholder(placeholder string) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.Placeholder = placeholder
	}
}

// WithClassName appends extra classes to the root element.
func WithClassName(className string) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.ClassName = className
	}
}

// WithOnChange registers the callback that receives E.164 values.
func WithOnChange(fn func(value string)) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.OnChange = fn
	}
}

func WithOnFocus(fn func(evt Event)) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.OnFocus = fn
	}
}

func WithOnBlur(fn func(evt Event)) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.OnBlur = fn
	}
}

// WithValidator hands validation timing to an external form validator.
func WithValidator(v Validator) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.Validator = v
	}
}

func WithCountries(options []countries.Option) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.Countries = options
	}
}

func WithFormatter(f phoneformat.Formatter) OptionFn {
	return func(p *Props) {
		if p == nil {
			return
		}
		p.Formatter = f
	}
}
