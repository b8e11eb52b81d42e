package phoneinput

import (
	"net/http"

	"github.com/goliatone/go-phoneinput/components/countries"
	component "github.com/goliatone/go-phoneinput/components/phoneinput"
	"github.com/goliatone/go-phoneinput/pkg/phoneformat"
)

// Field aliases the phone input component for callers importing the module
// root only.
type Field = component.Field

// Props aliases the component configuration.
type Props = component.Props

// Result aliases the validation result reported by a field.
type Result = component.Result

// Validator aliases the form validator contract fields register with.
type Validator = component.Validator

// CountryOption aliases a selectable country entry.
type CountryOption = countries.Option

// NewField constructs a phone input field.
func NewField(options ...component.OptionFn) *Field {
	return component.New(options...)
}

// Countries returns the default country directory.
func Countries() []CountryOption {
	return countries.DefaultCountries()
}

// CountriesHandler returns the JSON country search handler.
func CountriesHandler(options ...countries.OptionFn) http.Handler {
	return countries.NewHandler(options...)
}

// FormatNational renders raw in the national format of region, returning raw
// when it cannot be parsed.
func FormatNational(raw, region string) string {
	return phoneformat.ToNational(raw, region)
}

// FormatInternational renders raw as E.164 for region, returning raw when it
// cannot be parsed.
func FormatInternational(raw, region string) string {
	return phoneformat.ToInternational(raw, region)
}
