package phoneinput

import (
	"strings"

	"github.com/goliatone/go-phoneinput/components/countries"
)

// Flags is the set of display states a field can be in at once. The base
// class is implicit and always present.
type Flags uint8

const (
	FlagEmpty Flags = 1 << iota
	FlagInvalid
	FlagTouched
)

// CSS classes emitted for the root element.
const (
	ClassBase           = "sh-input-phone"
	ClassEmpty          = "empty"
	ClassInvalid        = "sh-invalid"
	ClassTouched        = "sh-touched"
	ClassShowRequired   = "show-required"
	ClassRequiredMarker = "required-label"
)

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) with(flag Flags, on bool) Flags {
	if on {
		return f | flag
	}
	return f &^ flag
}

// Classes returns the CSS class list for the flag set, base class first.
func (f Flags) Classes() []string {
	return classList(
		classToggle{ClassBase, true},
		classToggle{ClassEmpty, f.Has(FlagEmpty)},
		classToggle{ClassInvalid, f.Has(FlagInvalid)},
		classToggle{ClassTouched, f.Has(FlagTouched)},
	)
}

func (f Flags) String() string {
	return strings.Join(f.Classes(), " ")
}

// Validity records the outcome of the latest validation run.
type Validity int

const (
	ValidityUnknown Validity = iota
	ValidityValid
	ValidityInvalid
)

func (v Validity) String() string {
	switch v {
	case ValidityValid:
		return "valid"
	case ValidityInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// State is a snapshot of what the field currently displays.
type State struct {
	DisplayValue    string
	Country         countries.Option
	Flags           Flags
	Placeholder     string
	RequiredVisible bool
	Validity        Validity
	Mounted         bool
}

// Empty reports whether the empty flag is set. It is refreshed on blur and
// when a new value prop arrives, not on every keystroke.
func (s State) Empty() bool { return s.Flags.Has(FlagEmpty) }

func (s State) Invalid() bool { return s.Flags.Has(FlagInvalid) }

func (s State) Touched() bool { return s.Flags.Has(FlagTouched) }
