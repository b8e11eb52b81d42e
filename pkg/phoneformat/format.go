package phoneformat

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used whenever a caller passes an empty region code.
const DefaultRegion = "US"

const (
	// minValidLength is the shortest input IsValid will hand to the parser.
	minValidLength = 2
	unknownRegion  = "ZZ"
)

// Formatter converts raw phone input between display formats for a region.
// The zero value formats against DefaultRegion.
type Formatter struct {
	region string
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithDefaultRegion sets the region used when calls omit one.
func WithDefaultRegion(region string) FormatterOption {
	return func(f *Formatter) {
		if f == nil {
			return
		}
		f.region = normalizeRegion(region)
	}
}

// NewFormatter constructs a Formatter with DefaultRegion plus overrides.
func NewFormatter(fns ...FormatterOption) Formatter {
	f := Formatter{region: DefaultRegion}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&f)
	}
	if f.region == "" {
		f.region = DefaultRegion
	}
	return f
}

// Region returns the fallback region code.
func (f Formatter) Region() string {
	if f.region == "" {
		return DefaultRegion
	}
	return f.region
}

// ToNational renders raw in the national format of region. Unparseable input
// is returned unchanged.
func (f Formatter) ToNational(raw, region string) string {
	return f.format(raw, region, phonenumbers.NATIONAL)
}

// ToInternational renders raw in E.164 form for region. Unparseable input is
// returned unchanged.
func (f Formatter) ToInternational(raw, region string) string {
	return f.format(raw, region, phonenumbers.E164)
}

// IsValid reports whether raw is a valid number for region. Inputs shorter
// than two characters are rejected without parsing.
func (f Formatter) IsValid(raw, region string) bool {
	if len(raw) < minValidLength {
		return false
	}
	number, ok := f.parse(raw, region)
	if !ok {
		return false
	}
	return phonenumbers.IsValidNumber(number)
}

func (f Formatter) format(raw, region string, format phonenumbers.PhoneNumberFormat) string {
	number, ok := f.parse(raw, region)
	if !ok {
		return raw
	}
	return phonenumbers.Format(number, format)
}

func (f Formatter) parse(raw, region string) (number *phonenumbers.PhoneNumber, ok bool) {
	region = normalizeRegion(region)
	if region == "" {
		region = f.Region()
	}
	// a panic inside the grammar library counts as a parse fault
	defer func() {
		if recover() != nil {
			number, ok = nil, false
		}
	}()
	parsed, err := phonenumbers.ParseAndKeepRawInput(raw, region)
	if err != nil || parsed == nil {
		return nil, false
	}
	return parsed, true
}

var std = NewFormatter()

// ToNational formats raw against region using the package default formatter.
func ToNational(raw, region string) string {
	return std.ToNational(raw, region)
}

// ToInternational formats raw as E.164 against region using the package
// default formatter.
func ToInternational(raw, region string) string {
	return std.ToInternational(raw, region)
}

// IsValid validates raw against region using the package default formatter.
func IsValid(raw, region string) bool {
	return std.IsValid(raw, region)
}

// Digits strips every non-digit character from raw.
func Digits(raw string) string {
	if raw == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripDialCode removes a leading "+<dialCode>" prefix from raw. Values that
// do not carry the prefix are returned as-is.
func StripDialCode(raw string, dialCode int) string {
	if dialCode <= 0 {
		return raw
	}
	return strings.Replace(raw, "+"+strconv.Itoa(dialCode), "", 1)
}

// Region resolves the region code of an internationally formatted number.
// It returns an empty string when raw cannot be attributed to a region.
func Region(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "+") {
		return ""
	}
	number, ok := std.parse(trimmed, unknownRegion)
	if !ok {
		return ""
	}
	region := phonenumbers.GetRegionCodeForNumber(number)
	if region == unknownRegion {
		return ""
	}
	return region
}

func normalizeRegion(region string) string {
	return strings.ToUpper(strings.TrimFunc(region, unicode.IsSpace))
}
