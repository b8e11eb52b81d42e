package countries

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Option is a selectable country entry. ID mirrors DialCode so select widgets
// keyed on id stay stable across renders.
type Option struct {
	Label        string `json:"label"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	ID           int    `json:"id"`
	DialCode     int    `json:"dialCode"`
}

var (
	defaultOnce      sync.Once
	defaultRegions   []string
	defaultCountries []Option
)

// DefaultRegions returns every region code the phone metadata supports,
// sorted alphabetically.
func DefaultRegions() []string {
	loadDefaults()
	return append([]string{}, defaultRegions...)
}

// DefaultCountries returns the English option list for DefaultRegions.
func DefaultCountries() []Option {
	loadDefaults()
	return append([]Option{}, defaultCountries...)
}

func loadDefaults() {
	defaultOnce.Do(func() {
		supported := phonenumbers.GetSupportedRegions()
		regions := make([]string, 0, len(supported))
		for region := range supported {
			regions = append(regions, region)
		}
		sort.Strings(regions)
		defaultRegions = regions
		defaultCountries = buildOptions(regions, display.Regions(language.English))
	})
}

// List builds the option list for the supplied options.
func List(fns ...OptionFn) []Option {
	return ListWithOptions(NewOptions(fns...))
}

// ListWithOptions builds the option list from a pre-constructed Options value.
func ListWithOptions(opts Options) []Option {
	opts = NewOptions(func(o *Options) { *o = opts })
	if opts.Regions == nil && opts.Language == language.English {
		return DefaultCountries()
	}
	regions := opts.Regions
	if regions == nil {
		regions = DefaultRegions()
	}
	return buildOptions(normalizeRegions(regions), display.Regions(opts.Language))
}

// LoadRegions reads region codes, one per line. Blank lines and lines starting
// with "#" are ignored; codes are upper-cased, deduplicated and sorted.
func LoadRegions(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("countries: missing reader")
	}

	scanner := bufio.NewScanner(r)
	regions := make([]string, 0, 64)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		regions = append(regions, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("countries: read regions: %w", err)
	}
	return normalizeRegions(regions), nil
}

// NewOption builds the option for region using English display names. It
// returns false when the region has no calling code.
func NewOption(region string) (Option, bool) {
	return newOption(strings.ToUpper(strings.TrimSpace(region)), display.Regions(language.English))
}

// Find returns the option whose abbreviation matches abbr, ignoring case.
func Find(options []Option, abbr string) (Option, bool) {
	abbr = strings.TrimSpace(abbr)
	if abbr == "" {
		return Option{}, false
	}
	for _, option := range options {
		if strings.EqualFold(option.Abbreviation, abbr) {
			return option, true
		}
	}
	return Option{}, false
}

func buildOptions(regions []string, namer display.Namer) []Option {
	out := make([]Option, 0, len(regions))
	for _, region := range regions {
		if option, ok := newOption(region, namer); ok {
			out = append(out, option)
		}
	}
	return out
}

func newOption(region string, namer display.Namer) (Option, bool) {
	if region == "" {
		return Option{}, false
	}
	code := phonenumbers.GetCountryCodeForRegion(region)
	if code <= 0 {
		return Option{}, false
	}
	dial := "+" + strconv.Itoa(code)
	return Option{
		Label:        dial,
		Name:         regionName(region, namer) + " " + dial,
		Abbreviation: region,
		ID:           code,
		DialCode:     code,
	}, true
}

func regionName(region string, namer display.Namer) string {
	if namer == nil {
		return region
	}
	parsed, err := language.ParseRegion(region)
	if err != nil {
		return region
	}
	if name := strings.TrimSpace(namer.Name(parsed)); name != "" {
		return name
	}
	return region
}

func normalizeRegions(regions []string) []string {
	seen := make(map[string]struct{}, len(regions))
	out := make([]string, 0, len(regions))
	for _, region := range regions {
		region = strings.ToUpper(strings.TrimSpace(region))
		if region == "" {
			continue
		}
		if _, ok := seen[region]; ok {
			continue
		}
		seen[region] = struct{}{}
		out = append(out, region)
	}
	sort.Strings(out)
	return out
}
