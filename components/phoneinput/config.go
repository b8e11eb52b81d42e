package phoneinput

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-phoneinput/components/countries"
	"github.com/goliatone/go-phoneinput/pkg/phoneformat"
)

// Config is the file representation of a field, loaded from YAML (JSON is a
// subset and parses too).
//
//	label: Office Phone
//	name: office_phone
//	required: true
//	country: GB
//	regions: [GB, IE, US]
//	language: en
type Config struct {
	Label       string   `yaml:"label" json:"label"`
	Name        string   `yaml:"name" json:"name"`
	Placeholder string   `yaml:"placeholder" json:"placeholder"`
	Class       string   `yaml:"class" json:"class"`
	Required    bool     `yaml:"required" json:"required"`
	Country     string   `yaml:"country" json:"country"`
	Value       *string  `yaml:"value" json:"value"`
	Regions     []string `yaml:"regions" json:"regions"`
	Language    string   `yaml:"language" json:"language"`
}

// LoadConfig decodes a Config from r. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if r == nil {
		return cfg, fmt.Errorf("phoneinput: missing config reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("phoneinput: read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("phoneinput: decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFS reads and decodes the config file at path inside fsys.
func LoadConfigFS(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("phoneinput: missing filesystem")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("phoneinput: read %s: %w", path, err)
	}
	cfg, err := LoadConfig(bytes.NewReader(data))
	if err != nil {
		return cfg, fmt.Errorf("%w (file %s)", err, path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if lang := strings.TrimSpace(c.Language); lang != "" {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("phoneinput: invalid language %q: %w", lang, err)
		}
	}
	return nil
}

// Options converts the config into field options. Regions and language build a
// dedicated country list; otherwise the default directory is used. Without a
// country, an E.164 value selects the region it belongs to.
func (c Config) Options() []OptionFn {
	fns := []OptionFn{
		WithLabel(c.Label),
		WithName(c.Name),
		WithPlaceholder(c.Placeholder),
		WithClassName(c.Class),
		WithRequired(c.Required),
	}
	if country := c.country(); country != "" {
		fns = append(fns, WithCountry(country))
	}
	if c.Value != nil {
		fns = append(fns, WithValue(*c.Value))
	}

	var listFns []countries.OptionFn
	if len(c.Regions) > 0 {
		listFns = append(listFns, countries.WithRegions(c.Regions))
	}
	if lang := strings.TrimSpace(c.Language); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			listFns = append(listFns, countries.WithLanguage(tag))
		}
	}
	if len(listFns) > 0 {
		fns = append(fns, WithCountries(countries.List(listFns...)))
	}
	return fns
}

func (c Config) country() string {
	if country := strings.TrimSpace(c.Country); country != "" {
		return country
	}
	if c.Value == nil {
		return ""
	}
	return phoneformat.Region(*c.Value)
}
