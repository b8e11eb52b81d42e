package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-phoneinput/components/phoneinput"
	"github.com/goliatone/go-phoneinput/pkg/phoneformat"
)

// Renderer drives a phone input field from the terminal: a country select
// followed by a number prompt that repeats until the field validates.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	maxAttempts  int
	skipCountry  bool
	theme        Theme
}

// Submission is the serialized result of a prompt session.
type Submission struct {
	Name    string `json:"name,omitempty"`
	Value   string `json:"value"`
	Display string `json:"display"`
	Country string `json:"country"`
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		maxAttempts:  DefaultMaxAttempts,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver()
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render runs Prompt and serializes the submission in the configured format.
func (r *Renderer) Render(ctx context.Context, field *phoneinput.Field) ([]byte, error) {
	sub, err := r.Prompt(ctx, field)
	if err != nil {
		return nil, err
	}
	return r.encode(sub)
}

// Prompt mounts field when needed, asks for a country and a number, and feeds
// the answers through the field's event handlers. The field stays mounted.
func (r *Renderer) Prompt(ctx context.Context, field *phoneinput.Field) (Submission, error) {
	if ctx == nil {
		return Submission{}, errors.New("tui: context is required")
	}
	if field == nil {
		return Submission{}, errors.New("tui: field is required")
	}
	if err := ctx.Err(); err != nil {
		return Submission{}, err
	}

	field.Mount()
	props := field.Props()

	if !r.skipCountry {
		if err := r.promptCountry(ctx, field, props); err != nil {
			return Submission{}, err
		}
	}

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		field.Focus(phoneinput.Event{})
		input, err := r.driver.Input(ctx, InputConfig{
			Message:   inputMessage(props),
			Default:   field.DisplayValue(),
			Help:      fmt.Sprintf("Digits only, formatted for %s", field.Country().Name),
			Validator: inputValidator(props, field.Country().Abbreviation),
		})
		if err != nil {
			return Submission{}, err
		}
		field.Change(input)
		field.Blur(phoneinput.Event{})

		result := field.Validate(true)
		if result.IsValid {
			return Submission{
				Name:    props.Name,
				Value:   field.Value(),
				Display: field.DisplayValue(),
				Country: field.Country().Abbreviation,
			}, nil
		}
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+result.Msg); err != nil {
			return Submission{}, err
		}
	}
	return Submission{}, ErrTooManyAttempts
}

func (r *Renderer) promptCountry(ctx context.Context, field *phoneinput.Field, props phoneinput.Props) error {
	options := field.Countries()
	if len(options) == 0 {
		return ErrNoCountries
	}

	labels := make([]string, len(options))
	current := field.Country().Abbreviation
	defaultIdx := 0
	for i, option := range options {
		labels[i] = option.Name
		if option.Abbreviation == current {
			defaultIdx = i
		}
	}

	message := "Country"
	if label := strings.TrimSpace(props.Label); label != "" {
		message = label + " country"
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      labels,
		DefaultIndex: defaultIdx,
		PageSize:     10,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(options) {
		return fmt.Errorf("%w: index %d", phoneinput.ErrUnknownCountry, idx)
	}
	return field.SelectCountry(options[idx])
}

// inputValidator checks an answer the way the field will once it is typed in,
// so the terminal can reject it before it reaches the field.
func inputValidator(props phoneinput.Props, region string) func(string) error {
	return func(raw string) error {
		digits := phoneformat.Digits(raw)
		if digits == "" {
			if props.Required {
				return errors.New(phoneinput.MessageRequired)
			}
			return nil
		}
		display := props.Formatter.ToNational(digits, region)
		if !props.Formatter.IsValid(display, region) {
			return errors.New(phoneinput.MessageInvalid)
		}
		return nil
	}
}

func inputMessage(props phoneinput.Props) string {
	message := strings.TrimSpace(props.Label)
	if message == "" {
		message = "Phone number"
	}
	if props.Required {
		message += " (required)"
	}
	return message
}

func (r *Renderer) encode(sub Submission) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		key := sub.Name
		if key == "" {
			key = "phone"
		}
		values := url.Values{}
		values.Set(key, sub.Value)
		values.Set(key+"_country", sub.Country)
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		if r.theme.InfoPrefix != "" {
			b.WriteString(r.theme.InfoPrefix)
		}
		fmt.Fprintf(&b, "%s (%s) %s\n", sub.Value, sub.Country, sub.Display)
		return []byte(b.String()), nil
	default:
		data, err := json.Marshal(sub)
		if err != nil {
			return nil, fmt.Errorf("tui: encode submission: %w", err)
		}
		return data, nil
	}
}
