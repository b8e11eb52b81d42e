package tui

// OutputFormat controls how the collected number is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits application/json payloads.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded payloads.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional prefixes the renderer applies to messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// DefaultMaxAttempts bounds how often the number prompt repeats.
const DefaultMaxAttempts = 3

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithMaxAttempts sets how many invalid numbers are accepted before giving up.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithSkipCountry keeps the field's current country instead of prompting.
func WithSkipCountry(skip bool) Option {
	return func(r *Renderer) {
		r.skipCountry = skip
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
