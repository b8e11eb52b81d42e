package countries

import (
	"net/http"

	"golang.org/x/text/language"
)

type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath       string
	SearchParam     string
	LimitParam      string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	// Language selects the display names; defaults to English.
	Language language.Tag
	// Regions restricts the directory to the listed region codes.
	Regions []string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       "/api/countries",
		SearchParam:     "q",
		LimitParam:      "limit",
		DefaultLimit:    50,
		MaxLimit:        300,
		EmptySearchMode: EmptySearchTop,
		Language:        language.English,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 300
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchTop
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/countries"
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.Language == language.Und {
		opts.Language = language.English
	}
	if opts.Regions != nil {
		opts.Regions = append([]string{}, opts.Regions...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithLanguage selects the language used for country display names.
func WithLanguage(tag language.Tag) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Language = tag
	}
}

// WithRegions restricts the directory to the supplied region codes. Codes
// without phone metadata are dropped when the list is built.
func WithRegions(regions []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if regions == nil {
			o.Regions = nil
			return
		}
		o.Regions = append([]string{}, regions...)
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
