package countries

import (
	"sort"
	"strconv"
	"strings"
)

// Search filters options by name, abbreviation or calling code. Prefix matches
// sort ahead of substring matches; ties keep abbreviation order.
func Search(options []Option, query string, limit int, opts Options) []Option {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(options) <= limit {
				return append([]Option{}, options...)
			}
			return append([]Option{}, options[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedOption, 0, 16)
	for _, option := range options {
		rank, ok := matchRank(option, q)
		if !ok {
			continue
		}
		matches = append(matches, matchedOption{option: option, rank: rank})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].option.Abbreviation < matches[j].option.Abbreviation
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Option, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.option)
	}
	return out
}

type matchedOption struct {
	option Option
	rank   int
}

const (
	rankExact = iota
	rankPrefix
	rankContains
)

func matchRank(option Option, q string) (int, bool) {
	abbr := strings.ToLower(option.Abbreviation)
	dial := strconv.Itoa(option.DialCode)
	if abbr == q || option.Label == q || dial == q {
		return rankExact, true
	}

	name := strings.ToLower(option.Name)
	if strings.HasPrefix(name, q) || strings.HasPrefix(option.Label, q) || strings.HasPrefix(dial, q) {
		return rankPrefix, true
	}
	if strings.Contains(name, q) {
		return rankContains, true
	}
	return 0, false
}
