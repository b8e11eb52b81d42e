package phoneinput

import "strings"

type classToggle struct {
	name string
	on   bool
}

func classList(toggles ...classToggle) []string {
	out := make([]string, 0, len(toggles))
	for _, toggle := range toggles {
		if !toggle.on {
			continue
		}
		out = append(out, toggle.name)
	}
	return out
}

// ClassNames joins the enabled classes with any extra caller classes. Extra
// values are split on whitespace and deduplicated against the enabled set.
func ClassNames(enabled []string, extra ...string) string {
	seen := make(map[string]struct{}, len(enabled))
	out := make([]string, 0, len(enabled)+len(extra))
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, name := range enabled {
		add(strings.TrimSpace(name))
	}
	for _, value := range extra {
		for _, name := range strings.Fields(value) {
			add(name)
		}
	}
	return strings.Join(out, " ")
}
