package phoneinput

import (
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// labelSanitizer strips all markup from caller supplied label text.
func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}

// Render writes the field markup for its current state: the root element with
// the state classes, the country select and the labelled text input.
func (f *Field) Render(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("phoneinput: missing writer")
	}
	if _, err := io.WriteString(w, f.HTML()); err != nil {
		return fmt.Errorf("phoneinput: render: %w", err)
	}
	return nil
}

// HTML returns the field markup as a string.
func (f *Field) HTML() string {
	var b strings.Builder

	b.WriteString(`<div class="`)
	b.WriteString(html.EscapeString(f.ClassName()))
	b.WriteString(`">`)
	b.WriteByte('\n')

	f.writeSelect(&b)

	b.WriteString(`  <div class="sh-input-phone-text">`)
	b.WriteByte('\n')
	b.WriteString(`    <label>`)
	b.WriteByte('\n')
	b.WriteString(`      <span class="label">`)
	b.WriteString(labelSanitizer().Sanitize(f.props.Label))
	b.WriteString(`</span>`)
	b.WriteByte('\n')
	b.WriteString(`      <span class="`)
	b.WriteString(html.EscapeString(f.RequiredClassName()))
	b.WriteString(`">required</span>`)
	b.WriteByte('\n')

	b.WriteString(`      <input class="sh-phone-input" type="text"`)
	if name := strings.TrimSpace(f.props.Name); name != "" {
		writeAttr(&b, "name", name)
	}
	writeAttr(&b, "placeholder", f.placeholder)
	writeAttr(&b, "value", f.value)
	if f.props.Required {
		b.WriteString(` aria-required="true"`)
	}
	if f.flags.Has(FlagInvalid) {
		b.WriteString(` aria-invalid="true"`)
	}
	b.WriteString(`>`)
	b.WriteByte('\n')

	b.WriteString(`    </label>`)
	b.WriteByte('\n')
	b.WriteString(`  </div>`)
	b.WriteByte('\n')
	b.WriteString(`</div>`)
	b.WriteByte('\n')
	return b.String()
}

func (f *Field) writeSelect(b *strings.Builder) {
	b.WriteString(`  <select class="sh-input-select"`)
	if name := strings.TrimSpace(f.props.Name); name != "" {
		writeAttr(b, "name", name+"_country")
	}
	b.WriteString(`>`)
	b.WriteByte('\n')
	for _, option := range f.options {
		b.WriteString(`    <option`)
		writeAttr(b, "value", option.Abbreviation)
		writeAttr(b, "title", option.Name)
		if option.Abbreviation == f.country.Abbreviation {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(html.EscapeString(option.Label))
		b.WriteString(`</option>`)
		b.WriteByte('\n')
	}
	b.WriteString(`  </select>`)
	b.WriteByte('\n')
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
}
