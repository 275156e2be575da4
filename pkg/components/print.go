// Package components renders summary lines as styled terminal text.
package components

import (
	"io"
	"strings"

	"gitlab.com/tinyland/lab/minifetch/pkg/summary"
)

// PrintOptions controls the layout of the printed summary.
type PrintOptions struct {
	// Align pads headers so every value starts in the same column.
	Align bool
	// Separator prints a dashed rule under the title.
	Separator bool
}

// Printer turns summary lines into styled text.
type Printer struct {
	styles Styles
	opts   PrintOptions
}

// NewPrinter returns a Printer using styles.
func NewPrinter(styles Styles, opts PrintOptions) *Printer {
	return &Printer{styles: styles, opts: opts}
}

// Render returns the printed form of lines, one per row, each terminated by
// a newline.
func (p *Printer) Render(lines []summary.Line) string {
	width := 0
	if p.opts.Align {
		width = headerWidth(lines)
	}

	var b strings.Builder
	for _, l := range lines {
		if l.Field == summary.FieldTitle {
			b.WriteString(p.styles.Title.Render(l.Value))
			b.WriteByte('\n')
			if p.opts.Separator {
				b.WriteString(p.styles.Separator.Render(Rule(l.Value, '-')))
				b.WriteByte('\n')
			}
			continue
		}
		if l.Header != "" {
			label := p.styles.Header.Render(l.Header) + ":"
			if width > 0 {
				label = PadRight(label, width+1)
			}
			b.WriteString(label)
			b.WriteByte(' ')
		}
		b.WriteString(p.styles.Value.Render(l.Value))
		b.WriteByte('\n')
	}
	return b.String()
}

// Fprint writes the printed form of lines to w.
func (p *Printer) Fprint(w io.Writer, lines []summary.Line) error {
	_, err := io.WriteString(w, p.Render(lines))
	return err
}

// headerWidth returns the widest header among the non-title lines.
func headerWidth(lines []summary.Line) int {
	width := 0
	for _, l := range lines {
		if l.Field == summary.FieldTitle {
			continue
		}
		if w := VisibleLen(l.Header); w > width {
			width = w
		}
	}
	return width
}
