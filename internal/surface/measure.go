package surface

import (
	"strings"

	"github.com/rivo/uniseg"
)

// WrapText wraps text at maxWidth layout units and returns the
// resulting rows. Wrapping is greedy on grapheme-cluster boundaries so
// combining sequences and wide characters never split. A maxWidth of
// zero or less means unconstrained. Empty text produces no rows.
func WrapText(text string, maxWidth int) []string {
	if text == "" {
		return nil
	}

	var rows []string
	for _, line := range strings.Split(text, "\n") {
		rows = append(rows, wrapLine(line, maxWidth)...)
	}
	return rows
}

// wrapLine wraps a single source line.
func wrapLine(line string, maxWidth int) []string {
	if line == "" {
		return []string{""}
	}

	var rows []string
	var row strings.Builder
	cur := 0

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := g.Width()
		if maxWidth > 0 && cur > 0 && cur+w > maxWidth {
			rows = append(rows, row.String())
			row.Reset()
			cur = 0
		}
		row.WriteString(g.Str())
		cur += w
	}
	return append(rows, row.String())
}

// MeasureText returns the rendered box of text wrapped at maxWidth
// layout units: the widest wrapped row and the row count.
func MeasureText(text string, maxWidth int) (width, height int) {
	rows := WrapText(text, maxWidth)
	for _, row := range rows {
		if w := uniseg.StringWidth(row); w > width {
			width = w
		}
	}
	return width, len(rows)
}

// Measure returns the rendered box of the node's content constrained
// to maxWidth: its own text plus children stacked vertically.
func (n *Node) Measure(maxWidth int) (width, height int) {
	width, height = MeasureText(n.text, maxWidth)
	for _, c := range n.children {
		cw, ch := c.Measure(maxWidth)
		if cw > width {
			width = cw
		}
		height += ch
	}
	return width, height
}
