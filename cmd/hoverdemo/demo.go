package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hoverkit/internal/config"
	"github.com/dshills/hoverkit/internal/editor"
	"github.com/dshills/hoverkit/internal/hover"
	"github.com/dshills/hoverkit/internal/key"
	"github.com/dshills/hoverkit/internal/layout"
	"github.com/dshills/hoverkit/internal/surface"
)

// sampleText is the read-only buffer shown by the demo.
var sampleText = []string{
	"package main",
	"",
	"import \"fmt\"",
	"",
	"// Greet prints a friendly greeting for the given name.",
	"func Greet(name string) {",
	"\tfmt.Printf(\"hello, %s!\\n\", name)",
	"}",
	"",
	"func main() {",
	"\tGreet(\"hoverkit\")",
	"}",
	"",
	"// Move the cursor with the arrow keys, then press 'h' for a",
	"// content hover or 'g' for a glyph-margin indicator.",
}

// demo wires the hover widgets to a tcell screen.
type demo struct {
	screen tcell.Screen

	metrics *layout.Metrics
	scroll  *layout.Scroll
	host    *editor.Editor

	contentHover *hover.ContentHover
	glyphHover   *hover.GlyphHover

	cursorLine uint32
	cursorCol  int

	// conf is replaced by the config watcher goroutine.
	confMu sync.Mutex
	conf   config.Config
}

func newDemo(conf config.Config) (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	metrics := layout.New(conf.LayoutMetrics())
	metrics.SetLineCount(uint32(len(sampleText)))
	scroll := layout.NewScroll()
	scroll.SetMaxTop(len(sampleText) - 1)

	host := editor.New(metrics, scroll)
	_, height := screen.Size()
	host.SetViewportHeight(height)

	d := &demo{
		screen:  screen,
		metrics: metrics,
		scroll:  scroll,
		host:    host,
		conf:    conf,
	}
	host.SetRenderSink(d.draw)

	d.contentHover = hover.NewContent("demo-content-hover", conf.HoverWidget())
	d.contentHover.Attach(host)

	d.glyphHover = hover.NewGlyph("demo-glyph-hover")
	d.glyphHover.Node().SetText(conf.Glyph.Indicator)
	d.glyphHover.Attach(host)

	return d, nil
}

// Shutdown restores the terminal.
func (d *demo) Shutdown() {
	d.contentHover.Dispose()
	d.glyphHover.Dispose()
	d.screen.Fini()
}

// ApplyConfig queues a configuration change onto the UI loop.
func (d *demo) ApplyConfig(conf config.Config) {
	d.confMu.Lock()
	d.conf = conf
	d.confMu.Unlock()
	_ = d.screen.PostEvent(tcell.NewEventInterrupt(conf))
}

// Run drives the event loop until the user quits.
func (d *demo) Run() error {
	d.host.Render()

	for {
		switch ev := d.screen.PollEvent().(type) {
		case *tcell.EventResize:
			_, height := ev.Size()
			d.host.SetViewportHeight(height)
			d.screen.Sync()
			d.host.Render()

		case *tcell.EventInterrupt:
			if conf, ok := ev.Data().(config.Config); ok {
				d.reconfigure(conf)
			}
			d.host.Render()

		case *tcell.EventKey:
			quit, err := d.handleKey(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}

		case nil:
			return nil
		}
	}
}

// reconfigure applies a freshly loaded configuration.
func (d *demo) reconfigure(conf config.Config) {
	d.metrics.SetConfig(conf.LayoutMetrics())
	d.glyphHover.Node().SetText(conf.Glyph.Indicator)
	if d.glyphHover.Visible() {
		d.glyphHover.ShowAt(d.glyphHover.Line())
	}
}

// handleKey processes one key event. It returns true when the demo
// should exit.
func (d *demo) handleKey(ev *tcell.EventKey) (bool, error) {
	kev := key.FromTcell(ev)

	// A focused widget sees the key first; the Escape listener on the
	// hover container dismisses it.
	if d.host.DispatchKey(kev) {
		d.host.Render()
		return false, nil
	}

	switch {
	case kev.Key == key.KeyEscape:
		d.contentHover.Hide()
	case kev.Key == key.KeyUp:
		d.moveCursor(-1, 0)
	case kev.Key == key.KeyDown:
		d.moveCursor(1, 0)
	case kev.Key == key.KeyLeft:
		d.moveCursor(0, -1)
	case kev.Key == key.KeyRight:
		d.moveCursor(0, 1)
	case kev.Key == key.KeyPageUp:
		d.scrollBy(-5)
	case kev.Key == key.KeyPageDown:
		d.scrollBy(5)
	case kev.IsRune() && kev.Rune == 'h':
		d.toggleContentHover()
	case kev.IsRune() && kev.Rune == 'g':
		d.toggleGlyphHover()
	case kev.IsRune() && kev.Rune == 'q':
		return true, nil
	}

	d.host.Render()
	return false, nil
}

// moveCursor moves the cursor within the sample buffer.
func (d *demo) moveCursor(dLine, dCol int) {
	line := int(d.cursorLine) + dLine
	if line < 0 {
		line = 0
	}
	if line >= len(sampleText) {
		line = len(sampleText) - 1
	}
	d.cursorLine = uint32(line)

	d.cursorCol += dCol
	if d.cursorCol < 0 {
		d.cursorCol = 0
	}
	if limit := len(sampleText[line]); d.cursorCol > limit {
		d.cursorCol = limit
	}
}

// scrollBy scrolls the viewport and refreshes the glyph indicator so
// it tracks the new scroll offset without a hide/show cycle.
func (d *demo) scrollBy(delta int) {
	d.scroll.ScrollBy(delta)
	if d.glyphHover.Visible() {
		d.glyphHover.ShowAt(d.glyphHover.Line())
	}
	if d.contentHover.Visible() {
		d.host.LayoutContentWidget(d.contentHover)
	}
}

// toggleContentHover shows hover content for the cursor position, or
// hides it when already visible.
func (d *demo) toggleContentHover() {
	if d.contentHover.Visible() {
		d.contentHover.Hide()
		return
	}

	d.confMu.Lock()
	conf := d.conf
	d.confMu.Unlock()

	d.contentHover.SetContent(fmt.Sprintf(
		"line %d, column %d\n%s",
		d.cursorLine+1, d.cursorCol+1, sampleText[d.cursorLine]))
	d.contentHover.ShowAt(
		editor.Position{Line: d.cursorLine, Col: uint32(d.cursorCol)},
		conf.Hover.StealFocus)
}

// toggleGlyphHover shows the margin indicator at the cursor line, or
// hides it when already visible at that line.
func (d *demo) toggleGlyphHover() {
	if d.glyphHover.Visible() && d.glyphHover.Line() == d.cursorLine {
		d.glyphHover.Hide()
		return
	}
	d.glyphHover.ShowAt(d.cursorLine)
}

// draw is the host's render sink: buffer, margin, then widgets.
func (d *demo) draw() {
	d.screen.Clear()

	width, height := d.screen.Size()
	info := d.host.LayoutInfo()
	top := d.scroll.Top()

	marginStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle := tcell.StyleDefault

	for row := 0; row < height; row++ {
		line := top + row
		if line >= len(sampleText) {
			break
		}
		number := fmt.Sprintf("%*d ", info.GlyphMarginWidth-1, line+1)
		drawString(d.screen, info.GlyphMarginLeft, row, number, marginStyle)
		drawString(d.screen, info.ContentLeft, row, expandTabs(sampleText[line]), textStyle)
	}

	d.drawOverlayWidgets(width)
	d.drawContentWidgets(width, height)

	cursorRow := int(d.cursorLine) - top
	if cursorRow >= 0 && cursorRow < height {
		d.screen.ShowCursor(info.ContentLeft+d.cursorCol, cursorRow)
	} else {
		d.screen.HideCursor()
	}

	d.screen.Show()
}

// drawOverlayWidgets paints self-positioned widgets at their own
// coordinates.
func (d *demo) drawOverlayWidgets(width int) {
	style := tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.ColorYellow)

	for _, w := range d.host.OverlayWidgets() {
		node := w.Node()
		if !node.Visible() {
			continue
		}
		drawString(d.screen, node.Left(), node.Top(), node.Text(), style)
	}
}

// drawContentWidgets paints host-placed widgets as bordered boxes.
func (d *demo) drawContentWidgets(width, height int) {
	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorDarkBlue)

	for _, w := range d.host.ContentWidgets() {
		node := w.Node()
		if !node.Visible() {
			continue
		}

		for row := 0; row < node.Height(); row++ {
			for col := 0; col < node.Width(); col++ {
				x, y := node.Left()+col, node.Top()+row
				if x < width && y < height {
					d.screen.SetContent(x, y, ' ', nil, style)
				}
			}
		}

		for _, child := range node.Children() {
			rows := surface.WrapText(child.Text(), node.Width())
			for i, row := range rows {
				if i >= node.Height() {
					break
				}
				drawString(d.screen, node.Left(), node.Top()+i, row, style)
			}
		}
	}
}

// drawString paints a string starting at (x, y).
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}

// expandTabs replaces tabs with four spaces for display.
func expandTabs(s string) string {
	out := ""
	for _, r := range s {
		if r == '\t' {
			out += "    "
		} else {
			out += string(r)
		}
	}
	return out
}
