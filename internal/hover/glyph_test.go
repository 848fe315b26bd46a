package hover

import (
	"strings"
	"testing"

	"github.com/dshills/hoverkit/internal/surface"
)

func TestGlyphHoverShowPositions(t *testing.T) {
	host := newFakeHost()
	host.info.GlyphMarginLeft = 2
	host.info.GlyphMarginWidth = 4
	host.scrollTop = 3

	w := NewGlyph("g1")
	w.Attach(host)

	w.ShowAt(7)

	if w.Node().Display() != surface.DisplayBlock {
		t.Errorf("display = %v after ShowAt, want block", w.Node().Display())
	}
	if got, want := w.Node().Left(), 2+4; got != want {
		t.Errorf("left = %d, want %d (margin left + margin width)", got, want)
	}
	if got, want := w.Node().Top(), 7-3; got != want {
		t.Errorf("top = %d, want %d (line top - scroll top)", got, want)
	}

	w.Hide()
	if w.Node().Display() != surface.DisplayNone {
		t.Errorf("display = %v after Hide, want none", w.Node().Display())
	}
}

func TestGlyphHoverShowTwiceRefreshesPosition(t *testing.T) {
	host := newFakeHost()
	w := NewGlyph("g2")
	w.Attach(host)

	w.ShowAt(5)
	firstTop := w.Node().Top()

	// The display state must flip only on the hidden-to-visible
	// transition: a second ShowAt leaves externally forced display
	// state alone while still refreshing the position.
	w.Node().SetDisplay(surface.DisplayNone)
	host.scrollTop = 2
	w.ShowAt(5)

	if w.Node().Display() != surface.DisplayNone {
		t.Error("second ShowAt flipped display state while already visible")
	}
	if got := w.Node().Top(); got == firstTop {
		t.Errorf("top = %d after scroll, want refreshed position", got)
	}
	if got, want := w.Node().Top(), 5-2; got != want {
		t.Errorf("top = %d, want %d", got, want)
	}
}

func TestGlyphHoverTracksScroll(t *testing.T) {
	host := newFakeHost()
	w := NewGlyph("g3")
	w.Attach(host)

	tests := []struct {
		line      uint32
		scrollTop int
		wantTop   int
	}{
		{0, 0, 0},
		{10, 0, 10},
		{10, 4, 6},
		{3, 10, -7}, // scrolled past the line; negative tops are the host's problem
	}

	for _, tt := range tests {
		host.scrollTop = tt.scrollTop
		w.ShowAt(tt.line)
		if got := w.Node().Top(); got != tt.wantTop {
			t.Errorf("ShowAt(%d) at scroll %d: top = %d, want %d",
				tt.line, tt.scrollTop, got, tt.wantTop)
		}
	}
}

func TestGlyphHoverPlacementAlwaysAbsent(t *testing.T) {
	w := NewGlyph("g4")
	w.Attach(newFakeHost())

	if _, ok := w.Placement(); ok {
		t.Error("Placement() present while hidden, want absent")
	}
	w.ShowAt(5)
	if _, ok := w.Placement(); ok {
		t.Error("Placement() present while visible, want absent for overlay widgets")
	}
}

func TestGlyphHoverAccessibilityMarkings(t *testing.T) {
	w := NewGlyph("g5")

	check := func(stage string) {
		t.Helper()
		if got := w.Node().Attribute(surface.AttrHiddenFromAccessibility); got != "true" {
			t.Errorf("%s: aria-hidden = %q, want %q", stage, got, "true")
		}
		if got := w.Node().Attribute(surface.AttrRole); got != "presentation" {
			t.Errorf("%s: role = %q, want %q", stage, got, "presentation")
		}
	}

	check("at construction")
	w.Attach(newFakeHost())
	w.ShowAt(3)
	check("while visible")
	w.Hide()
	check("after hide")
}

func TestGlyphHoverHideWhenHiddenIsNoop(t *testing.T) {
	w := NewGlyph("g6")
	w.Attach(newFakeHost())

	w.Hide()
	if w.Visible() {
		t.Error("Visible() = true after Hide on hidden widget")
	}
	if w.Node().Display() != surface.DisplayNone {
		t.Error("display changed by Hide on hidden widget")
	}
}

func TestGlyphHoverDispose(t *testing.T) {
	host := newFakeHost()
	w := NewGlyph("g7")
	w.Attach(host)
	w.ShowAt(1)

	w.Dispose()

	if w.Visible() {
		t.Error("widget visible after Dispose")
	}
	if host.overlayRemoves != 1 {
		t.Errorf("overlay removes = %d, want 1", host.overlayRemoves)
	}

	w.Dispose()
	if host.overlayRemoves != 1 {
		t.Errorf("overlay removes after double Dispose = %d, want 1", host.overlayRemoves)
	}

	w.ShowAt(2)
	if w.Visible() {
		t.Error("ShowAt after Dispose made the widget visible")
	}
}

func TestGlyphHoverAttachIsExplicit(t *testing.T) {
	host := newFakeHost()
	w := NewGlyph("g8")

	if host.overlayAdds != 0 {
		t.Fatalf("construction registered with host: adds = %d, want 0", host.overlayAdds)
	}

	w.Attach(host)
	w.Attach(host)
	if host.overlayAdds != 1 {
		t.Errorf("overlay adds = %d, want 1", host.overlayAdds)
	}
}

func TestGlyphHoverGeneratedID(t *testing.T) {
	a := NewGlyph("")
	b := NewGlyph("")

	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("generated ids %q and %q, want unique non-empty", a.ID(), b.ID())
	}
	if !strings.HasPrefix(a.ID(), "glyph-hover-") {
		t.Errorf("generated id %q missing glyph-hover- prefix", a.ID())
	}
}
