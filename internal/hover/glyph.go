package hover

import (
	"github.com/google/uuid"

	"github.com/dshills/hoverkit/internal/editor"
	"github.com/dshills/hoverkit/internal/surface"
)

// GlyphHover is a hover indicator for the glyph margin, anchored to a
// line number. It registers as an overlay widget and positions itself
// by direct coordinate assignment just right of the margin.
//
// GlyphHover is not safe for concurrent use. All methods must run on
// the host UI goroutine.
type GlyphHover struct {
	id string

	host editor.Host
	node *surface.Node

	visible  bool
	line     uint32
	disposed bool
}

// NewGlyph creates a glyph hover widget. An empty id gets a generated
// one. The node is permanently hidden from assistive technology; it
// mirrors information already conveyed at the anchor line.
func NewGlyph(id string) *GlyphHover {
	if id == "" {
		id = "glyph-hover-" + uuid.NewString()
	}

	node := surface.NewNode("glyph-hover-widget")
	node.SetAttribute(surface.AttrHiddenFromAccessibility, "true")
	node.SetAttribute(surface.AttrRole, "presentation")

	return &GlyphHover{
		id:   id,
		node: node,
	}
}

// ID returns the widget identity.
func (w *GlyphHover) ID() string {
	return w.id
}

// Node returns the widget node.
func (w *GlyphHover) Node() *surface.Node {
	return w.node
}

// Visible reports whether the widget is currently shown.
func (w *GlyphHover) Visible() bool {
	return w.visible
}

// Line returns the anchor line of the last ShowAt call.
func (w *GlyphHover) Line() uint32 {
	return w.line
}

// Attach registers the widget with a host as an overlay widget.
// Attaching twice, or after Dispose, is a no-op.
func (w *GlyphHover) Attach(host editor.Host) {
	if w.disposed || w.host != nil {
		return
	}
	w.host = host
	host.AddOverlayWidget(w)
}

// Detach unregisters the widget from its host.
func (w *GlyphHover) Detach() {
	if w.host == nil {
		return
	}
	w.host.RemoveOverlayWidget(w)
	w.host = nil
}

// ShowAt anchors the widget at lineNumber. Display state flips only on
// the hidden-to-visible transition, but the position is recomputed
// against the current scroll offset on every call so the widget tracks
// scrolling without a hide/show cycle.
func (w *GlyphHover) ShowAt(lineNumber uint32) {
	if w.disposed {
		return
	}

	w.line = lineNumber
	if !w.visible {
		w.visible = true
		w.node.SetDisplay(surface.DisplayBlock)
	}

	if w.host == nil {
		return
	}
	info := w.host.LayoutInfo()
	w.node.SetLeft(info.GlyphMarginLeft + info.GlyphMarginWidth)
	w.node.SetTop(w.host.TopForLine(lineNumber) - w.host.ScrollTop())
}

// Hide dismisses the widget. It is a no-op when already hidden.
func (w *GlyphHover) Hide() {
	if !w.visible {
		return
	}
	w.visible = false
	w.node.SetDisplay(surface.DisplayNone)
}

// Placement always reports absent: the widget sits outside the host's
// content-widget placement protocol and self-positions instead.
func (w *GlyphHover) Placement() (editor.Placement, bool) {
	return editor.Placement{}, false
}

// Dispose hides the widget and detaches it from its host. It is safe
// to call more than once. No operations are valid afterward; they
// degrade to no-ops.
func (w *GlyphHover) Dispose() {
	w.Hide()
	w.Detach()
	w.disposed = true
}
