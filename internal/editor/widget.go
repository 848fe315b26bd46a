package editor

import (
	"github.com/dshills/hoverkit/internal/surface"
)

// ContentWidget is a pluggable UI element anchored to a text position.
// The host computes its on-screen placement from the requested anchor
// and preference order.
type ContentWidget interface {
	// ID returns the unique identifier for this widget, stable for the
	// widget's lifetime.
	ID() string

	// Node returns the widget's root surface node.
	Node() *surface.Node

	// Placement returns the requested placement. The second return is
	// false when the widget should not be rendered.
	Placement() (Placement, bool)
}

// OverlayWidget is a pluggable UI element that positions itself by
// direct coordinate assignment, outside the host's placement protocol.
type OverlayWidget interface {
	// ID returns the unique identifier for this widget.
	ID() string

	// Node returns the widget's root surface node.
	Node() *surface.Node
}

// Host is the capability set a widget needs from its editor.
type Host interface {
	// AddContentWidget registers a content-anchored widget.
	AddContentWidget(w ContentWidget)

	// RemoveContentWidget unregisters a content-anchored widget.
	RemoveContentWidget(w ContentWidget)

	// AddOverlayWidget registers a viewport-overlay widget.
	AddOverlayWidget(w OverlayWidget)

	// RemoveOverlayWidget unregisters a viewport-overlay widget.
	RemoveOverlayWidget(w OverlayWidget)

	// LayoutContentWidget recomputes a content widget's on-screen
	// position from its current placement request.
	LayoutContentWidget(w ContentWidget)

	// Render forces a synchronous render pass.
	Render()

	// ScrollTop returns the current vertical scroll offset.
	ScrollTop() int

	// TopForLine returns the vertical offset of a line from the top of
	// the document.
	TopForLine(line uint32) int

	// LayoutInfo returns the current structural layout metrics.
	LayoutInfo() LayoutInfo

	// FocusNode moves input focus to the given node.
	FocusNode(n *surface.Node)

	// Focus returns input focus to the editor's primary input surface.
	Focus()
}
