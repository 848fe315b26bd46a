package editor

import (
	"sync"

	"github.com/dshills/hoverkit/internal/key"
	"github.com/dshills/hoverkit/internal/layout"
	"github.com/dshills/hoverkit/internal/surface"
)

// RenderSink is invoked by Render to flush the surface to a backend.
type RenderSink func()

// Editor is a concrete Host backed by layout metrics and scroll state.
// It keys registered widgets by ID and implements the content-widget
// placement protocol.
type Editor struct {
	mu sync.RWMutex

	metrics *layout.Metrics
	scroll  *layout.Scroll

	// viewportHeight bounds vertical placement (0 = unbounded).
	viewportHeight int

	// Registered widgets, keyed by ID, with insertion order preserved
	// for deterministic rendering.
	contentWidgets map[string]ContentWidget
	overlayWidgets map[string]OverlayWidget
	contentOrder   []string
	overlayOrder   []string

	// focused is the node holding input focus; nil means the editor's
	// own input surface has focus.
	focused *surface.Node

	sink RenderSink
}

// New creates an editor host over the given geometry and scroll state.
func New(metrics *layout.Metrics, scroll *layout.Scroll) *Editor {
	return &Editor{
		metrics:        metrics,
		scroll:         scroll,
		contentWidgets: make(map[string]ContentWidget),
		overlayWidgets: make(map[string]OverlayWidget),
	}
}

// SetRenderSink installs the callback invoked on each render pass.
func (e *Editor) SetRenderSink(sink RenderSink) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sink = sink
}

// SetViewportHeight sets the visible height used to bound placement.
func (e *Editor) SetViewportHeight(height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.viewportHeight = height
}

// Metrics returns the editor's layout metrics.
func (e *Editor) Metrics() *layout.Metrics {
	return e.metrics
}

// Scroll returns the editor's scroll state.
func (e *Editor) Scroll() *layout.Scroll {
	return e.scroll
}

// AddContentWidget registers a content-anchored widget.
func (e *Editor) AddContentWidget(w ContentWidget) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := w.ID()
	if _, ok := e.contentWidgets[id]; !ok {
		e.contentOrder = append(e.contentOrder, id)
	}
	e.contentWidgets[id] = w
}

// RemoveContentWidget unregisters a content-anchored widget.
func (e *Editor) RemoveContentWidget(w ContentWidget) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeContentLocked(w.ID())
}

// AddOverlayWidget registers a viewport-overlay widget.
func (e *Editor) AddOverlayWidget(w OverlayWidget) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := w.ID()
	if _, ok := e.overlayWidgets[id]; !ok {
		e.overlayOrder = append(e.overlayOrder, id)
	}
	e.overlayWidgets[id] = w
}

// RemoveOverlayWidget unregisters a viewport-overlay widget.
func (e *Editor) RemoveOverlayWidget(w OverlayWidget) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.overlayWidgets[w.ID()]; !ok {
		return
	}
	delete(e.overlayWidgets, w.ID())
	e.overlayOrder = removeID(e.overlayOrder, w.ID())
}

// removeContentLocked removes a content widget (must hold write lock).
func (e *Editor) removeContentLocked(id string) {
	if _, ok := e.contentWidgets[id]; !ok {
		return
	}
	delete(e.contentWidgets, id)
	e.contentOrder = removeID(e.contentOrder, id)
}

// removeID removes an id from an order slice.
func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// ContentWidgets returns registered content widgets in insertion order.
func (e *Editor) ContentWidgets() []ContentWidget {
	e.mu.RLock()
	defer e.mu.RUnlock()

	widgets := make([]ContentWidget, 0, len(e.contentOrder))
	for _, id := range e.contentOrder {
		widgets = append(widgets, e.contentWidgets[id])
	}
	return widgets
}

// OverlayWidgets returns registered overlay widgets in insertion order.
func (e *Editor) OverlayWidgets() []OverlayWidget {
	e.mu.RLock()
	defer e.mu.RUnlock()

	widgets := make([]OverlayWidget, 0, len(e.overlayOrder))
	for _, id := range e.overlayOrder {
		widgets = append(widgets, e.overlayWidgets[id])
	}
	return widgets
}

// LayoutContentWidget recomputes a content widget's on-screen position.
// A widget with no placement is hidden; otherwise preferences are tried
// in order and the first that fits the viewport wins.
func (e *Editor) LayoutContentWidget(w ContentWidget) {
	node := w.Node()

	placement, ok := w.Placement()
	if !ok {
		node.SetDisplay(surface.DisplayNone)
		return
	}
	node.SetDisplay(surface.DisplayBlock)

	info := e.LayoutInfo()
	anchorTop := e.TopForLine(placement.Position.Line) - e.ScrollTop()

	// Horizontal: at the anchor column, clamped into the content area.
	left := info.ContentLeft + int(placement.Position.Col)
	if maxLeft := info.ContentLeft + info.ContentWidth - node.Width(); left > maxLeft {
		left = maxLeft
	}
	if left < info.ContentLeft {
		left = info.ContentLeft
	}

	e.mu.RLock()
	viewportHeight := e.viewportHeight
	e.mu.RUnlock()

	top, placed := 0, false
	for _, pref := range placement.Preference {
		var candidate int
		switch pref {
		case PlaceAbove:
			candidate = anchorTop - node.Height()
			if candidate < 0 {
				continue
			}
		case PlaceBelow:
			candidate = anchorTop + info.LineHeight
			if viewportHeight > 0 && candidate+node.Height() > viewportHeight {
				continue
			}
		default:
			continue
		}
		top, placed = candidate, true
		break
	}
	if !placed {
		// Nothing fits cleanly; pin to the top of the viewport.
		top = 0
	}

	node.SetLeft(left)
	node.SetTop(top)
}

// Render forces a synchronous render pass through the render sink.
func (e *Editor) Render() {
	e.mu.RLock()
	sink := e.sink
	e.mu.RUnlock()

	if sink != nil {
		sink()
	}
}

// ScrollTop returns the current vertical scroll offset.
func (e *Editor) ScrollTop() int {
	return e.scroll.Top()
}

// TopForLine returns the vertical offset of a line from the top of the
// document.
func (e *Editor) TopForLine(line uint32) int {
	return e.metrics.TopForLine(line)
}

// LayoutInfo returns the current structural layout metrics.
func (e *Editor) LayoutInfo() LayoutInfo {
	return LayoutInfo{
		GlyphMarginLeft:  e.metrics.GlyphMarginLeft(),
		GlyphMarginWidth: e.metrics.GlyphMarginWidth(),
		ContentLeft:      e.metrics.ContentLeft(),
		ContentWidth:     e.metrics.ContentWidth(),
		LineHeight:       e.metrics.LineHeight(),
	}
}

// FocusNode moves input focus to the given node. Non-focusable nodes
// are ignored.
func (e *Editor) FocusNode(n *surface.Node) {
	if n == nil || !n.Focusable() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focused = n
}

// Focus returns input focus to the editor's primary input surface.
func (e *Editor) Focus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focused = nil
}

// FocusedNode returns the node holding input focus, or nil when the
// editor itself has focus.
func (e *Editor) FocusedNode() *surface.Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.focused
}

// DispatchKey routes a key event to the focused node. It returns true
// if a node consumed the dispatch, false when the editor should handle
// the key itself.
func (e *Editor) DispatchKey(ev key.Event) bool {
	e.mu.RLock()
	focused := e.focused
	e.mu.RUnlock()

	if focused == nil {
		return false
	}
	focused.DispatchKeyDown(ev)
	return true
}
