package hover

import (
	"github.com/dshills/hoverkit/internal/editor"
	"github.com/dshills/hoverkit/internal/surface"
)

// fakeHost records host interactions for assertions. Its layout pass
// mirrors the real host's visibility handling: widgets with no
// placement are hidden, everything else is displayed.
type fakeHost struct {
	info      editor.LayoutInfo
	scrollTop int

	layoutCalls int
	renderCalls int
	focusCalls  int
	focusedNode *surface.Node

	contentAdds    int
	contentRemoves int
	overlayAdds    int
	overlayRemoves int

	// ops records the order of layout/render/focus interactions.
	ops []string
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		info: editor.LayoutInfo{
			GlyphMarginLeft:  0,
			GlyphMarginWidth: 4,
			ContentLeft:      4,
			ContentWidth:     120,
			LineHeight:       1,
		},
	}
}

func (h *fakeHost) AddContentWidget(w editor.ContentWidget) { h.contentAdds++ }

func (h *fakeHost) RemoveContentWidget(w editor.ContentWidget) { h.contentRemoves++ }

func (h *fakeHost) AddOverlayWidget(w editor.OverlayWidget) { h.overlayAdds++ }

func (h *fakeHost) RemoveOverlayWidget(w editor.OverlayWidget) { h.overlayRemoves++ }

func (h *fakeHost) LayoutContentWidget(w editor.ContentWidget) {
	h.layoutCalls++
	h.ops = append(h.ops, "layout")
	if _, ok := w.Placement(); ok {
		w.Node().SetDisplay(surface.DisplayBlock)
	} else {
		w.Node().SetDisplay(surface.DisplayNone)
	}
}

func (h *fakeHost) Render() {
	h.renderCalls++
	h.ops = append(h.ops, "render")
}

func (h *fakeHost) ScrollTop() int {
	return h.scrollTop
}

func (h *fakeHost) TopForLine(line uint32) int {
	return int(line) * h.info.LineHeight
}

func (h *fakeHost) LayoutInfo() editor.LayoutInfo {
	return h.info
}

func (h *fakeHost) FocusNode(n *surface.Node) {
	h.focusedNode = n
	h.ops = append(h.ops, "focus-node")
}

func (h *fakeHost) Focus() {
	h.focusCalls++
	h.focusedNode = nil
	h.ops = append(h.ops, "focus-editor")
}
