package hover

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/dshills/hoverkit/internal/editor"
	"github.com/dshills/hoverkit/internal/key"
	"github.com/dshills/hoverkit/internal/surface"
)

// maxContentWidth is the hard ceiling on the hover container width in
// layout units, regardless of any max-width style on the container.
const maxContentWidth = 800

// Config holds content hover configuration.
type Config struct {
	// MaxWidth is the initial max-width style applied to the container.
	// Values above the hard ceiling are still capped at it.
	MaxWidth int

	// Padding is added to the measured content width.
	Padding int
}

// DefaultConfig returns the default content hover configuration.
func DefaultConfig() Config {
	return Config{
		MaxWidth: 500,
		Padding:  2,
	}
}

// ContentHover is an in-text hover popup anchored to a buffer position.
// The host computes its placement; the widget sizes itself to its
// content on every show.
//
// ContentHover is not safe for concurrent use. All methods must run on
// the host UI goroutine.
type ContentHover struct {
	id     string
	config Config

	host editor.Host

	container *surface.Node
	contents  *surface.Node

	visible     bool
	anchor      editor.Position
	focusStolen bool
	disposed    bool

	disposables []func()
}

// NewContent creates a content hover widget. An empty id gets a
// generated one. The widget is detached until Attach is called.
func NewContent(id string, config Config) *ContentHover {
	if id == "" {
		id = "content-hover-" + uuid.NewString()
	}

	container := surface.NewNode("hover-widget")
	container.SetFocusable(true)
	if config.MaxWidth > 0 {
		container.SetStyle(surface.PropMaxWidth, strconv.Itoa(config.MaxWidth))
	}

	contents := surface.NewNode("hover-contents")
	contents.SetDisplay(surface.DisplayBlock)
	container.AppendChild(contents)

	w := &ContentHover{
		id:        id,
		config:    config,
		container: container,
		contents:  contents,
	}

	remove := container.OnKeyDown(func(ev key.Event) {
		if ev.Key == key.KeyEscape {
			w.Hide()
		}
	})
	w.disposables = append(w.disposables, remove)

	return w
}

// ID returns the widget identity.
func (w *ContentHover) ID() string {
	return w.id
}

// Node returns the outer container node.
func (w *ContentHover) Node() *surface.Node {
	return w.container
}

// ContentNode returns the inner contents node, the container's sole
// child. Callers render hover content into it.
func (w *ContentHover) ContentNode() *surface.Node {
	return w.contents
}

// SetContent replaces the text shown in the hover.
func (w *ContentHover) SetContent(text string) {
	w.contents.SetText(text)
}

// Visible reports whether the widget is currently shown.
func (w *ContentHover) Visible() bool {
	return w.visible
}

// Attach registers the widget with a host as a content widget.
// Attaching twice, or after Dispose, is a no-op.
func (w *ContentHover) Attach(host editor.Host) {
	if w.disposed || w.host != nil {
		return
	}
	w.host = host
	host.AddContentWidget(w)
}

// Detach unregisters the widget from its host.
func (w *ContentHover) Detach() {
	if w.host == nil {
		return
	}
	w.host.RemoveContentWidget(w)
	w.host = nil
}

// ShowAt anchors the widget at pos, sizes it to its content, and asks
// the host to lay it out and render synchronously. When focus is true,
// input focus moves onto the container; Hide restores it.
func (w *ContentHover) ShowAt(pos editor.Position, focus bool) {
	if w.disposed {
		return
	}

	w.anchor = pos
	w.visible = true

	w.layoutContents()

	// Clear any stale scroll-induced offset before the host recomputes
	// placement.
	w.container.SetLeft(0)

	if w.host != nil {
		w.host.LayoutContentWidget(w)
		w.host.Render()
		if focus {
			w.host.FocusNode(w.container)
		}
	}
	w.focusStolen = focus
}

// layoutContents runs the two-pass size computation: constrain to the
// capped max width, measure the rendered content box, then re-apply
// the measured width plus padding and the measured height.
func (w *ContentHover) layoutContents() {
	maxWidth := maxContentWidth
	if s := w.container.Style(surface.PropMaxWidth); s != "" && s != "none" {
		// An unparseable max-width style falls back to the ceiling.
		if v, err := strconv.Atoi(s); err == nil && v < maxWidth {
			maxWidth = v
		}
	}
	w.container.SetStyle(surface.PropMaxWidth, strconv.Itoa(maxWidth))

	width, height := w.contents.Measure(maxWidth)

	width += w.config.Padding
	if width > maxWidth {
		width = maxWidth
	}
	w.container.SetWidth(width)
	w.container.SetHeight(height)
}

// Hide dismisses the widget. It is a no-op when already hidden. If the
// prior ShowAt stole focus, focus returns to the host editor.
func (w *ContentHover) Hide() {
	if !w.visible {
		return
	}
	w.visible = false

	if w.host != nil {
		w.host.LayoutContentWidget(w)
		if w.focusStolen {
			w.host.Focus()
		}
	}
	w.focusStolen = false
}

// Placement returns the anchor plus the ordered placement preference
// (above first, then below). The second return is false while hidden,
// which the host reads as "don't render".
func (w *ContentHover) Placement() (editor.Placement, bool) {
	if !w.visible {
		return editor.Placement{}, false
	}
	return editor.Placement{
		Position:   w.anchor,
		Preference: []editor.PlacementPreference{editor.PlaceAbove, editor.PlaceBelow},
	}, true
}

// Dispose hides the widget, detaches it from its host, and releases
// registered listeners. It is safe to call more than once; listeners
// are released at most once. No operations are valid afterward; they
// degrade to no-ops.
func (w *ContentHover) Dispose() {
	w.Hide()
	w.Detach()

	for _, release := range w.disposables {
		release()
	}
	w.disposables = nil
	w.disposed = true
}
