// Package surface provides a minimal retained node tree for widget
// rendering. Nodes carry display state, absolute placement in layout
// units, string-valued style properties, and keydown listeners. The
// surface renders nothing itself; a backend walks visible nodes and
// paints them.
package surface

import (
	"maps"
	"sort"

	"github.com/dshills/hoverkit/internal/key"
)

// Display represents the display state of a node.
type Display uint8

const (
	// DisplayNone hides the node and its children.
	DisplayNone Display = iota

	// DisplayBlock shows the node.
	DisplayBlock
)

// String returns the display state name.
func (d Display) String() string {
	switch d {
	case DisplayNone:
		return "none"
	case DisplayBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Style property names understood by the surface.
const (
	// PropMaxWidth constrains measurement. The value is a number in
	// layout units, or "none" for unconstrained.
	PropMaxWidth = "max-width"
)

// Attribute names understood by the surface.
const (
	// AttrHiddenFromAccessibility removes the node from assistive
	// technology output.
	AttrHiddenFromAccessibility = "aria-hidden"

	// AttrRole describes the node's accessibility role.
	AttrRole = "role"
)

// KeyHandler receives keydown events dispatched to a node.
type KeyHandler func(ev key.Event)

// Node is a single element in the surface tree.
// Nodes are not safe for concurrent use; all mutation happens on the
// host UI goroutine.
type Node struct {
	class   string
	display Display

	// Absolute placement in layout units.
	left, top     int
	width, height int

	styles map[string]string
	attrs  map[string]string

	text string

	parent   *Node
	children []*Node

	focusable bool

	handlers    map[int]KeyHandler
	nextHandler int
}

// NewNode creates a hidden node with the given class name.
func NewNode(class string) *Node {
	return &Node{
		class:   class,
		display: DisplayNone,
	}
}

// Class returns the node's class name.
func (n *Node) Class() string {
	return n.class
}

// Display returns the current display state.
func (n *Node) Display() Display {
	return n.display
}

// SetDisplay updates the display state.
func (n *Node) SetDisplay(d Display) {
	n.display = d
}

// Left returns the absolute horizontal position.
func (n *Node) Left() int { return n.left }

// Top returns the absolute vertical position.
func (n *Node) Top() int { return n.top }

// Width returns the node width.
func (n *Node) Width() int { return n.width }

// Height returns the node height.
func (n *Node) Height() int { return n.height }

// SetLeft sets the absolute horizontal position.
func (n *Node) SetLeft(left int) { n.left = left }

// SetTop sets the absolute vertical position.
func (n *Node) SetTop(top int) { n.top = top }

// SetWidth sets the node width.
func (n *Node) SetWidth(width int) { n.width = width }

// SetHeight sets the node height.
func (n *Node) SetHeight(height int) { n.height = height }

// Style returns a style property value, or "" when unset.
func (n *Node) Style(prop string) string {
	return n.styles[prop]
}

// SetStyle sets a style property.
func (n *Node) SetStyle(prop, value string) {
	if n.styles == nil {
		n.styles = make(map[string]string)
	}
	n.styles[prop] = value
}

// Styles returns a copy of all set style properties.
func (n *Node) Styles() map[string]string {
	return maps.Clone(n.styles)
}

// Attribute returns an attribute value, or "" when unset.
func (n *Node) Attribute(name string) string {
	return n.attrs[name]
}

// SetAttribute sets an attribute.
func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// Text returns the node's text content.
func (n *Node) Text() string {
	return n.text
}

// SetText replaces the node's text content.
func (n *Node) SetText(text string) {
	n.text = text
}

// Parent returns the node's parent, or nil for a root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// AppendChild adds a child node. A child already attached elsewhere is
// detached from its previous parent first.
func (n *Node) AppendChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches a child node. It is a no-op if the node is not
// a child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Focusable returns true if the node can receive input focus.
func (n *Node) Focusable() bool {
	return n.focusable
}

// SetFocusable marks the node as able to receive input focus.
func (n *Node) SetFocusable(focusable bool) {
	n.focusable = focusable
}

// OnKeyDown registers a keydown listener and returns a function that
// removes it. The returned function is safe to call more than once.
func (n *Node) OnKeyDown(h KeyHandler) func() {
	if n.handlers == nil {
		n.handlers = make(map[int]KeyHandler)
	}
	id := n.nextHandler
	n.nextHandler++
	n.handlers[id] = h

	return func() {
		delete(n.handlers, id)
	}
}

// ListenerCount returns the number of registered keydown listeners.
func (n *Node) ListenerCount() int {
	return len(n.handlers)
}

// DispatchKeyDown delivers a key event to the node's listeners in
// registration order.
func (n *Node) DispatchKeyDown(ev key.Event) {
	// Snapshot ids so a listener removing itself doesn't skew iteration.
	ids := make([]int, 0, len(n.handlers))
	for id := range n.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if h, ok := n.handlers[id]; ok {
			h(ev)
		}
	}
}

// Visible reports whether the node and all its ancestors are displayed.
func (n *Node) Visible() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.display == DisplayNone {
			return false
		}
	}
	return true
}
