package editor

import (
	"testing"

	"github.com/dshills/hoverkit/internal/key"
	"github.com/dshills/hoverkit/internal/layout"
	"github.com/dshills/hoverkit/internal/surface"
)

// stubWidget implements ContentWidget and OverlayWidget for host tests.
type stubWidget struct {
	id        string
	node      *surface.Node
	placement Placement
	present   bool
}

func newStubWidget(id string) *stubWidget {
	return &stubWidget{id: id, node: surface.NewNode("stub")}
}

func (s *stubWidget) ID() string { return s.id }

func (s *stubWidget) Node() *surface.Node { return s.node }

func (s *stubWidget) Placement() (Placement, bool) { return s.placement, s.present }

func newTestEditor() *Editor {
	config := layout.DefaultConfig()
	config.MarginLeft = 0
	config.MarginWidth = 4
	config.ContentWidth = 60

	e := New(layout.New(config), layout.NewScroll())
	e.SetViewportHeight(20)
	return e
}

func TestLayoutContentWidgetHidesAbsentPlacement(t *testing.T) {
	e := newTestEditor()
	w := newStubWidget("w1")
	w.node.SetDisplay(surface.DisplayBlock)

	e.LayoutContentWidget(w)

	if w.node.Display() != surface.DisplayNone {
		t.Error("widget with absent placement still displayed")
	}
}

func TestLayoutContentWidgetPlacement(t *testing.T) {
	tests := []struct {
		name      string
		line      uint32
		col       uint32
		scrollTop int
		height    int
		prefs     []PlacementPreference
		wantTop   int
	}{
		{
			name:    "above preferred and fits",
			line:    10,
			height:  3,
			prefs:   []PlacementPreference{PlaceAbove, PlaceBelow},
			wantTop: 10 - 3,
		},
		{
			name:    "above clips so below wins",
			line:    2,
			height:  5,
			prefs:   []PlacementPreference{PlaceAbove, PlaceBelow},
			wantTop: 2 + 1,
		},
		{
			name:      "scroll offset shifts anchor",
			line:      10,
			scrollTop: 4,
			height:    3,
			prefs:     []PlacementPreference{PlaceAbove, PlaceBelow},
			wantTop:   (10 - 4) - 3,
		},
		{
			name:    "nothing fits pins to top",
			line:    2,
			height:  50,
			prefs:   []PlacementPreference{PlaceAbove, PlaceBelow},
			wantTop: 0,
		},
		{
			name:    "below only",
			line:    5,
			height:  2,
			prefs:   []PlacementPreference{PlaceBelow},
			wantTop: 5 + 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor()
			e.Scroll().SetTop(tt.scrollTop)

			w := newStubWidget("w2")
			w.node.SetHeight(tt.height)
			w.node.SetWidth(10)
			w.placement = Placement{
				Position:   Position{Line: tt.line, Col: tt.col},
				Preference: tt.prefs,
			}
			w.present = true

			e.LayoutContentWidget(w)

			if w.node.Display() != surface.DisplayBlock {
				t.Fatal("widget with placement not displayed")
			}
			if got := w.node.Top(); got != tt.wantTop {
				t.Errorf("top = %d, want %d", got, tt.wantTop)
			}
		})
	}
}

func TestLayoutContentWidgetHorizontalClamp(t *testing.T) {
	e := newTestEditor()
	info := e.LayoutInfo()

	tests := []struct {
		name     string
		col      uint32
		width    int
		wantLeft int
	}{
		{"at anchor column", 5, 10, info.ContentLeft + 5},
		{"clamped to right edge", 55, 20, info.ContentLeft + info.ContentWidth - 20},
		{"never left of content area", 0, 70, info.ContentLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newStubWidget("w3")
			w.node.SetWidth(tt.width)
			w.node.SetHeight(1)
			w.placement = Placement{
				Position:   Position{Line: 10, Col: tt.col},
				Preference: []PlacementPreference{PlaceAbove},
			}
			w.present = true

			e.LayoutContentWidget(w)

			if got := w.node.Left(); got != tt.wantLeft {
				t.Errorf("left = %d, want %d", got, tt.wantLeft)
			}
		})
	}
}

func TestWidgetRegistry(t *testing.T) {
	e := newTestEditor()

	a := newStubWidget("a")
	b := newStubWidget("b")
	e.AddContentWidget(a)
	e.AddContentWidget(b)
	e.AddContentWidget(a) // re-add keeps single registration

	widgets := e.ContentWidgets()
	if len(widgets) != 2 || widgets[0].ID() != "a" || widgets[1].ID() != "b" {
		t.Errorf("content widgets = %d in wrong order", len(widgets))
	}

	e.RemoveContentWidget(a)
	widgets = e.ContentWidgets()
	if len(widgets) != 1 || widgets[0].ID() != "b" {
		t.Errorf("content widgets after remove = %v", widgets)
	}
	// Removing an unregistered widget is a no-op.
	e.RemoveContentWidget(a)

	o := newStubWidget("o")
	e.AddOverlayWidget(o)
	if got := len(e.OverlayWidgets()); got != 1 {
		t.Errorf("overlay widgets = %d, want 1", got)
	}
	e.RemoveOverlayWidget(o)
	if got := len(e.OverlayWidgets()); got != 0 {
		t.Errorf("overlay widgets after remove = %d, want 0", got)
	}
}

func TestRenderSink(t *testing.T) {
	e := newTestEditor()

	// Render without a sink must not panic.
	e.Render()

	calls := 0
	e.SetRenderSink(func() { calls++ })
	e.Render()
	e.Render()

	if calls != 2 {
		t.Errorf("sink calls = %d, want 2", calls)
	}
}

func TestFocusRouting(t *testing.T) {
	e := newTestEditor()

	target := surface.NewNode("focus-target")
	target.SetFocusable(true)

	var received []key.Event
	target.OnKeyDown(func(ev key.Event) { received = append(received, ev) })

	ev := key.NewSpecialEvent(key.KeyEscape, key.ModNone)

	// Editor has focus: dispatch is not consumed.
	if e.DispatchKey(ev) {
		t.Error("DispatchKey consumed with no focused node")
	}

	// Non-focusable nodes never take focus.
	e.FocusNode(surface.NewNode("plain"))
	if e.FocusedNode() != nil {
		t.Error("non-focusable node took focus")
	}

	e.FocusNode(target)
	if e.FocusedNode() != target {
		t.Fatal("focusable node did not take focus")
	}
	if !e.DispatchKey(ev) {
		t.Error("DispatchKey not consumed by focused node")
	}
	if len(received) != 1 {
		t.Errorf("focused node received %d events, want 1", len(received))
	}

	e.Focus()
	if e.FocusedNode() != nil {
		t.Error("Focus() did not return focus to the editor")
	}
}

func TestLayoutInfoFromMetrics(t *testing.T) {
	config := layout.DefaultConfig()
	config.MarginLeft = 3
	config.MarginWidth = 5
	config.ContentWidth = 100
	config.LineHeight = 2

	e := New(layout.New(config), layout.NewScroll())
	info := e.LayoutInfo()

	want := LayoutInfo{
		GlyphMarginLeft:  3,
		GlyphMarginWidth: 5,
		ContentLeft:      8,
		ContentWidth:     100,
		LineHeight:       2,
	}
	if info != want {
		t.Errorf("LayoutInfo() = %+v, want %+v", info, want)
	}
}

func TestPlacementPreferenceString(t *testing.T) {
	tests := []struct {
		p    PlacementPreference
		want string
	}{
		{PlaceAbove, "above"},
		{PlaceBelow, "below"},
		{PlacementPreference(7), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("PlacementPreference.String() = %q, want %q", got, tt.want)
		}
	}
}
