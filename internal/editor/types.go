package editor

// Position represents a position in the buffer.
type Position struct {
	Line uint32
	Col  uint32
}

// PlacementPreference represents where a content widget would like to
// appear relative to its anchor line.
type PlacementPreference uint8

const (
	// PlaceAbove places the widget above the anchor line.
	PlaceAbove PlacementPreference = iota

	// PlaceBelow places the widget below the anchor line.
	PlaceBelow
)

// String returns the string representation of the preference.
func (p PlacementPreference) String() string {
	switch p {
	case PlaceAbove:
		return "above"
	case PlaceBelow:
		return "below"
	default:
		return "unknown"
	}
}

// Placement is a content widget's requested anchor plus an ordered
// list of placement preferences. The host tries each preference in
// order and takes the first that fits the viewport.
type Placement struct {
	// Position is the anchor the widget is displayed relative to.
	Position Position

	// Preference lists placements in order of preference.
	Preference []PlacementPreference
}

// LayoutInfo describes the structural layout of the editor surface.
type LayoutInfo struct {
	// GlyphMarginLeft is the left edge of the glyph margin.
	GlyphMarginLeft int

	// GlyphMarginWidth is the width of the glyph margin.
	GlyphMarginWidth int

	// ContentLeft is the left edge of the text content area.
	ContentLeft int

	// ContentWidth is the width of the text content area.
	ContentWidth int

	// LineHeight is the height of one buffer line.
	LineHeight int
}
