// Package hover provides two overlay widgets for a text-editing
// surface: an in-text hover popup anchored to a buffer position
// (ContentHover) and a glyph-margin hover indicator anchored to a
// line number (GlyphHover).
//
// Both are thin adapters between an editor.Host and the surface node
// tree. Neither depends on the other. Widgets are constructed
// detached; an explicit Attach registers them with a host, so they
// unit-test without a live editor.
//
// Both widgets are two-state machines: Hidden (initial) and Visible.
// ShowAt transitions to Visible or refreshes the position in place,
// Hide transitions to Hidden or no-ops, and Dispose forces Hidden and
// ends the widget's life. Calls after Dispose are no-ops.
package hover
