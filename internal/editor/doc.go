// Package editor defines the host contract hover widgets are written
// against, plus a concrete host implementation.
//
// The contract splits widgets into two categories:
//   - Content widgets anchor to a text position and let the host
//     compute their on-screen placement from a preference order.
//   - Overlay widgets position themselves by direct coordinate
//     assignment and bypass the placement protocol entirely.
//
// Editor implements Host over layout.Metrics and layout.Scroll. Render
// output goes through a pluggable RenderSink so the same host drives a
// tcell backend in production and a recording sink in tests.
package editor
