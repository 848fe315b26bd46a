// Package layout provides the editor geometry the hover widgets are
// positioned against: line heights, glyph-margin metrics, and scroll
// state. Horizontal and vertical values are in layout units (terminal
// cells for the tcell backend).
package layout

import (
	"sync"
)

// Config holds geometry configuration.
type Config struct {
	// LineHeight is the height of one buffer line in layout units.
	LineHeight int

	// MarginLeft is the left edge of the glyph margin.
	MarginLeft int

	// MarginWidth is a fixed glyph-margin width (0 = auto from line count).
	MarginWidth int

	// MinMarginWidth is the minimum width for auto-calculated margins.
	MinMarginWidth int

	// ContentWidth is the width of the text content area.
	ContentWidth int
}

// DefaultConfig returns the default geometry configuration.
func DefaultConfig() Config {
	return Config{
		LineHeight:     1,
		MarginLeft:     0,
		MarginWidth:    0, // Auto
		MinMarginWidth: 3,
		ContentWidth:   80,
	}
}

// Metrics tracks editor geometry and answers layout queries.
type Metrics struct {
	mu sync.RWMutex

	config Config

	// Current state
	lineCount   uint32
	marginWidth int
}

// New creates metrics with the given configuration.
func New(config Config) *Metrics {
	if config.LineHeight < 1 {
		config.LineHeight = 1
	}
	return &Metrics{
		config:      config,
		marginWidth: calculateMarginWidth(config, 1),
	}
}

// Config returns the current configuration.
func (m *Metrics) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// SetConfig updates the configuration.
func (m *Metrics) SetConfig(config Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if config.LineHeight < 1 {
		config.LineHeight = 1
	}
	m.config = config
	m.marginWidth = calculateMarginWidth(config, m.lineCount)
}

// SetLineCount updates the total line count (affects margin width).
func (m *Metrics) SetLineCount(count uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lineCount = count
	m.marginWidth = calculateMarginWidth(m.config, count)
}

// LineCount returns the total line count.
func (m *Metrics) LineCount() uint32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lineCount
}

// LineHeight returns the height of one line.
func (m *Metrics) LineHeight() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.LineHeight
}

// GlyphMarginLeft returns the left edge of the glyph margin.
func (m *Metrics) GlyphMarginLeft() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.MarginLeft
}

// GlyphMarginWidth returns the current glyph-margin width.
func (m *Metrics) GlyphMarginWidth() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.marginWidth
}

// ContentLeft returns the left edge of the text content area, which
// starts immediately after the glyph margin.
func (m *Metrics) ContentLeft() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.MarginLeft + m.marginWidth
}

// ContentWidth returns the width of the text content area.
func (m *Metrics) ContentWidth() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ContentWidth
}

// TopForLine returns the vertical offset of a line from the top of the
// document.
func (m *Metrics) TopForLine(line uint32) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int(line) * m.config.LineHeight
}

// calculateMarginWidth computes the glyph-margin width from config and
// line count.
func calculateMarginWidth(config Config, lineCount uint32) int {
	if config.MarginWidth > 0 {
		return config.MarginWidth
	}

	digits := countDigits(lineCount)
	if digits < config.MinMarginWidth {
		digits = config.MinMarginWidth
	}

	// Separator between numbers and content
	return digits + 1
}

// countDigits returns the number of digits needed to display a number.
func countDigits(n uint32) int {
	if n == 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
