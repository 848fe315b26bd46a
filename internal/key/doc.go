// Package key provides keyboard event types shared by the hover widgets
// and the terminal demo. It carries just enough of a key model to route
// dismiss keys into widget listeners; full keymap handling belongs to the
// host editor.
package key
