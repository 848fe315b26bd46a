package key

import (
	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a tcell key event into a key.Event.
// Unmapped tcell keys convert to KeyNone so callers can ignore them.
func FromTcell(ev *tcell.EventKey) Event {
	mods := ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods = mods.With(ModMeta)
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return NewSpecialEvent(KeyEscape, mods)
	case tcell.KeyEnter:
		return NewSpecialEvent(KeyEnter, mods)
	case tcell.KeyTab:
		return NewSpecialEvent(KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return NewSpecialEvent(KeyBackspace, mods)
	case tcell.KeyDelete:
		return NewSpecialEvent(KeyDelete, mods)
	case tcell.KeyHome:
		return NewSpecialEvent(KeyHome, mods)
	case tcell.KeyEnd:
		return NewSpecialEvent(KeyEnd, mods)
	case tcell.KeyPgUp:
		return NewSpecialEvent(KeyPageUp, mods)
	case tcell.KeyPgDn:
		return NewSpecialEvent(KeyPageDown, mods)
	case tcell.KeyUp:
		return NewSpecialEvent(KeyUp, mods)
	case tcell.KeyDown:
		return NewSpecialEvent(KeyDown, mods)
	case tcell.KeyLeft:
		return NewSpecialEvent(KeyLeft, mods)
	case tcell.KeyRight:
		return NewSpecialEvent(KeyRight, mods)
	case tcell.KeyRune:
		return NewRuneEvent(ev.Rune(), mods)
	default:
		return NewSpecialEvent(KeyNone, mods)
	}
}
