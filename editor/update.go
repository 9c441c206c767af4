package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/chevron/autocomplete"
	"github.com/iw2rmb/chevron/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	if m.handleAutocompleteKey(msg) {
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft}, false)
	case key.Matches(msg, km.Right):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight}, true)
	case key.Matches(msg, km.Up):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp}, false)
	case key.Matches(msg, km.Down):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown}, true)

	case key.Matches(msg, km.ShiftLeft):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true}, false)
	case key.Matches(msg, km.ShiftRight):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true}, true)
	case key.Matches(msg, km.ShiftUp):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp, Extend: true}, false)
	case key.Matches(msg, km.ShiftDown):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown, Extend: true}, true)

	case key.Matches(msg, km.WordLeft):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft}, false)
	case key.Matches(msg, km.WordRight):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight}, true)

	case key.Matches(msg, km.DocStart):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome}, false)
	case key.Matches(msg, km.DocEnd):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd}, true)
	case key.Matches(msg, km.Home):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome}, false)
	case key.Matches(msg, km.End):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd}, true)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.deleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.deleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.insertText("\n")
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		switch {
		case msg.Type == tea.KeyTab:
			m.typeText("\t")
		case msg.Type == tea.KeySpace:
			m.typeText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			// Fast typing arrives as one chunk; each rune is its own keystroke.
			for _, r := range msg.Runes {
				m.typeText(string(r))
			}
		}
	}

	return m, nil
}

// move applies mv and keeps the caret off the inside of AUTOCOMPLETE runs,
// snapping in the direction of travel.
func (m *Model) move(mv buffer.Move, forward bool) {
	anchor := m.buf.Cursor()
	if raw, ok := m.buf.SelectionRaw(); ok {
		anchor = raw.Start
	}

	m.buf.Move(mv)

	cur := m.buf.Cursor()
	snapped := autocomplete.SnapOutOfEntity(m.buf.Document(), cur, forward)
	if snapped == cur {
		return
	}
	if mv.Extend {
		m.buf.SetSelection(buffer.Range{Start: anchor, End: snapped})
		return
	}
	m.buf.SetCursor(snapped)
}

// typeText inserts keyboard input and opens a session when it completes
// the trigger marker.
func (m *Model) typeText(s string) {
	if m.cfg.ReadOnly {
		return
	}
	_, hasSel := m.buf.Selection()
	cur := m.buf.Cursor()
	before := m.buf.Document().Block(cur.Row)

	if !m.insertText(s) {
		return
	}
	if !hasSel && autocomplete.DetectInBlock(s, cur.Col, before) {
		m.openAutocomplete()
	}
}

// insertText inserts plain text at the caret. An active selection is
// replaced, widened first so no entity is split.
func (m *Model) insertText(s string) bool {
	before := m.buf.TextVersion()
	r, ok := m.buf.Selection()
	if !ok {
		m.buf.InsertText(s)
		return m.buf.TextVersion() != before
	}
	m.buf.Apply(buffer.TextEdit{Range: m.expandRangeToEntities(r), Text: s})
	return m.buf.TextVersion() != before
}

// deleteBackward removes a selection, a whole AUTOCOMPLETE entity ending at
// the caret, or a single rune, in that order.
func (m *Model) deleteBackward() {
	if r, ok := m.buf.Selection(); ok {
		m.buf.DeleteRange(m.expandRangeToEntities(r))
		return
	}
	if edit, ok := autocomplete.RemoveEntity(m.buf.Document(), m.buf.Cursor()); ok {
		m.buf.Push(edit.Doc, edit.Caret, edit.Applied...)
		return
	}
	m.buf.DeleteBackward()
}

func (m *Model) deleteForward() {
	if r, ok := m.buf.Selection(); ok {
		m.buf.DeleteRange(m.expandRangeToEntities(r))
		return
	}
	if edit, ok := autocomplete.RemoveEntityForward(m.buf.Document(), m.buf.Cursor()); ok {
		m.buf.Push(edit.Doc, edit.Caret, edit.Applied...)
		return
	}
	m.buf.DeleteForward()
}
