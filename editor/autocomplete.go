package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/chevron/autocomplete"
	"github.com/iw2rmb/chevron/buffer"
	"github.com/iw2rmb/chevron/internal/log"
)

// AutocompleteState is a read-only snapshot of the suggestion session.
type AutocompleteState struct {
	Active      bool
	Query       string
	Items       []string
	Highlighted int
}

func (m Model) AutocompleteState() AutocompleteState {
	if !m.session.Active() {
		return AutocompleteState{}
	}
	return AutocompleteState{
		Active:      true,
		Query:       m.session.Query(),
		Items:       m.session.Items(),
		Highlighted: m.session.Highlighted(),
	}
}

func (m *Model) openAutocomplete() {
	m.session.Open(m.catalog)
	m.positioner.Acquire(m.computeAnchor())
	m.emitAutocomplete(AutocompleteEvent{Kind: AutocompleteOpen, Items: m.session.Len()})
}

// syncAutocomplete re-runs the extractor against the caret's block after an
// edit or caret move. A selection always invalidates.
func (m *Model) syncAutocomplete() {
	if !m.session.Active() || m.buf == nil {
		return
	}
	match := autocomplete.Invalidate()
	if _, ok := m.buf.Selection(); !ok {
		cur := m.buf.Cursor()
		match = autocomplete.ExtractBlock(m.buf.Document().Block(cur.Row), cur.Col)
	}

	prev := m.session.Query()
	if !m.session.Update(match) {
		m.positioner.Release()
		m.emitAutocomplete(AutocompleteEvent{Kind: AutocompleteInvalidate, Query: prev})
		return
	}
	if q := m.session.Query(); q != prev {
		m.emitAutocomplete(AutocompleteEvent{Kind: AutocompleteQuery, Query: q, Items: m.session.Len()})
	}
}

// commitAutocomplete closes the session through commit and inserts what it
// yields. Nothing to insert is reported as a cancel.
func (m *Model) commitAutocomplete(commit func() (string, bool)) {
	query := m.session.Query()
	text, ok := commit()
	m.positioner.Release()
	if !ok {
		m.emitAutocomplete(AutocompleteEvent{Kind: AutocompleteCancel, Query: query})
		return
	}
	edit, ok := autocomplete.InsertEntity(m.buf.Document(), m.buf.Cursor(), text)
	if !ok {
		log.Warn(log.CatAutocomplete, "commit without marker", "text", text)
		m.emitAutocomplete(AutocompleteEvent{Kind: AutocompleteCancel, Query: query})
		return
	}
	m.buf.Push(edit.Doc, edit.Caret, edit.Applied...)
	m.emitAutocomplete(AutocompleteEvent{Kind: AutocompleteCommit, Query: query, Text: text})
}

func (m *Model) cancelAutocomplete() {
	if !m.session.Active() {
		return
	}
	query := m.session.Query()
	m.session.Cancel()
	m.positioner.Release()
	m.emitAutocomplete(AutocompleteEvent{Kind: AutocompleteCancel, Query: query})
}

// handleAutocompleteKey routes navigation keys to an open session. It
// reports false for keys the session does not bind.
func (m *Model) handleAutocompleteKey(msg tea.KeyMsg) bool {
	if !m.session.Active() {
		return false
	}
	cmd, ok := m.cfg.AutocompleteKeyMap.Command(msg)
	if !ok {
		return false
	}
	switch cmd {
	case autocomplete.CmdCommit:
		m.commitAutocomplete(m.session.Commit)
	case autocomplete.CmdCancel:
		m.cancelAutocomplete()
	default:
		m.session.Apply(cmd)
	}
	return true
}

func (m *Model) emitAutocomplete(ev AutocompleteEvent) {
	log.Debug(log.CatAutocomplete, ev.Kind.String(), "query", ev.Query, "items", ev.Items, "text", ev.Text)
	if m.cfg.OnAutocomplete != nil {
		m.cfg.OnAutocomplete(ev)
	}
}

// expandRangeToEntities widens r so that neither end splits an
// AUTOCOMPLETE run.
func (m *Model) expandRangeToEntities(r buffer.Range) buffer.Range {
	doc := m.buf.Document()
	r = buffer.NormalizeRange(r)
	if s, _, ok := autocomplete.EntityRange(doc, r.Start); ok {
		r.Start.Col = s
	}
	if _, e, ok := autocomplete.EntityRange(doc, r.End); ok {
		r.End.Col = e
	}
	return r
}

// snapNearest moves p out of an AUTOCOMPLETE run to whichever boundary is
// closer, preferring the end on a tie.
func (m *Model) snapNearest(p buffer.Pos) buffer.Pos {
	s, e, ok := autocomplete.EntityRange(m.buf.Document(), p)
	if !ok {
		return p
	}
	if p.Col-s < e-p.Col {
		return buffer.Pos{Row: p.Row, Col: s}
	}
	return buffer.Pos{Row: p.Row, Col: e}
}
