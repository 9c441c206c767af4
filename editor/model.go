package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/chevron/autocomplete"
	"github.com/iw2rmb/chevron/buffer"
)

// Model is a Bubble Tea component that renders and edits a buffer and runs
// the `<>` autocomplete session on top of it.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	catalog    *autocomplete.Catalog
	session    autocomplete.Session
	positioner Positioner

	mouseDragging bool
	mouseAnchor   buffer.Pos

	lastBufVersion  uint64
	lastTextVersion uint64
	lastCursor      buffer.Pos
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	opt := buffer.Options{HistoryLimit: cfg.HistoryLimit, DocID: cfg.DocID}

	var buf *buffer.Buffer
	if cfg.Document != nil {
		buf = buffer.NewFromDocument(*cfg.Document, opt)
	} else {
		buf = buffer.New(cfg.Text, opt)
	}

	m := Model{
		cfg:      cfg,
		buf:      buf,
		focused:  true,
		viewport: viewport.New(0, 0),
		catalog:  cfg.Catalog,
	}
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	m.refreshAnchor()
	return m
}

func (m Model) Width() int { return m.viewport.Width }

func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

// Blur drops focus and cancels any open session.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.cancelAutocomplete()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetCatalog swaps the suggestion catalog. An open session keeps the catalog
// it was opened with; the next session uses c.
func (m Model) SetCatalog(c *autocomplete.Catalog) Model {
	m.catalog = c
	return m
}

func (m Model) Catalog() *autocomplete.Catalog { return m.catalog }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}

	m.afterUpdate()
	return m, cmd
}

func (m Model) View() string {
	base := m.viewport.View()
	if v, ok := m.renderPopup(base); ok {
		return v
	}
	return base
}

// afterUpdate reconciles derived state after any input: the session follows
// the caret, the viewport follows the cursor, hosts hear about changes.
func (m *Model) afterUpdate() {
	if m.buf == nil {
		return
	}
	ver := m.buf.Version()
	if ver == m.lastBufVersion {
		return
	}
	cursorChanged := m.buf.Cursor() != m.lastCursor
	textChanged := m.buf.TextVersion() != m.lastTextVersion

	m.lastBufVersion = ver
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = m.buf.Cursor()

	if textChanged || cursorChanged {
		m.syncAutocomplete()
	}
	m.rebuildContent()
	if cursorChanged || textChanged {
		m.followCursor()
	}
	m.refreshAnchor()

	if m.cfg.OnChange != nil {
		if ev, ok := buildChangeEvent(m.buf); ok {
			m.cfg.OnChange(ev)
		}
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()
	h := m.visibleRowCount()
	if h > 0 {
		y := m.viewport.YOffset
		if cur.Row < y {
			m.viewport.SetYOffset(cur.Row)
		} else if cur.Row >= y+h {
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	w := m.contentWidth()
	if w <= 0 {
		return
	}
	cell := m.cursorCell(cur)
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
		m.rebuildContent()
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
		m.rebuildContent()
	}
}
