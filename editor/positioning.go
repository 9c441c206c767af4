package editor

// Anchor is the caret cell the suggestion popup hangs from, in
// editor-local terminal cells.
type Anchor struct {
	X, Y int
}

// Positioner keeps the popup anchor current while a session is open.
//
// The model acquires it when a session opens and releases it when the
// session closes. Resize and scroll events are forwarded only while it is
// acquired; a Refresh after Release does nothing.
type Positioner struct {
	active bool
	anchor Anchor
	ok     bool
}

// Acquire registers the positioner with an initial anchor.
func (p *Positioner) Acquire(a Anchor, ok bool) {
	p.active = true
	p.set(a, ok)
}

// Release unregisters the positioner. The last known anchor is kept.
func (p *Positioner) Release() {
	p.active = false
}

func (p *Positioner) Active() bool { return p.active }

// Refresh records a recomputed anchor. It reports false when released.
func (p *Positioner) Refresh(a Anchor, ok bool) bool {
	if !p.active {
		return false
	}
	p.set(a, ok)
	return true
}

// Anchor returns the last known anchor. ok is false when the most recent
// computation found no visible caret cell.
func (p *Positioner) Anchor() (Anchor, bool) {
	return p.anchor, p.ok
}

func (p *Positioner) set(a Anchor, ok bool) {
	p.ok = ok
	if ok {
		p.anchor = a
	}
}

// Anchor returns where the suggestion popup hangs from. When the caret has
// no visible cell the last known anchor (or {0,0}) is returned with
// ok=false.
func (m Model) Anchor() (Anchor, bool) {
	return m.positioner.Anchor()
}

func (m *Model) computeAnchor() (Anchor, bool) {
	if m.buf == nil {
		return Anchor{}, false
	}
	x, y, ok := m.docToScreenPos(m.buf.Cursor())
	return Anchor{X: x, Y: y}, ok
}

func (m *Model) refreshAnchor() {
	if !m.positioner.Active() {
		return
	}
	m.positioner.Refresh(m.computeAnchor())
}
