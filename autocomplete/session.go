package autocomplete

// Command is a navigation command routed to an open Session.
type Command uint8

const (
	CmdMoveDown Command = iota
	CmdMoveUp
	CmdCommit
	CmdCancel
)

func (c Command) String() string {
	switch c {
	case CmdMoveDown:
		return "move-down"
	case CmdMoveUp:
		return "move-up"
	case CmdCommit:
		return "commit"
	case CmdCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Result is the outcome of Session.Apply.
type Result struct {
	// Handled is false when the session was closed; the caller should then
	// treat the key as if autocomplete did not exist.
	Handled bool
	// Committed is true when Text should be inserted as an entity.
	Committed bool
	Text      string
}

// Session is the ephemeral state of one autocomplete interaction.
//
// The zero value is a closed session. While open, Highlighted is a valid
// index into Items whenever Items is non-empty, and 0 otherwise.
type Session struct {
	active      bool
	query       string
	highlighted int
	items       []string
	catalog     *Catalog
}

// Open starts a new session over catalog with an empty query and the full
// list. An already open session is restarted.
func (s *Session) Open(catalog *Catalog) {
	s.active = true
	s.query = ""
	s.highlighted = 0
	s.catalog = catalog
	s.items = catalog.Filter("")
}

func (s *Session) Active() bool { return s.active }

func (s *Session) Query() string { return s.query }

func (s *Session) Highlighted() int { return s.highlighted }

// Items returns a copy of the filtered suggestions.
func (s *Session) Items() []string { return cloneStrings(s.items) }

// Len is the number of filtered suggestions.
func (s *Session) Len() int { return len(s.items) }

// Catalog is the catalog the session was opened with.
func (s *Session) Catalog() *Catalog { return s.catalog }

// Current returns the highlighted suggestion.
func (s *Session) Current() (string, bool) {
	if !s.active || len(s.items) == 0 {
		return "", false
	}
	return s.items[s.highlighted], true
}

// SetQuery refilters the list. A changed query resets the highlight to 0.
// It reports whether anything changed.
func (s *Session) SetQuery(query string) bool {
	if !s.active || query == s.query {
		return false
	}
	s.query = query
	s.items = s.catalog.Filter(query)
	s.highlighted = 0
	return true
}

// Update applies an extractor result: Continue refilters, Invalidate closes.
// It returns false when the session is (now) closed.
func (s *Session) Update(m MatchResult) bool {
	if !s.active {
		return false
	}
	if m.Kind != MatchContinue {
		s.close()
		return false
	}
	s.SetQuery(m.Query)
	return true
}

func (s *Session) MoveDown() {
	if !s.active || len(s.items) == 0 {
		return
	}
	s.highlighted = (s.highlighted + 1) % len(s.items)
}

func (s *Session) MoveUp() {
	if !s.active || len(s.items) == 0 {
		return
	}
	n := len(s.items)
	s.highlighted = (s.highlighted - 1 + n) % n
}

// Highlight moves the highlight to i, e.g. on mouse hover. Out of range
// indices are ignored.
func (s *Session) Highlight(i int) bool {
	if !s.active || i < 0 || i >= len(s.items) || i == s.highlighted {
		return false
	}
	s.highlighted = i
	return true
}

// Commit closes the session and returns the text to insert: the highlighted
// suggestion, or the raw query when nothing matches. ok is false when the
// session was closed or there is nothing to insert.
func (s *Session) Commit() (string, bool) {
	if !s.active {
		return "", false
	}
	text := s.query
	if len(s.items) > 0 {
		text = s.items[s.highlighted]
	}
	s.close()
	return text, text != ""
}

// Select commits suggestion directly, bypassing the highlight.
func (s *Session) Select(suggestion string) (string, bool) {
	if !s.active {
		return "", false
	}
	s.close()
	return suggestion, suggestion != ""
}

// Cancel closes the session. The document is left alone.
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	s.close()
}

// Apply dispatches cmd.
func (s *Session) Apply(cmd Command) Result {
	if !s.active {
		return Result{}
	}
	switch cmd {
	case CmdMoveDown:
		s.MoveDown()
	case CmdMoveUp:
		s.MoveUp()
	case CmdCommit:
		text, ok := s.Commit()
		return Result{Handled: true, Committed: ok, Text: text}
	case CmdCancel:
		s.Cancel()
	default:
		return Result{}
	}
	return Result{Handled: true}
}

func (s *Session) close() {
	*s = Session{}
}
