package editor

import "github.com/iw2rmb/chevron/buffer"

// ChangeEvent reports one effective buffer change to the host.
type ChangeEvent struct {
	DocID       string
	Version     uint64
	TextVersion uint64
	Change      buffer.Change
	// Text is the full plain text after the change.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) (ChangeEvent, bool) {
	ch, ok := b.LastChange()
	if !ok {
		return ChangeEvent{}, false
	}
	return ChangeEvent{
		DocID:       b.ID(),
		Version:     b.Version(),
		TextVersion: b.TextVersion(),
		Change:      ch,
		Text:        b.Text(),
	}, true
}

// AutocompleteEventKind names a session transition.
type AutocompleteEventKind uint8

const (
	AutocompleteOpen AutocompleteEventKind = iota
	AutocompleteQuery
	AutocompleteCommit
	AutocompleteCancel
	AutocompleteInvalidate
)

func (k AutocompleteEventKind) String() string {
	switch k {
	case AutocompleteOpen:
		return "open"
	case AutocompleteQuery:
		return "query"
	case AutocompleteCommit:
		return "commit"
	case AutocompleteCancel:
		return "cancel"
	case AutocompleteInvalidate:
		return "invalidate"
	default:
		return "unknown"
	}
}

// AutocompleteEvent reports a session transition.
type AutocompleteEvent struct {
	Kind  AutocompleteEventKind
	Query string
	// Items is the number of filtered suggestions after the transition.
	Items int
	// Text is the committed text for AutocompleteCommit.
	Text string
}
