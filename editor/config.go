package editor

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/iw2rmb/chevron/autocomplete"
	"github.com/iw2rmb/chevron/buffer"
)

const (
	defaultMaxVisibleRows = 8
	defaultMaxWidth       = 40
	defaultTabWidth       = 4
)

// DefaultPlaceholder is shown while the document is empty.
const DefaultPlaceholder = "There's no writer's block here. Use <> to trigger autocomplete."

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer. Ignored when Document is set.
	Text string
	// Document seeds the buffer with an existing snapshot.
	Document *buffer.Document
	// Forwarded to buffer.Options.
	HistoryLimit int
	DocID        string

	// Catalog supplies suggestions. A nil catalog opens empty sessions.
	Catalog *autocomplete.Catalog

	KeyMap             KeyMap
	AutocompleteKeyMap autocomplete.KeyMap

	// Rendering options.
	Style        Style
	ShowLineNums bool
	Gutter       Gutter
	TabWidth     int
	Placeholder  string
	Decorators   []Decorator

	// Popup size limits. Zero means default.
	MaxVisibleRows int
	MaxWidth       int

	ReadOnly     bool
	ScrollPolicy ScrollPolicy

	Clipboard Clipboard

	// Zones, when set, marks popup rows so hosts that scan their final
	// view with bubblezone get exact hit testing.
	Zones *zone.Manager

	// OnChange fires after every effective buffer change.
	OnChange func(ChangeEvent)
	// OnAutocomplete fires on session transitions.
	OnAutocomplete func(AutocompleteEvent)
}

func normalizeConfig(cfg Config) Config {
	if isZeroKeyMap(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if isZeroAutocompleteKeyMap(cfg.AutocompleteKeyMap) {
		cfg.AutocompleteKeyMap = autocomplete.DefaultKeyMap()
	}
	if isZeroStyle(cfg.Style) {
		cfg.Style = DefaultStyle()
	}
	if cfg.ShowLineNums && cfg.Gutter.Width == nil {
		cfg.Gutter = LineNumberGutter()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.MaxVisibleRows <= 0 {
		cfg.MaxVisibleRows = defaultMaxVisibleRows
	}
	if cfg.MaxWidth <= 0 {
		cfg.MaxWidth = defaultMaxWidth
	}
	if len(cfg.Decorators) == 0 {
		cfg.Decorators = []Decorator{EntityDecorator(cfg.Style.Entity)}
	}
	return cfg
}

func isZeroAutocompleteKeyMap(km autocomplete.KeyMap) bool {
	return len(km.Down.Keys()) == 0 && len(km.Up.Keys()) == 0 &&
		len(km.Commit.Keys()) == 0 && len(km.Cancel.Keys()) == 0
}
