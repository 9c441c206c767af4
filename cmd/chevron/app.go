package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/iw2rmb/chevron/autocomplete"
	"github.com/iw2rmb/chevron/editor"
	"github.com/iw2rmb/chevron/internal/catalog"
	"github.com/iw2rmb/chevron/internal/config"
	"github.com/iw2rmb/chevron/internal/log"
)

type appOptions struct {
	Config    config.Config
	Text      string
	Path      string
	Catalog   *autocomplete.Catalog
	Watcher   *catalog.Watcher
	Zones     *zone.Manager
	Clipboard editor.Clipboard
}

type appKeyMap struct {
	Save key.Binding
	Quit key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save & quit")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// app hosts the editor with a one-line status bar.
type app struct {
	editor  editor.Model
	help    help.Model
	keys    appKeyMap
	watcher *catalog.Watcher
	zones   *zone.Manager
	path    string

	status string
	saved  bool
	width  int
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func newApp(opt appOptions) app {
	cfg := opt.Config
	style := editor.DefaultStyle()
	if cfg.Theme.Entity != "" {
		style = style.WithEntityColor(lipgloss.Color(cfg.Theme.Entity))
	}
	if cfg.Theme.Highlight != "" {
		style.PopupHighlighted = style.PopupHighlighted.Background(lipgloss.Color(cfg.Theme.Highlight))
	}
	if cfg.Theme.Popup != "" {
		bg := lipgloss.Color(cfg.Theme.Popup)
		style.PopupItem = style.PopupItem.Background(bg)
		style.PopupEmpty = style.PopupEmpty.Background(bg)
	}

	ed := editor.New(editor.Config{
		Text:           opt.Text,
		Placeholder:    editor.DefaultPlaceholder,
		HistoryLimit:   cfg.HistoryLimit,
		Catalog:        opt.Catalog,
		Style:          style,
		ShowLineNums:   cfg.LineNumbers,
		MaxVisibleRows: cfg.MaxVisibleRows,
		MaxWidth:       cfg.MaxWidth,
		Clipboard:      opt.Clipboard,
		Zones:          opt.Zones,
		OnAutocomplete: func(ev editor.AutocompleteEvent) {
			if ev.Kind == editor.AutocompleteCommit {
				log.Info(log.CatEditor, "suggestion inserted", "text", ev.Text)
			}
		},
	})

	return app{
		editor:  ed,
		help:    help.New(),
		keys:    defaultAppKeyMap(),
		watcher: opt.Watcher,
		zones:   opt.Zones,
		path:    opt.Path,
	}
}

func (a app) Init() tea.Cmd {
	if a.watcher != nil {
		return a.watcher.Wait()
	}
	return nil
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case catalog.ReloadedMsg:
		if msg.Err != nil {
			a.status = "catalog: " + msg.Err.Error()
		} else {
			a.editor = a.editor.SetCatalog(msg.Catalog)
			a.status = "catalog reloaded"
		}
		if a.watcher != nil {
			return a, a.watcher.Wait()
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Save):
			if a.path == "" {
				a.status = "no file to save to"
				return a, nil
			}
			a.saved = true
			return a, tea.Quit
		}
		a.status = ""
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	status := a.status
	if status == "" {
		status = a.help.ShortHelpView(a.shortHelp())
	}
	view := lipgloss.JoinVertical(lipgloss.Left, a.editor.View(), statusStyle.Render(status))
	if a.zones != nil {
		return a.zones.Scan(view)
	}
	return view
}

func (a app) shortHelp() []key.Binding {
	if a.editor.AutocompleteState().Active {
		return autocomplete.DefaultKeyMap().ShortHelp()
	}
	bindings := []key.Binding{a.keys.Quit}
	if a.path != "" {
		bindings = append(bindings, a.keys.Save)
	}
	return append(bindings, editor.DefaultKeyMap().ShortHelp()...)
}
