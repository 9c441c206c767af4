package catalog

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/iw2rmb/chevron/autocomplete"
	"github.com/iw2rmb/chevron/internal/log"
)

// ReloadedMsg carries a freshly loaded catalog, or the error that kept the
// previous one in place.
type ReloadedMsg struct {
	Path    string
	Catalog *autocomplete.Catalog
	Err     error
}

// Watcher reloads a catalog file when it changes on disk.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	out       chan ReloadedMsg
	done      chan struct{}
}

// DefaultDebounce coalesces editor save bursts into one reload.
const DefaultDebounce = 200 * time.Millisecond

// NewWatcher creates a watcher for path. Call Start to begin watching.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fsWatcher: fsw,
		path:      filepath.Clean(path),
		debounce:  debounce,
		out:       make(chan ReloadedMsg, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start watches the directory containing the catalog file. Editors often
// replace files on save, so the file itself is not watched.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}
	go w.loop()
	return nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// Reloads returns the channel reload results are delivered on.
func (w *Watcher) Reloads() <-chan ReloadedMsg { return w.out }

// Wait returns a command that blocks until the next reload. Re-issue it
// after every ReloadedMsg to keep listening.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.out:
			return msg
		case <-w.done:
			return nil
		}
	}
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)
	timerC := func() <-chan time.Time {
		if timer != nil {
			return timer.C
		}
		return nil
	}

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = true

		case <-timerC():
			if !pending {
				continue
			}
			pending = false
			w.publish(w.reload())

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatCatalog, "watcher error", err, "path", w.path)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) reload() ReloadedMsg {
	c, err := Load(w.path)
	if err != nil {
		log.Warn(log.CatCatalog, "reload failed, keeping previous catalog", "path", w.path, "error", err)
		return ReloadedMsg{Path: w.path, Err: err}
	}
	log.Info(log.CatCatalog, "catalog reloaded", "path", w.path, "items", c.Len())
	return ReloadedMsg{Path: w.path, Catalog: c}
}

// publish replaces an unread result so only the newest one is delivered.
func (w *Watcher) publish(msg ReloadedMsg) {
	for {
		select {
		case w.out <- msg:
			return
		default:
		}
		select {
		case <-w.out:
		default:
		}
	}
}

func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}
