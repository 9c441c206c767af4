// Package editor provides a Bubble Tea text editor component backed by the
// buffer package, with `<>` inline autocomplete.
//
// The package is responsible for input handling, viewport behavior,
// rune-aware rendering, entity decoration, the suggestion popup and host
// integration hooks (gutter, clipboard, change and autocomplete events).
package editor
