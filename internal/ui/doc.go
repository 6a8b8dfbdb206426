// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a discovery workflow:
//  1. [SearchView] : Type to search both catalogs with debounced lookups; the featured pool shows while the query is empty
//  2. [PlaylistPickView] : Choose which playlist receives the selected song
//
// The [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Keystrokes reset a debounce timer so a lookup only fires once typing pauses;
// stale results are dropped by sequence number when the query has moved on.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
