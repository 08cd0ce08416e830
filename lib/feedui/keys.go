// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the quill TUI.
type KeyMap struct {
	// Navigation (context-sensitive: feed selection or detail
	// scrolling depending on the current screen).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Screen changes.
	Open   key.Binding // Open the selected post's detail view.
	Author key.Binding // Open the selected post's author timeline.
	Back   key.Binding // Return to the previous screen.

	// Feed actions.
	Refresh key.Binding // Fetch the feed immediately.
	Compose key.Binding // Open the compose modal (requires login).

	// Account.
	Login  key.Binding
	Signup key.Binding
	Logout key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open post"),
	),
	Author: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "author posts"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("Esc", "back"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Compose: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "compose"),
	),
	Login: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "log in"),
	),
	Signup: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sign up"),
	),
	Logout: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "log out"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
