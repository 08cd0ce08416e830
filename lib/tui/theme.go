// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for quill's terminal UI. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Post attribution.
	AuthorName lipgloss.Color // Display name in feed rows and detail headers.
	Handle     lipgloss.Color // @username handles.
	Timestamp  lipgloss.Color // Post timestamps.

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Status-bar notices by severity.
	NoticeInfo  lipgloss.Color
	NoticeWarn  lipgloss.Color
	NoticeError lipgloss.Color

	// Form inputs.
	InputLabel      lipgloss.Color // Field labels in login/signup forms.
	InputText       lipgloss.Color // Typed text.
	InputFocusedBar lipgloss.Color // Indicator next to the focused field.

	// Modal overlays (compose).
	ModalBackground lipgloss.Color

	// Markdown rendering.
	CodeForeground lipgloss.Color // Inline code and code block text.
	QuoteBar       lipgloss.Color // Block quote gutter.
	LinkForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	AuthorName: lipgloss.Color("255"),
	Handle:     lipgloss.Color("75"),  // blue
	Timestamp:  lipgloss.Color("240"), // dim gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	NoticeInfo:  lipgloss.Color("114"), // green
	NoticeWarn:  lipgloss.Color("220"), // amber
	NoticeError: lipgloss.Color("196"), // red

	InputLabel:      lipgloss.Color("245"),
	InputText:       lipgloss.Color("255"),
	InputFocusedBar: lipgloss.Color("75"),

	ModalBackground: lipgloss.Color("237"),

	CodeForeground: lipgloss.Color("223"),
	QuoteBar:       lipgloss.Color("240"),
	LinkForeground: lipgloss.Color("75"),
}
