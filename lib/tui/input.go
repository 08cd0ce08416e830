// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputField is a single-line text input with cursor tracking and
// optional masking for password entry. The login, signup, and user
// lookup forms are built from these.
type InputField struct {
	// Label is shown left of the input (e.g., "username").
	Label string

	// Masked replaces every rune with '*' when rendering. The real
	// value is still available via Value.
	Masked bool

	runes  []rune
	cursor int
	theme  Theme
}

// NewInputField creates an empty InputField with the given label.
func NewInputField(label string, masked bool, theme Theme) InputField {
	return InputField{
		Label:  label,
		Masked: masked,
		theme:  theme,
	}
}

// Value returns the current input text.
func (field InputField) Value() string {
	return string(field.runes)
}

// SetValue replaces the input text and moves the cursor to the end.
func (field *InputField) SetValue(value string) {
	field.runes = []rune(value)
	field.cursor = len(field.runes)
}

// Clear empties the field.
func (field *InputField) Clear() {
	field.runes = nil
	field.cursor = 0
}

// Update processes a key message. Only editing and cursor-movement
// keys are consumed; everything else (enter, tab, escape) is left for
// the owning form to route.
func (field *InputField) Update(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			field.insertRune(character)
		}

	case tea.KeyBackspace:
		if field.cursor > 0 {
			field.runes = append(field.runes[:field.cursor-1], field.runes[field.cursor:]...)
			field.cursor--
		}

	case tea.KeyDelete:
		if field.cursor < len(field.runes) {
			field.runes = append(field.runes[:field.cursor], field.runes[field.cursor+1:]...)
		}

	case tea.KeyLeft:
		if field.cursor > 0 {
			field.cursor--
		}

	case tea.KeyRight:
		if field.cursor < len(field.runes) {
			field.cursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		field.cursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		field.cursor = len(field.runes)

	case tea.KeyCtrlU:
		field.runes = append([]rune{}, field.runes[field.cursor:]...)
		field.cursor = 0
	}
}

func (field *InputField) insertRune(character rune) {
	updated := make([]rune, 0, len(field.runes)+1)
	updated = append(updated, field.runes[:field.cursor]...)
	updated = append(updated, character)
	updated = append(updated, field.runes[field.cursor:]...)
	field.runes = updated
	field.cursor++
}

// View renders the field as "  label  text" with the cursor shown in
// reverse video when focused. labelWidth right-pads the label so a
// column of fields aligns.
func (field InputField) View(focused bool, labelWidth int) string {
	labelStyle := lipgloss.NewStyle().Foreground(field.theme.InputLabel)
	textStyle := lipgloss.NewStyle().Foreground(field.theme.InputText)
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	indicator := "  "
	if focused {
		indicator = lipgloss.NewStyle().
			Foreground(field.theme.InputFocusedBar).
			Render("▌ ")
	}

	label := field.Label
	if len(label) < labelWidth {
		label += strings.Repeat(" ", labelWidth-len(label))
	}

	display := field.runes
	if field.Masked {
		display = []rune(strings.Repeat("*", len(field.runes)))
	}

	if !focused {
		return indicator + labelStyle.Render(label) + textStyle.Render(string(display))
	}

	// Cursor rendering: reverse-video the rune under the cursor, or a
	// trailing space when the cursor is at the end.
	var text string
	if field.cursor >= len(display) {
		text = textStyle.Render(string(display)) + cursorStyle.Render(" ")
	} else {
		text = textStyle.Render(string(display[:field.cursor])) +
			cursorStyle.Render(string(display[field.cursor:field.cursor+1])) +
			textStyle.Render(string(display[field.cursor+1:]))
	}
	return indicator + labelStyle.Render(label) + text
}
