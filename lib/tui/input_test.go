// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(field *InputField, text string) {
	for _, character := range text {
		field.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
	}
}

func TestInputFieldTyping(t *testing.T) {
	field := NewInputField("username", false, DefaultTheme)
	typeString(&field, "ada")
	if field.Value() != "ada" {
		t.Fatalf("got %q, want %q", field.Value(), "ada")
	}
}

func TestInputFieldBackspace(t *testing.T) {
	field := NewInputField("username", false, DefaultTheme)
	typeString(&field, "adaa")
	field.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if field.Value() != "ada" {
		t.Fatalf("got %q, want %q", field.Value(), "ada")
	}

	// Backspace on an empty field is a no-op.
	field.Clear()
	field.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if field.Value() != "" {
		t.Fatalf("got %q, want empty", field.Value())
	}
}

func TestInputFieldCursorEditing(t *testing.T) {
	field := NewInputField("username", false, DefaultTheme)
	typeString(&field, "ad")

	// Move left and insert in the middle.
	field.Update(tea.KeyMsg{Type: tea.KeyLeft})
	typeString(&field, "n")
	if field.Value() != "and" {
		t.Fatalf("mid-insert: got %q, want %q", field.Value(), "and")
	}

	// Home then delete removes the first rune.
	field.Update(tea.KeyMsg{Type: tea.KeyHome})
	field.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if field.Value() != "nd" {
		t.Fatalf("delete at home: got %q, want %q", field.Value(), "nd")
	}

	// Ctrl+U from the end clears everything before the cursor.
	field.Update(tea.KeyMsg{Type: tea.KeyEnd})
	field.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if field.Value() != "" {
		t.Fatalf("ctrl+u: got %q, want empty", field.Value())
	}
}

func TestInputFieldMaskedView(t *testing.T) {
	field := NewInputField("password", true, DefaultTheme)
	typeString(&field, "hunter2")

	view := field.View(false, 10)
	if strings.Contains(view, "hunter2") {
		t.Fatal("masked view must not contain the raw value")
	}
	if !strings.Contains(view, "*******") {
		t.Fatalf("masked view should show asterisks, got %q", view)
	}
	if field.Value() != "hunter2" {
		t.Fatalf("masked field must keep the real value, got %q", field.Value())
	}
}

func TestInputFieldSetValue(t *testing.T) {
	field := NewInputField("bio", false, DefaultTheme)
	field.SetValue("hello")
	typeString(&field, "!")
	if field.Value() != "hello!" {
		t.Fatalf("SetValue should leave cursor at end, got %q", field.Value())
	}
}

func TestSpliceOverlay(t *testing.T) {
	view := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")

	spliced := SpliceOverlay(view, []string{"XXXX"}, 3, 1)
	lines := strings.Split(spliced, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[1], "XXXX") {
		t.Fatalf("overlay missing from middle line: %q", lines[1])
	}
	if lines[0] != "aaaaaaaaaa" || lines[2] != "cccccccccc" {
		t.Fatal("overlay must not touch other lines")
	}
	if !strings.HasPrefix(lines[1], "bbb") || !strings.HasSuffix(lines[1], "bbb") {
		t.Fatalf("overlay should preserve prefix and suffix: %q", lines[1])
	}
}
