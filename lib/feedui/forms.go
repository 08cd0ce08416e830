// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillhq/quill/lib/microblog"
	"github.com/quillhq/quill/lib/tui"
)

// loginForm holds the two credential fields of the login screen.
type loginForm struct {
	username tui.InputField
	password tui.InputField
	focus    int // 0 = username, 1 = password.
	theme    tui.Theme
}

func newLoginForm(theme tui.Theme) loginForm {
	return loginForm{
		username: tui.NewInputField("Username", false, theme),
		password: tui.NewInputField("Password", true, theme),
		theme:    theme,
	}
}

// Update routes a key message to the focused field. Tab and the
// up/down arrows move between fields; Enter reports submission.
func (form *loginForm) Update(message tea.KeyMsg) (submitted bool) {
	switch message.Type {
	case tea.KeyEnter:
		return true
	case tea.KeyTab, tea.KeyDown:
		form.focus = (form.focus + 1) % 2
		return false
	case tea.KeyShiftTab, tea.KeyUp:
		form.focus = (form.focus + 1) % 2
		return false
	}
	if form.focus == 0 {
		form.username.Update(message)
	} else {
		form.password.Update(message)
	}
	return false
}

// Values returns the entered credentials.
func (form loginForm) Values() (username, password string) {
	return form.username.Value(), form.password.Value()
}

const loginLabelWidth = 10

func (form loginForm) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(form.theme.HeaderForeground)
	footerStyle := lipgloss.NewStyle().
		Foreground(form.theme.FaintText)

	var view strings.Builder
	view.WriteString(titleStyle.Render("Log in") + "\n\n")
	view.WriteString(form.username.View(form.focus == 0, loginLabelWidth) + "\n")
	view.WriteString(form.password.View(form.focus == 1, loginLabelWidth) + "\n\n")
	view.WriteString(footerStyle.Render("Enter submit  Tab next field  Esc cancel"))
	return view.String()
}

// signupForm holds the registration fields: credentials plus the
// optional profile (display name, bio, icon).
type signupForm struct {
	fields []tui.InputField
	focus  int
	theme  tui.Theme
}

// Field order in signupForm.fields.
const (
	signupFieldUsername = iota
	signupFieldPassword
	signupFieldDisplayName
	signupFieldBio
	signupFieldIcon
	signupFieldCount
)

func newSignupForm(theme tui.Theme) signupForm {
	return signupForm{
		fields: []tui.InputField{
			tui.NewInputField("Username", false, theme),
			tui.NewInputField("Password", true, theme),
			tui.NewInputField("Name", false, theme),
			tui.NewInputField("Bio", false, theme),
			tui.NewInputField("Icon", false, theme),
		},
		theme: theme,
	}
}

// Update routes a key message to the focused field. Tab and the
// up/down arrows move between fields; Enter reports submission.
func (form *signupForm) Update(message tea.KeyMsg) (submitted bool) {
	switch message.Type {
	case tea.KeyEnter:
		return true
	case tea.KeyTab, tea.KeyDown:
		form.focus = (form.focus + 1) % signupFieldCount
		return false
	case tea.KeyShiftTab, tea.KeyUp:
		form.focus = (form.focus + signupFieldCount - 1) % signupFieldCount
		return false
	}
	form.fields[form.focus].Update(message)
	return false
}

// Request builds the registration payload from the entered values.
func (form signupForm) Request() microblog.SignupRequest {
	return microblog.SignupRequest{
		Username:    form.fields[signupFieldUsername].Value(),
		Password:    form.fields[signupFieldPassword].Value(),
		DisplayName: form.fields[signupFieldDisplayName].Value(),
		Bio:         form.fields[signupFieldBio].Value(),
		ProfileIcon: form.fields[signupFieldIcon].Value(),
	}
}

const signupLabelWidth = 10

func (form signupForm) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(form.theme.HeaderForeground)
	footerStyle := lipgloss.NewStyle().
		Foreground(form.theme.FaintText)

	var view strings.Builder
	view.WriteString(titleStyle.Render("Create account") + "\n\n")
	for index, field := range form.fields {
		view.WriteString(field.View(form.focus == index, signupLabelWidth) + "\n")
	}
	view.WriteString("\n" + footerStyle.Render("Enter submit  Tab next field  Esc cancel"))
	return view.String()
}
