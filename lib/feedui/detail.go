// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillhq/quill/lib/microblog"
	"github.com/quillhq/quill/lib/tui"
)

// detailPane renders a single post full-screen: the author header,
// the timestamp, and the markdown-rendered body in a scrollable
// viewport.
type detailPane struct {
	viewport viewport.Model
	post     microblog.Post
	hasPost  bool
	theme    tui.Theme
	width    int
	height   int
}

func newDetailPane(theme tui.Theme) detailPane {
	return detailPane{
		viewport: viewport.New(0, 0),
		theme:    theme,
	}
}

// detailChromeHeight is the non-scrolling part of the detail screen:
// author line, handle/timestamp line, separator rule, blank spacer.
const detailChromeHeight = 4

// SetSize updates the pane dimensions and re-renders the body so text
// rewraps to the new width.
func (pane *detailPane) SetSize(width, height int) {
	pane.width = width
	pane.viewport.Width = width
	pane.viewport.Height = height - detailChromeHeight
	if pane.viewport.Height < 1 {
		pane.viewport.Height = 1
	}
	pane.height = height
	if pane.hasPost {
		pane.renderBody()
	}
}

// SetPost replaces the displayed post and scrolls back to the top.
func (pane *detailPane) SetPost(post microblog.Post) {
	pane.post = post
	pane.hasPost = true
	pane.renderBody()
	pane.viewport.GotoTop()
}

func (pane *detailPane) renderBody() {
	pane.viewport.SetContent(renderPostBody(pane.post.Content, pane.theme, pane.width))
}

// Scroll moves the viewport by the given number of lines (negative is
// up).
func (pane *detailPane) Scroll(lines int) {
	if lines < 0 {
		pane.viewport.LineUp(-lines)
	} else {
		pane.viewport.LineDown(lines)
	}
}

func (pane *detailPane) HalfPageUp()   { pane.viewport.HalfViewUp() }
func (pane *detailPane) HalfPageDown() { pane.viewport.HalfViewDown() }
func (pane *detailPane) GotoTop()      { pane.viewport.GotoTop() }
func (pane *detailPane) GotoBottom()   { pane.viewport.GotoBottom() }

// View renders the full detail screen body (everything between the
// title bar and the status bar).
func (pane detailPane) View() string {
	if !pane.hasPost {
		return lipgloss.NewStyle().Foreground(pane.theme.FaintText).Render("Loading post…")
	}

	authorStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(pane.theme.AuthorName)
	handleStyle := lipgloss.NewStyle().Foreground(pane.theme.Handle)
	timeStyle := lipgloss.NewStyle().Foreground(pane.theme.Timestamp)
	ruleStyle := lipgloss.NewStyle().Foreground(pane.theme.BorderColor)

	var view strings.Builder
	view.WriteString(authorStyle.Render(pane.post.AuthorLabel()) + "\n")
	view.WriteString(handleStyle.Render(pane.post.AuthorHandle()) +
		"  " + timeStyle.Render(formatTimestamp(pane.post.Timestamp)) + "\n")

	ruleWidth := pane.width
	if ruleWidth < 1 {
		ruleWidth = 1
	}
	view.WriteString(ruleStyle.Render(strings.Repeat("─", ruleWidth)) + "\n\n")
	view.WriteString(pane.viewport.View())
	return view.String()
}
