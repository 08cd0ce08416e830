// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/quillhq/quill/lib/microblog"
	"github.com/quillhq/quill/lib/tui"
)

// chromeHeight is the fixed vertical overhead of every screen: the
// title bar and the status bar.
const chromeHeight = 2

// View implements tea.Model.
func (model Model) View() string {
	if model.width == 0 || model.height == 0 {
		return "Loading…"
	}

	bodyHeight := model.height - chromeHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch model.screen {
	case ScreenPost:
		body = model.detail.View()
	case ScreenUser:
		body = model.renderPostList(model.userPosts, model.userSelected, bodyHeight,
			"User not found.")
	case ScreenLogin:
		body = model.login.View()
	case ScreenSignup:
		body = model.signup.View()
	default:
		body = model.renderPostList(model.posts, model.selected, bodyHeight,
			"No posts to show.")
	}

	view := model.renderTitleBar() + "\n" +
		padBody(body, bodyHeight) + "\n" +
		model.renderStatusBar()

	if model.compose != nil {
		overlayLines, anchorX, anchorY := model.compose.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, overlayLines, anchorX, anchorY)
	}
	return view
}

// padBody clamps the body to exactly height lines so the status bar
// always sits on the last terminal row.
func padBody(body string, height int) string {
	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (model Model) renderTitleBar() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	handleStyle := lipgloss.NewStyle().Foreground(model.theme.Handle)

	var title string
	switch model.screen {
	case ScreenPost:
		title = "quill · post"
	case ScreenUser:
		title = fmt.Sprintf("quill · %s (%d posts)", model.userLabel, len(model.userPosts))
	case ScreenLogin:
		title = "quill · log in"
	case ScreenSignup:
		title = "quill · sign up"
	default:
		title = fmt.Sprintf("quill · feed (%d posts)", len(model.posts))
	}

	left := titleStyle.Render(title)
	var right string
	if model.currentUser != nil {
		right = handleStyle.Render("@" + model.currentUser.Username)
	} else {
		right = faint.Render("anonymous")
	}

	gap := model.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderPostList renders the feed or an author timeline: one row per
// post, the selection highlighted, scrolled so the selection stays
// visible.
func (model Model) renderPostList(posts []microblog.Post, selected, height int, emptyText string) string {
	if len(posts) == 0 {
		return lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(emptyText)
	}

	// Scroll window: keep the selected row on screen.
	offset := 0
	if selected >= height {
		offset = selected - height + 1
	}

	var rows []string
	for index := offset; index < len(posts) && index < offset+height; index++ {
		rows = append(rows, model.renderPostRow(posts[index], index == selected))
	}
	return strings.Join(rows, "\n")
}

// renderPostRow renders one feed row: author, handle, timestamp, and
// the first line of the post truncated to fit.
func (model Model) renderPostRow(post microblog.Post, selected bool) string {
	preview := post.Content
	if cut := strings.IndexByte(preview, '\n'); cut >= 0 {
		preview = preview[:cut] + " …"
	}

	// The selected row is styled as a single run so the highlight
	// colors cover the whole line instead of fighting the per-field
	// foregrounds.
	if selected {
		row := post.AuthorLabel() + " " +
			post.AuthorHandle() + " " +
			formatTimestamp(post.Timestamp) + "  " +
			preview
		row = ansi.Truncate(row, model.width-2, "…")
		marker := lipgloss.NewStyle().Foreground(model.theme.InputFocusedBar).Render("▌ ")
		return marker + lipgloss.NewStyle().
			Foreground(model.theme.SelectedForeground).
			Background(model.theme.SelectedBackground).
			Render(row)
	}

	authorStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.AuthorName)
	handleStyle := lipgloss.NewStyle().Foreground(model.theme.Handle)
	timeStyle := lipgloss.NewStyle().Foreground(model.theme.Timestamp)
	textStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)

	row := authorStyle.Render(post.AuthorLabel()) + " " +
		handleStyle.Render(post.AuthorHandle()) + " " +
		timeStyle.Render(formatTimestamp(post.Timestamp)) + "  " +
		textStyle.Render(preview)
	return "  " + ansi.Truncate(row, model.width-2, "…")
}

func (model Model) renderStatusBar() string {
	if model.notice != "" {
		var color lipgloss.Color
		switch {
		case model.noticeLevel >= slog.LevelError:
			color = model.theme.NoticeError
		case model.noticeLevel >= slog.LevelWarn:
			color = model.theme.NoticeWarn
		default:
			color = model.theme.NoticeInfo
		}
		return lipgloss.NewStyle().Foreground(color).
			Render(ansi.Truncate(model.notice, model.width, "…"))
	}

	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	var help string
	switch model.screen {
	case ScreenPost:
		help = "j/k scroll  u author  Esc back  q quit"
	case ScreenUser:
		help = "j/k move  Enter open  r refresh  Esc back  q quit"
	case ScreenLogin, ScreenSignup:
		help = "Enter submit  Tab next field  Esc cancel"
	default:
		if model.currentUser != nil {
			help = "j/k move  Enter open  u author  c compose  r refresh  L log out  q quit"
		} else {
			help = "j/k move  Enter open  u author  l log in  s sign up  r refresh  q quit"
		}
	}
	return helpStyle.Render(ansi.Truncate(help, model.width, "…"))
}

// timestampFormats are the wire formats the server is known to emit:
// RFC 3339 with or without fractional seconds, and the same shape
// without a zone suffix.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// formatTimestamp renders a wire timestamp for display. Unparseable
// values pass through untouched rather than hiding the post.
func formatTimestamp(raw string) string {
	for _, format := range timestampFormats {
		if parsed, err := time.Parse(format, raw); err == nil {
			return parsed.Format("2006-01-02 15:04")
		}
	}
	return raw
}
