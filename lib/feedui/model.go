// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillhq/quill/lib/microblog"
	"github.com/quillhq/quill/lib/tui"
)

// Screen identifies which top-level view the model is showing.
type Screen int

const (
	// ScreenFeed shows the global post feed.
	ScreenFeed Screen = iota
	// ScreenPost shows a single post's detail view.
	ScreenPost
	// ScreenUser shows one author's timeline.
	ScreenUser
	// ScreenLogin shows the credential form.
	ScreenLogin
	// ScreenSignup shows the registration form.
	ScreenSignup
)

// defaultPollInterval is how often the feed refreshes when the caller
// does not configure an interval.
const defaultPollInterval = 5 * time.Second

// Config carries the dependencies for NewModel. Backend is required;
// everything else has a usable zero-value default.
type Config struct {
	Backend Backend

	// Logger receives diagnostic records. Defaults to a discard
	// logger; wire a TUILogHandler to surface records in the UI.
	Logger *slog.Logger

	// PollInterval is the feed refresh period. Defaults to 5s.
	PollInterval time.Duration

	// Theme is the color palette. Zero value means tui.DefaultTheme.
	Theme tui.Theme

	// Keys is the key binding set. Zero value means DefaultKeyMap.
	Keys KeyMap
}

// Model is the bubbletea model for the quill client. It is a value
// type: Update returns modified copies, per the bubbletea contract.
type Model struct {
	backend Backend
	logger  *slog.Logger
	keys    KeyMap
	theme   tui.Theme

	width  int
	height int

	screen Screen
	// returnScreen is where Esc from the post detail goes back to:
	// the feed, or the author timeline the post was opened from.
	returnScreen Screen

	// Feed state.
	posts    []microblog.Post
	selected int

	// Feed fetch sequencing. Every fetch gets the next fetchSeq;
	// a result is applied only if its sequence is newer than
	// appliedSeq, so a slow response can never overwrite the data a
	// faster later fetch already delivered.
	fetchSeq   uint64
	appliedSeq uint64

	// Author timeline state, with its own sequence pair.
	userID         int64
	userLabel      string
	userPosts      []microblog.Post
	userSelected   int
	userFetchSeq   uint64
	userAppliedSeq uint64

	detail detailPane

	// Session: nil means browsing anonymously.
	currentUser *microblog.User

	login  loginForm
	signup signupForm

	// compose is non-nil while the compose modal is open. While a
	// submitted draft is in flight the modal stays open but ignores
	// input, so the draft text survives a failed publish.
	compose           *composeModal
	composeSubmitting bool

	// Status-bar notice. noticeSeq matches fade messages to the
	// notice they were scheduled for.
	notice      string
	noticeLevel slog.Level
	noticeSeq   uint64

	pollInterval time.Duration
}

// NewModel creates the client model. The first feed fetch and the
// poll loop start from Init.
func NewModel(config Config) Model {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	theme := config.Theme
	if theme.NormalText == "" {
		theme = tui.DefaultTheme
	}
	keys := config.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap
	}
	interval := config.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return Model{
		backend:      config.Backend,
		logger:       logger,
		keys:         keys,
		theme:        theme,
		detail:       newDetailPane(theme),
		login:        newLoginForm(theme),
		signup:       newSignupForm(theme),
		pollInterval: interval,
		fetchSeq:     1,
	}
}

// CurrentUser returns the logged-in user, or nil when anonymous.
func (model Model) CurrentUser() *microblog.User {
	return model.currentUser
}

// Init implements tea.Model. Fires the initial feed fetch and starts
// the poll chain.
func (model Model) Init() tea.Cmd {
	return tea.Batch(
		fetchFeed(model.backend, model.fetchSeq),
		schedulePoll(model.pollInterval),
	)
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.detail.SetSize(message.Width, message.Height-chromeHeight)
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)

	case pollTickMsg:
		model.fetchSeq++
		commands := []tea.Cmd{
			fetchFeed(model.backend, model.fetchSeq),
			schedulePoll(model.pollInterval),
		}
		// The author timeline refreshes on the same cadence while
		// it is on screen.
		if model.screen == ScreenUser {
			model.userFetchSeq++
			commands = append(commands, fetchUserPosts(model.backend, model.userFetchSeq, model.userID))
		}
		return model, tea.Batch(commands...)

	case feedLoadedMsg:
		return model.applyFeedResult(message)

	case userPostsLoadedMsg:
		return model.applyUserPostsResult(message)

	case postLoadedMsg:
		if message.Err != nil {
			model.logger.Warn("post fetch failed",
				"post_id", message.PostID, "error", message.Err)
			return model.showNotice("Could not load post: "+message.Err.Error(), slog.LevelWarn)
		}
		model.detail.SetPost(message.Post)
		model.screen = ScreenPost
		return model, nil

	case loginResultMsg:
		if message.Err != nil {
			model.logger.Warn("login failed", "error", message.Err)
			return model.showNotice("Login failed: "+message.Err.Error(), slog.LevelWarn)
		}
		user := message.User
		model.currentUser = &user
		model.login = newLoginForm(model.theme)
		model.screen = ScreenFeed
		return model.showNotice("Logged in as "+user.Label(), slog.LevelInfo)

	case signupResultMsg:
		if message.Err != nil {
			model.logger.Warn("signup failed",
				"username", message.Username, "error", message.Err)
			return model.showNotice("Signup failed: "+message.Err.Error(), slog.LevelWarn)
		}
		// Registration does not log the new account in; the login
		// form opens prefilled with the chosen username.
		model.login = newLoginForm(model.theme)
		model.login.username.SetValue(message.Username)
		model.login.focus = 1
		model.screen = ScreenLogin
		return model.showNotice("Account created, enter your password to log in", slog.LevelInfo)

	case createPostResultMsg:
		model.composeSubmitting = false
		if message.Err != nil {
			model.logger.Warn("create post failed", "error", message.Err)
			// The modal stays open so the draft is not lost.
			return model.showNotice("Post failed: "+message.Err.Error(), slog.LevelWarn)
		}
		model.compose = nil
		model.fetchSeq++
		updated, noticeCmd := model.showNotice("Posted", slog.LevelInfo)
		return updated, tea.Batch(noticeCmd, fetchFeed(model.backend, model.fetchSeq))

	case noticeFadeMsg:
		if message.Seq == model.noticeSeq {
			model.notice = ""
		}
		return model, nil

	case logRecordMsg:
		return model.showNotice(message.Summary, message.Level)
	}

	return model, nil
}

// applyFeedResult applies a feed fetch outcome, dropping results a
// newer fetch has already superseded.
func (model Model) applyFeedResult(message feedLoadedMsg) (tea.Model, tea.Cmd) {
	if message.Seq <= model.appliedSeq {
		// A newer fetch already landed; this result is stale.
		return model, nil
	}
	model.appliedSeq = message.Seq

	if message.Err != nil {
		model.logger.Warn("feed refresh failed", "error", message.Err)
		// A failed refresh empties the feed rather than showing
		// stale posts as current.
		model.posts = nil
		model.selected = 0
		return model.showNotice("Feed unavailable: "+message.Err.Error(), slog.LevelWarn)
	}

	// Keep the selection on the same post across refreshes when it
	// still exists; otherwise clamp.
	var selectedID int64 = -1
	if model.selected < len(model.posts) {
		selectedID = model.posts[model.selected].ID
	}
	model.posts = message.Posts
	model.selected = 0
	for index, post := range model.posts {
		if post.ID == selectedID {
			model.selected = index
			break
		}
	}
	return model, nil
}

// applyUserPostsResult applies an author timeline fetch outcome with
// the same staleness rules as the feed.
func (model Model) applyUserPostsResult(message userPostsLoadedMsg) (tea.Model, tea.Cmd) {
	if message.Seq <= model.userAppliedSeq || message.UserID != model.userID {
		return model, nil
	}
	model.userAppliedSeq = message.Seq

	if message.Err != nil {
		model.logger.Warn("author timeline fetch failed",
			"user_id", message.UserID, "error", message.Err)
		model.userPosts = nil
		model.userSelected = 0
		return model.showNotice("Timeline unavailable: "+message.Err.Error(), slog.LevelWarn)
	}

	var selectedID int64 = -1
	if model.userSelected < len(model.userPosts) {
		selectedID = model.userPosts[model.userSelected].ID
	}
	model.userPosts = message.Posts
	model.userSelected = 0
	for index, post := range model.userPosts {
		if post.ID == selectedID {
			model.userSelected = index
			break
		}
	}
	return model, nil
}

// handleKey routes keyboard input by the active overlay or screen.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The compose modal captures all input while open.
	if model.compose != nil {
		return model.handleComposeKeys(message)
	}

	switch model.screen {
	case ScreenLogin:
		return model.handleLoginKeys(message)
	case ScreenSignup:
		return model.handleSignupKeys(message)
	case ScreenPost:
		return model.handleDetailKeys(message)
	case ScreenUser:
		return model.handleUserKeys(message)
	default:
		return model.handleFeedKeys(message)
	}
}

func (model Model) handleFeedKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		if model.selected > 0 {
			model.selected--
		}

	case key.Matches(message, model.keys.Down):
		if model.selected < len(model.posts)-1 {
			model.selected++
		}

	case key.Matches(message, model.keys.PageUp):
		model.selected -= model.feedPageSize()
		if model.selected < 0 {
			model.selected = 0
		}

	case key.Matches(message, model.keys.PageDown):
		model.selected += model.feedPageSize()
		if model.selected > len(model.posts)-1 {
			model.selected = len(model.posts) - 1
		}
		if model.selected < 0 {
			model.selected = 0
		}

	case key.Matches(message, model.keys.Home):
		model.selected = 0

	case key.Matches(message, model.keys.End):
		if len(model.posts) > 0 {
			model.selected = len(model.posts) - 1
		}

	case key.Matches(message, model.keys.Open):
		if model.selected < len(model.posts) {
			post := model.posts[model.selected]
			model.returnScreen = ScreenFeed
			// Show the copy already in hand immediately; the fetch
			// refreshes it in place.
			model.detail.SetPost(post)
			model.screen = ScreenPost
			return model, fetchPost(model.backend, post.ID)
		}

	case key.Matches(message, model.keys.Author):
		if model.selected < len(model.posts) {
			return model.openAuthorTimeline(model.posts[model.selected])
		}

	case key.Matches(message, model.keys.Refresh):
		model.fetchSeq++
		return model, fetchFeed(model.backend, model.fetchSeq)

	case key.Matches(message, model.keys.Compose):
		return model.openCompose()

	case key.Matches(message, model.keys.Login):
		model.login = newLoginForm(model.theme)
		model.screen = ScreenLogin

	case key.Matches(message, model.keys.Signup):
		model.signup = newSignupForm(model.theme)
		model.screen = ScreenSignup

	case key.Matches(message, model.keys.Logout):
		if model.currentUser != nil {
			label := model.currentUser.Label()
			model.currentUser = nil
			return model.showNotice("Logged out "+label, slog.LevelInfo)
		}
	}
	return model, nil
}

func (model Model) handleDetailKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Back):
		model.screen = model.returnScreen

	case key.Matches(message, model.keys.Up):
		model.detail.Scroll(-1)

	case key.Matches(message, model.keys.Down):
		model.detail.Scroll(1)

	case key.Matches(message, model.keys.PageUp):
		model.detail.HalfPageUp()

	case key.Matches(message, model.keys.PageDown):
		model.detail.HalfPageDown()

	case key.Matches(message, model.keys.Home):
		model.detail.GotoTop()

	case key.Matches(message, model.keys.End):
		model.detail.GotoBottom()

	case key.Matches(message, model.keys.Author):
		if model.detail.hasPost {
			return model.openAuthorTimeline(model.detail.post)
		}

	case key.Matches(message, model.keys.Compose):
		return model.openCompose()
	}
	return model, nil
}

func (model Model) handleUserKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Back):
		model.screen = ScreenFeed

	case key.Matches(message, model.keys.Up):
		if model.userSelected > 0 {
			model.userSelected--
		}

	case key.Matches(message, model.keys.Down):
		if model.userSelected < len(model.userPosts)-1 {
			model.userSelected++
		}

	case key.Matches(message, model.keys.Home):
		model.userSelected = 0

	case key.Matches(message, model.keys.End):
		if len(model.userPosts) > 0 {
			model.userSelected = len(model.userPosts) - 1
		}

	case key.Matches(message, model.keys.Open):
		if model.userSelected < len(model.userPosts) {
			post := model.userPosts[model.userSelected]
			model.returnScreen = ScreenUser
			model.detail.SetPost(post)
			model.screen = ScreenPost
			return model, fetchPost(model.backend, post.ID)
		}

	case key.Matches(message, model.keys.Refresh):
		model.userFetchSeq++
		return model, fetchUserPosts(model.backend, model.userFetchSeq, model.userID)

	case key.Matches(message, model.keys.Compose):
		return model.openCompose()
	}
	return model, nil
}

func (model Model) handleLoginKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyEsc {
		model.screen = ScreenFeed
		return model, nil
	}
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}
	if model.login.Update(message) {
		username, password := model.login.Values()
		if strings.TrimSpace(username) == "" || password == "" {
			return model.showNotice("Username and password are required", slog.LevelWarn)
		}
		return model, submitLogin(model.backend, username, password)
	}
	return model, nil
}

func (model Model) handleSignupKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyEsc {
		model.screen = ScreenFeed
		return model, nil
	}
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}
	if model.signup.Update(message) {
		request := model.signup.Request()
		if strings.TrimSpace(request.Username) == "" || request.Password == "" {
			return model.showNotice("Username and password are required", slog.LevelWarn)
		}
		return model, submitSignup(model.backend, request)
	}
	return model, nil
}

func (model Model) handleComposeKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Input is frozen while the draft is in flight; the result
	// message unfreezes (error) or closes (success) the modal.
	if model.composeSubmitting {
		if message.Type == tea.KeyCtrlC {
			return model, tea.Quit
		}
		return model, nil
	}

	switch message.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyEsc:
		model.compose = nil
		return model, nil

	case tea.KeyCtrlD:
		content := strings.TrimSpace(model.compose.Value())
		if content == "" {
			return model.showNotice("Post is empty", slog.LevelWarn)
		}
		if model.currentUser == nil {
			// Session ended while composing (logout races the modal
			// only through programmatic use, but guard anyway).
			model.compose = nil
			return model.showNotice("Log in to post", slog.LevelWarn)
		}
		model.composeSubmitting = true
		return model, submitPost(model.backend, model.currentUser.ID, content)

	default:
		model.compose.Update(message)
		return model, nil
	}
}

// openCompose opens the compose modal, or tells an anonymous user to
// log in first.
func (model Model) openCompose() (tea.Model, tea.Cmd) {
	if model.currentUser == nil {
		return model.showNotice("Log in to post (press l)", slog.LevelWarn)
	}
	modal := newComposeModal(model.currentUser.Label(), model.theme)
	model.compose = &modal
	model.composeSubmitting = false
	return model, nil
}

// openAuthorTimeline switches to the author timeline for the given
// post's user. Posts whose author record is missing have no timeline
// to open.
func (model Model) openAuthorTimeline(post microblog.Post) (tea.Model, tea.Cmd) {
	if post.User == nil {
		return model.showNotice("Author unknown for this post", slog.LevelWarn)
	}
	model.userID = post.User.ID
	model.userLabel = post.User.Label()
	model.userPosts = nil
	model.userSelected = 0
	model.userFetchSeq++
	model.screen = ScreenUser
	return model, fetchUserPosts(model.backend, model.userFetchSeq, model.userID)
}

// showNotice sets the status-bar notice and schedules its fade.
func (model Model) showNotice(text string, level slog.Level) (tea.Model, tea.Cmd) {
	model.notice = text
	model.noticeLevel = level
	model.noticeSeq++
	return model, scheduleNoticeFade(model.noticeSeq)
}

// feedPageSize is how many rows a page-up/down jump covers: the
// visible list height, minimum 1.
func (model Model) feedPageSize() int {
	size := model.height - chromeHeight
	if size < 1 {
		size = 1
	}
	return size
}
