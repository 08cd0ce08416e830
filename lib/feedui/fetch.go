// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillhq/quill/lib/microblog"
)

// requestTimeout bounds every backend call issued from the UI. A hung
// request must never wedge the message loop's command goroutine pool.
const requestTimeout = 10 * time.Second

// pollTickMsg drives the periodic feed refresh. Each tick schedules
// the next one, so exactly one poll chain is alive at a time.
type pollTickMsg struct{}

// feedLoadedMsg delivers the result of a feed fetch. Seq identifies
// which fetch this is; the model discards results whose sequence is
// older than the newest already applied.
type feedLoadedMsg struct {
	Seq   uint64
	Posts []microblog.Post
	Err   error
}

// postLoadedMsg delivers a single post for the detail screen.
type postLoadedMsg struct {
	PostID int64
	Post   microblog.Post
	Err    error
}

// userPostsLoadedMsg delivers one author's timeline. Seq guards
// against stale results the same way feedLoadedMsg does.
type userPostsLoadedMsg struct {
	Seq    uint64
	UserID int64
	Posts  []microblog.Post
	Err    error
}

// loginResultMsg delivers the outcome of a login attempt.
type loginResultMsg struct {
	User microblog.User
	Err  error
}

// signupResultMsg delivers the outcome of account registration.
type signupResultMsg struct {
	Username string
	Err      error
}

// createPostResultMsg delivers the outcome of publishing a post.
type createPostResultMsg struct {
	Err error
}

// noticeFadeMsg is sent after a delay to clear a transient status-bar
// notice and restore the keyboard help line.
type noticeFadeMsg struct {
	// Seq matches the notice this fade belongs to. A fade for a
	// notice that has since been replaced is ignored.
	Seq uint64
}

// noticeFadeDelay is how long status-bar notices stay visible.
const noticeFadeDelay = 5 * time.Second

func schedulePoll(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

func scheduleNoticeFade(seq uint64) tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{Seq: seq}
	})
}

func fetchFeed(backend Backend, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		posts, err := backend.ListPosts(ctx)
		return feedLoadedMsg{Seq: seq, Posts: posts, Err: err}
	}
}

func fetchPost(backend Backend, postID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		post, err := backend.GetPost(ctx, postID)
		return postLoadedMsg{PostID: postID, Post: post, Err: err}
	}
}

func fetchUserPosts(backend Backend, seq uint64, userID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		posts, err := backend.ListPostsByUser(ctx, userID)
		return userPostsLoadedMsg{Seq: seq, UserID: userID, Posts: posts, Err: err}
	}
}

func submitLogin(backend Backend, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, err := backend.Login(ctx, username, password)
		return loginResultMsg{User: user, Err: err}
	}
}

func submitSignup(backend Backend, request microblog.SignupRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := backend.Signup(ctx, request)
		return signupResultMsg{Username: request.Username, Err: err}
	}
}

func submitPost(backend Backend, userID int64, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := backend.CreatePost(ctx, userID, content)
		return createPostResultMsg{Err: err}
	}
}
