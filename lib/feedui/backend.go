// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import (
	"context"

	"github.com/quillhq/quill/lib/microblog"
)

// Backend is the server access interface the model depends on.
// *microblog.Client satisfies it; tests substitute a fake to exercise
// the UI without a server.
type Backend interface {
	// ListPosts returns every post on the server, newest first.
	ListPosts(ctx context.Context) ([]microblog.Post, error)

	// GetPost returns a single post by ID.
	GetPost(ctx context.Context, postID int64) (microblog.Post, error)

	// ListPostsByUser returns one author's posts, newest first.
	ListPostsByUser(ctx context.Context, userID int64) ([]microblog.Post, error)

	// Login verifies credentials and returns the account's user record.
	Login(ctx context.Context, username, password string) (microblog.User, error)

	// Signup registers a new account.
	Signup(ctx context.Context, request microblog.SignupRequest) error

	// CreatePost publishes a post as the given user.
	CreatePost(ctx context.Context, userID int64, content string) error
}
