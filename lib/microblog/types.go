// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package microblog

// User is the service's read-only account snapshot. The client never
// mutates a User; login returns one and posts embed one.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	ProfileIcon string `json:"profile_icon"`
}

// Label returns the user's display name, falling back to the username
// when no display name is set.
func (user User) Label() string {
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return user.Username
}

// Post is a single immutable microblog entry. The embedded user is a
// snapshot taken by the server at read time, not a live reference; it
// is nil when the server has no author record for the post.
type Post struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	User      *User  `json:"user"`
}

// Fallback labels for posts whose embedded user snapshot is absent.
const (
	UnknownDisplayName = "Unknown User"
	UnknownUsername    = "unknown"
)

// AuthorLabel returns the post author's display name, or the unknown
// fallback when the embedded user is absent.
func (post Post) AuthorLabel() string {
	if post.User == nil {
		return UnknownDisplayName
	}
	return post.User.Label()
}

// AuthorHandle returns the post author's @-prefixed handle, or
// "@unknown" when the embedded user is absent.
func (post Post) AuthorHandle() string {
	if post.User == nil || post.User.Username == "" {
		return "@" + UnknownUsername
	}
	return "@" + post.User.Username
}

// loginRequest is the POST /login/ body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse wraps the user record returned by POST /login/.
type loginResponse struct {
	User User `json:"user"`
}

// SignupRequest holds parameters for creating a new account via
// POST /signup/. Username and Password are required; the rest are
// optional profile fields.
type SignupRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	ProfileIcon string `json:"profile_icon"`
}

// createPostRequest is the POST /create_post/ body. The user ID is
// client-supplied; the service trusts it without a credential.
type createPostRequest struct {
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
}
