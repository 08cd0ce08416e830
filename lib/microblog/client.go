// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package microblog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/quillhq/quill/lib/netutil"
)

// DefaultBaseURL is the microblog service origin used when no server
// is configured.
const DefaultBaseURL = "https://api.quill.social"

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the service origin (e.g., "https://api.quill.social").
	// If empty, DefaultBaseURL is used.
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client talks to the microblog service. It holds the base URL and
// HTTP transport and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client for the configured service origin.
func NewClient(config ClientConfig) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// Validate the URL structure up front. Request URLs are built by
	// direct string concatenation on the trimmed base, so a malformed
	// base would otherwise fail on every call with a confusing error.
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("microblog: invalid BaseURL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("microblog: BaseURL %q must use http or https", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the service origin this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPosts returns the full feed, most-recent-first as ordered by the
// server.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.doRequest(ctx, http.MethodGet, "/posts/", nil, &posts); err != nil {
		return nil, fmt.Errorf("microblog: listing posts: %w", err)
	}
	return posts, nil
}

// GetPost returns a single post by ID.
func (c *Client) GetPost(ctx context.Context, postID int64) (Post, error) {
	var post Post
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/post/%d/", postID), nil, &post); err != nil {
		return Post{}, fmt.Errorf("microblog: fetching post %d: %w", postID, err)
	}
	return post, nil
}

// ListPostsByUser returns all posts authored by the given user,
// most-recent-first as ordered by the server. An existing user with no
// posts and an unknown user both yield an empty slice — the service
// has no dedicated user-lookup endpoint to tell them apart.
func (c *Client) ListPostsByUser(ctx context.Context, userID int64) ([]Post, error) {
	var posts []Post
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/posts/user/%d/", userID), nil, &posts); err != nil {
		return nil, fmt.Errorf("microblog: listing posts for user %d: %w", userID, err)
	}
	return posts, nil
}

// Login authenticates with the service and returns the account's User
// snapshot. The snapshot is the entire session state — the service
// issues no token.
func (c *Client) Login(ctx context.Context, username, password string) (User, error) {
	if username == "" {
		return User{}, fmt.Errorf("microblog: username is required for login")
	}
	if password == "" {
		return User{}, fmt.Errorf("microblog: password is required for login")
	}

	var response loginResponse
	if err := c.doRequest(ctx, http.MethodPost, "/login/", loginRequest{
		Username: username,
		Password: password,
	}, &response); err != nil {
		return User{}, fmt.Errorf("microblog: login failed: %w", err)
	}

	c.logger.Info("logged in",
		"user_id", response.User.ID,
		"username", response.User.Username,
	)
	return response.User, nil
}

// Signup creates a new account. On success the caller must log in
// separately — the service does not auto-login new accounts.
func (c *Client) Signup(ctx context.Context, request SignupRequest) error {
	if request.Username == "" {
		return fmt.Errorf("microblog: username is required for signup")
	}
	if request.Password == "" {
		return fmt.Errorf("microblog: password is required for signup")
	}

	if err := c.doRequest(ctx, http.MethodPost, "/signup/", request, nil); err != nil {
		return fmt.Errorf("microblog: signup failed: %w", err)
	}

	c.logger.Info("account created", "username", request.Username)
	return nil
}

// CreatePost publishes a new post as the given user. The user ID is
// sent as-is; the service trusts it without a server-verified
// credential.
func (c *Client) CreatePost(ctx context.Context, userID int64, content string) error {
	if content == "" {
		return fmt.Errorf("microblog: post content is required")
	}

	if err := c.doRequest(ctx, http.MethodPost, "/create_post/", createPostRequest{
		UserID:  userID,
		Content: content,
	}, nil); err != nil {
		return fmt.Errorf("microblog: creating post: %w", err)
	}

	c.logger.Info("post created", "user_id", userID, "content_length", len(content))
	return nil
}

// doRequest performs an HTTP request against the service. On 2xx the
// response body is JSON-decoded into out (skipped when out is nil). On
// any other status it returns an *APIError carrying the status code
// and the server's detail message when one can be parsed.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody, out any) error {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := netutil.DecodeResponse(response.Body, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	// Error responses carry a {"detail": "..."} body when the server
	// produced one. A non-JSON error body still yields a usable
	// APIError with just the status code.
	errorBody := netutil.ErrorBody(response.Body)
	apiErr := &APIError{StatusCode: response.StatusCode}
	if jsonErr := json.Unmarshal([]byte(errorBody), apiErr); jsonErr != nil {
		c.logger.Debug("non-JSON error response",
			"method", method,
			"path", path,
			"status", response.StatusCode,
			"body", errorBody,
		)
	}
	return apiErr
}
