// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package microblog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// testClient creates a Client pointed at the given test server.
func testClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("default base URL", func(t *testing.T) {
		client, err := NewClient(ClientConfig{})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client.BaseURL() != DefaultBaseURL {
			t.Fatalf("got base URL %q, want %q", client.BaseURL(), DefaultBaseURL)
		}
	})

	t.Run("trailing slash stripped", func(t *testing.T) {
		client, err := NewClient(ClientConfig{BaseURL: "https://blog.example.com/"})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if client.BaseURL() != "https://blog.example.com" {
			t.Fatalf("got base URL %q", client.BaseURL())
		}
	})

	t.Run("invalid URL", func(t *testing.T) {
		if _, err := NewClient(ClientConfig{BaseURL: "://invalid"}); err == nil {
			t.Fatal("expected error for invalid URL")
		}
	})

	t.Run("non-HTTP scheme", func(t *testing.T) {
		if _, err := NewClient(ClientConfig{BaseURL: "ftp://blog.example.com"}); err == nil {
			t.Fatal("expected error for non-HTTP scheme")
		}
	})
}

func TestListPosts(t *testing.T) {
	t.Run("returns posts in server order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/posts/" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode([]Post{
				{ID: 2, Content: "second", Timestamp: "2026-08-30T12:00:00",
					User: &User{ID: 1, Username: "ada", DisplayName: "Ada"}},
				{ID: 1, Content: "first", Timestamp: "2026-08-30T11:00:00",
					User: &User{ID: 1, Username: "ada", DisplayName: "Ada"}},
			})
		}))
		defer server.Close()

		posts, err := testClient(t, server).ListPosts(context.Background())
		if err != nil {
			t.Fatalf("ListPosts failed: %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("got %d posts, want 2", len(posts))
		}
		if posts[0].ID != 2 || posts[1].ID != 1 {
			t.Fatalf("server order not preserved: got IDs %d, %d", posts[0].ID, posts[1].ID)
		}
		if posts[0].User.Username != "ada" {
			t.Fatalf("embedded user lost: %+v", posts[0].User)
		}
	})

	t.Run("non-sequence payload is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			writer.Write([]byte(`{"detail":"surprise object"}`))
		}))
		defer server.Close()

		if _, err := testClient(t, server).ListPosts(context.Background()); err == nil {
			t.Fatal("expected parse error for non-array payload")
		}
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := testClient(t, server).ListPosts(context.Background())
		if !IsStatus(err, http.StatusInternalServerError) {
			t.Fatalf("expected 500 APIError, got %v", err)
		}
	})
}

func TestGetPost(t *testing.T) {
	t.Run("fetches by ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/post/7/" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(Post{ID: 7, Content: "hello"})
		}))
		defer server.Close()

		post, err := testClient(t, server).GetPost(context.Background(), 7)
		if err != nil {
			t.Fatalf("GetPost failed: %v", err)
		}
		if post.ID != 7 || post.Content != "hello" {
			t.Fatalf("unexpected post: %+v", post)
		}
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			writer.Write([]byte(`{"detail":"Post not found"}`))
		}))
		defer server.Close()

		_, err := testClient(t, server).GetPost(context.Background(), 404)
		if !IsStatus(err, http.StatusNotFound) {
			t.Fatalf("expected 404 APIError, got %v", err)
		}
	})
}

func TestListPostsByUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/posts/user/3/" {
			t.Errorf("unexpected path: %s", request.URL.Path)
		}
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	posts, err := testClient(t, server).ListPostsByUser(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListPostsByUser failed: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("got %d posts, want 0", len(posts))
	}
}

func TestLogin(t *testing.T) {
	t.Run("success returns user snapshot", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/login/" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			var body loginRequest
			if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
				t.Fatalf("decoding login body: %v", err)
			}
			if body.Username != "ada" || body.Password != "hunter2" {
				t.Errorf("unexpected credentials: %+v", body)
			}
			writer.Header().Set("Content-Type", "application/json")
			json.NewEncoder(writer).Encode(loginResponse{
				User: User{ID: 1, Username: "ada", DisplayName: "Ada Lovelace", Bio: "first programmer"},
			})
		}))
		defer server.Close()

		user, err := testClient(t, server).Login(context.Background(), "ada", "hunter2")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if user.ID != 1 || user.Username != "ada" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			writer.Write([]byte(`{"detail":"Invalid credentials"}`))
		}))
		defer server.Close()

		_, err := testClient(t, server).Login(context.Background(), "ada", "wrong")
		if !IsStatus(err, http.StatusUnauthorized) {
			t.Fatalf("expected 401 APIError, got %v", err)
		}
	})

	t.Run("empty username rejected locally", func(t *testing.T) {
		client, err := NewClient(ClientConfig{})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if _, err := client.Login(context.Background(), "", "pw"); err == nil {
			t.Fatal("expected error for empty username")
		}
	})
}

func TestSignup(t *testing.T) {
	t.Run("sends full profile", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/signup/" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			var body SignupRequest
			if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
				t.Fatalf("decoding signup body: %v", err)
			}
			if body.Username != "grace" || body.DisplayName != "Grace Hopper" {
				t.Errorf("unexpected signup body: %+v", body)
			}
			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		err := testClient(t, server).Signup(context.Background(), SignupRequest{
			Username:    "grace",
			Password:    "cobol",
			DisplayName: "Grace Hopper",
			Bio:         "rear admiral",
			ProfileIcon: "https://blog.example.com/grace.png",
		})
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			writer.Write([]byte(`{"detail":"Username already exists"}`))
		}))
		defer server.Close()

		err := testClient(t, server).Signup(context.Background(), SignupRequest{
			Username: "grace", Password: "cobol",
		})
		if !IsStatus(err, http.StatusBadRequest) {
			t.Fatalf("expected 400 APIError, got %v", err)
		}
	})
}

func TestCreatePost(t *testing.T) {
	t.Run("sends user ID and content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.URL.Path != "/create_post/" {
				t.Errorf("unexpected path: %s", request.URL.Path)
			}
			var body createPostRequest
			if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
				t.Fatalf("decoding create body: %v", err)
			}
			if body.UserID != 5 || body.Content != "hello world" {
				t.Errorf("unexpected create body: %+v", body)
			}
			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		if err := testClient(t, server).CreatePost(context.Background(), 5, "hello world"); err != nil {
			t.Fatalf("CreatePost failed: %v", err)
		}
	})

	t.Run("empty content rejected locally", func(t *testing.T) {
		client, err := NewClient(ClientConfig{})
		if err != nil {
			t.Fatalf("NewClient failed: %v", err)
		}
		if err := client.CreatePost(context.Background(), 5, ""); err == nil {
			t.Fatal("expected error for empty content")
		}
	})
}

func TestAuthorFallbacks(t *testing.T) {
	post := Post{ID: 1, Content: "orphaned"}
	if post.AuthorLabel() != UnknownDisplayName {
		t.Errorf("got label %q, want %q", post.AuthorLabel(), UnknownDisplayName)
	}
	if post.AuthorHandle() != "@unknown" {
		t.Errorf("got handle %q, want %q", post.AuthorHandle(), "@unknown")
	}

	withUser := Post{ID: 2, User: &User{Username: "ada"}}
	if withUser.AuthorLabel() != "ada" {
		t.Errorf("display name should fall back to username, got %q", withUser.AuthorLabel())
	}
	if withUser.AuthorHandle() != "@ada" {
		t.Errorf("handle should carry the @ prefix, got %q", withUser.AuthorHandle())
	}
}
