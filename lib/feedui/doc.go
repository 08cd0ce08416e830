// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

// Package feedui implements the quill terminal client: a bubbletea
// model that polls a microblog server for posts and renders the feed,
// post details, per-author timelines, and the login/signup/compose
// flows.
//
// The model talks to the server exclusively through the Backend
// interface, satisfied by *microblog.Client. All network calls run as
// asynchronous tea.Cmd functions; results come back as messages so
// the UI never blocks on the wire. Feed fetches carry a sequence
// number, and results from a superseded fetch are discarded rather
// than overwriting newer data.
package feedui
