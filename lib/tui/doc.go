// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides generic terminal UI building blocks shared by
// quill's screens: the color theme, a single-line input field with
// optional masking, and ANSI-aware overlay splicing for modals.
//
// Feed-specific logic (screens, polling, forms, markdown rendering of
// posts) lives in the feedui package; this package knows nothing
// about posts or users.
package tui
