// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/quillhq/quill/lib/tui"
)

// strippedBody renders a post body and returns ANSI-stripped visible
// text.
func strippedBody(input string, width int) string {
	return ansi.Strip(renderPostBody(input, tui.DefaultTheme, width))
}

func TestRenderPostBodyEmpty(t *testing.T) {
	result := renderPostBody("", tui.DefaultTheme, 80)
	if result != "" {
		t.Errorf("expected empty string for empty input, got %q", result)
	}
}

func TestRenderPostBodyParagraphReflow(t *testing.T) {
	// Source text hard-wrapped at a narrow width.
	input := "This post was written at a\nnarrow width with hard line\nbreaks embedded in it."
	result := strippedBody(input, 120)

	if strings.Contains(result, "\n") {
		t.Errorf("expected no newlines at width=120, got:\n%s", result)
	}
	if !strings.Contains(result, "a narrow width") {
		t.Errorf("expected soft break converted to space, got:\n%s", result)
	}
}

func TestRenderPostBodyWrapsToWidth(t *testing.T) {
	input := "This paragraph should be wrapped to fit the target width exactly."
	result := strippedBody(input, 30)

	for _, line := range strings.Split(result, "\n") {
		if len(line) > 30 {
			t.Errorf("line exceeds width 30: %q (len=%d)", line, len(line))
		}
	}
}

func TestRenderPostBodyEmphasis(t *testing.T) {
	raw := renderPostBody("some **bold** and *italic* words", tui.DefaultTheme, 80)

	if !strings.Contains(raw, "\x1b[") {
		t.Fatal("expected ANSI styling in emphasized output")
	}
	visible := ansi.Strip(raw)
	if !strings.Contains(visible, "bold") || !strings.Contains(visible, "italic") {
		t.Errorf("emphasis markers should not survive rendering, got %q", visible)
	}
	if strings.Contains(visible, "**") || strings.Contains(visible, "*italic*") {
		t.Errorf("markdown syntax leaked into output: %q", visible)
	}
}

func TestRenderPostBodyCodeSpan(t *testing.T) {
	visible := strippedBody("run `go vet` before pushing", 80)
	if !strings.Contains(visible, "go vet") {
		t.Errorf("expected code span text, got %q", visible)
	}
	if strings.Contains(visible, "`") {
		t.Errorf("backticks leaked into output: %q", visible)
	}
}

func TestRenderPostBodyFencedCode(t *testing.T) {
	input := "before\n\n```\nfunc main() {}\n```\n\nafter"
	visible := strippedBody(input, 80)

	if !strings.Contains(visible, "func main() {}") {
		t.Errorf("expected code content, got:\n%s", visible)
	}
	if strings.Contains(visible, "```") {
		t.Errorf("fence markers leaked into output:\n%s", visible)
	}
}

func TestRenderPostBodyFencedCodeHighlighted(t *testing.T) {
	input := "```go\nfunc main() {}\n```"
	raw := renderPostBody(input, tui.DefaultTheme, 80)

	// Chroma emits its own ANSI sequences for a known language.
	if !strings.Contains(raw, "\x1b[") {
		t.Error("expected syntax highlighting escapes for go code")
	}
	if !strings.Contains(ansi.Strip(raw), "func main() {}") {
		t.Errorf("code content missing from:\n%s", ansi.Strip(raw))
	}
}

func TestRenderPostBodyBlockquote(t *testing.T) {
	visible := strippedBody("> quoted wisdom", 80)
	if !strings.Contains(visible, "│ quoted wisdom") {
		t.Errorf("expected quote gutter prefix, got %q", visible)
	}
}

func TestRenderPostBodyLists(t *testing.T) {
	input := "- first\n- second\n\n1. one\n2. two"
	visible := strippedBody(input, 80)

	if !strings.Contains(visible, "- first") || !strings.Contains(visible, "- second") {
		t.Errorf("expected bullet items, got:\n%s", visible)
	}
	if !strings.Contains(visible, "1. one") || !strings.Contains(visible, "2. two") {
		t.Errorf("expected numbered items, got:\n%s", visible)
	}
}

func TestRenderPostBodyHeading(t *testing.T) {
	visible := strippedBody("# Announcement\n\nbody text", 80)
	if !strings.Contains(visible, "Announcement") {
		t.Errorf("expected heading text, got:\n%s", visible)
	}
	if strings.Contains(visible, "#") {
		t.Errorf("heading marker leaked into output:\n%s", visible)
	}
}

func TestRenderPostBodyLink(t *testing.T) {
	visible := strippedBody("see [the docs](https://example.com/docs)", 80)
	if !strings.Contains(visible, "the docs") {
		t.Errorf("expected link text, got %q", visible)
	}
	if !strings.Contains(visible, "(https://example.com/docs)") {
		t.Errorf("expected link URL shown after the text, got %q", visible)
	}
}

func TestRenderPostBodyStrikethrough(t *testing.T) {
	visible := strippedBody("~~wrong~~ right", 80)
	if !strings.Contains(visible, "wrong") || !strings.Contains(visible, "right") {
		t.Errorf("expected both words, got %q", visible)
	}
	if strings.Contains(visible, "~~") {
		t.Errorf("strikethrough markers leaked into output: %q", visible)
	}
}
