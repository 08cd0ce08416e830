// Copyright 2026 The Quill Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/quillhq/quill/lib/tui"
)

// postParserInstance is initialized once and reused. The parser
// configuration never changes and the goldmark Parser is safe to
// share across renders.
var (
	postParserInstance goldmark.Markdown
	postParserOnce     sync.Once
)

func getPostParser() goldmark.Markdown {
	postParserOnce.Do(func() {
		postParserInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.Linkify,
			),
		)
	})
	return postParserInstance
}

// renderPostBody parses a post's markdown content and renders it as
// styled terminal output wrapped to the given width. Soft line breaks
// within paragraphs become spaces so hard-wrapped source reflows at
// any terminal width; code blocks, quotes, and lists keep their
// structure.
func renderPostBody(input string, theme tui.Theme, width int) string {
	if input == "" {
		return ""
	}
	source := []byte(input)
	document := getPostParser().Parser().Parse(text.NewReader(source))

	// Force ANSI256: this output always targets the bubbletea screen,
	// and auto-detection produces uncolored output when stdout is not
	// a TTY (tests, pipes). SetColorProfile is required because
	// lipgloss.Renderer re-detects from the environment otherwise.
	styler := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	styler.SetColorProfile(termenv.ANSI256)

	renderer := &postRenderer{
		source: source,
		theme:  theme,
		width:  width,
		styler: styler,
	}
	ast.Walk(document, renderer.walk)

	return strings.TrimRight(renderer.output.String(), "\n")
}

// postRenderer walks a goldmark AST and produces styled terminal
// text. It uses a direct ast.Walk rather than goldmark's renderer
// interface because terminal rendering needs accumulate-then-wrap
// semantics: a paragraph's inline content collects in a buffer and is
// word-wrapped as a unit when the paragraph closes.
type postRenderer struct {
	source []byte
	theme  tui.Theme
	width  int

	// Final rendered output.
	output strings.Builder

	// Inline accumulator: collects styled fragments within a
	// paragraph or heading, flushed with word-wrap when the block
	// closes.
	inline strings.Builder

	// Prefix stack for nested block containers (quotes, lists).
	prefixStack     []blockPrefix
	linePrefix      string
	linePrefixWidth int

	// Pending bullet: replaces linePrefix for the very next emitted
	// line, then clears. Used for list item bullets and numbers.
	pendingBullet string

	// Inline style counters. Counters rather than booleans so nested
	// emphasis unwinds correctly.
	boldCount          int
	italicCount        int
	strikethroughCount int

	listStack []listLevel

	// lipgloss renderer with the forced color profile.
	styler *lipgloss.Renderer

	// Trailing newlines at end of output, for blank line management.
	trailingNewlines int
}

type blockPrefix struct {
	text  string
	width int
}

type listLevel struct {
	ordered bool
	counter int
	tight   bool
}

// wrapBreakpoints are the characters ansi.Wrap may break a line at.
const wrapBreakpoints = " ,.;-+|"

func (renderer *postRenderer) newStyle() lipgloss.Style {
	return renderer.styler.NewStyle()
}

// contentWidth returns the width available after nesting prefixes,
// clamped to a minimum of 10 to prevent degenerate wrapping.
func (renderer *postRenderer) contentWidth() int {
	width := renderer.width - renderer.linePrefixWidth
	if width < 10 {
		width = 10
	}
	return width
}

func (renderer *postRenderer) pushPrefix(prefixText string, visibleWidth int) {
	renderer.prefixStack = append(renderer.prefixStack, blockPrefix{
		text:  prefixText,
		width: visibleWidth,
	})
	renderer.linePrefix += prefixText
	renderer.linePrefixWidth += visibleWidth
}

func (renderer *postRenderer) popPrefix() {
	if len(renderer.prefixStack) == 0 {
		return
	}
	top := renderer.prefixStack[len(renderer.prefixStack)-1]
	renderer.prefixStack = renderer.prefixStack[:len(renderer.prefixStack)-1]
	renderer.linePrefix = renderer.linePrefix[:len(renderer.linePrefix)-len(top.text)]
	renderer.linePrefixWidth -= top.width
}

func (renderer *postRenderer) inTightList() bool {
	if len(renderer.listStack) == 0 {
		return false
	}
	return renderer.listStack[len(renderer.listStack)-1].tight
}

// writeOutput appends text to the output buffer, tracking trailing
// newlines for blank line management.
func (renderer *postRenderer) writeOutput(s string) {
	if s == "" {
		return
	}
	renderer.output.WriteString(s)

	newTrailing := 0
	entirelyNewlines := true
	for index := len(s) - 1; index >= 0; index-- {
		if s[index] == '\n' {
			newTrailing++
		} else {
			entirelyNewlines = false
			break
		}
	}
	if entirelyNewlines {
		renderer.trailingNewlines += newTrailing
	} else {
		renderer.trailingNewlines = newTrailing
	}
}

func (renderer *postRenderer) ensureNewline() {
	if renderer.trailingNewlines < 1 {
		renderer.writeOutput("\n")
	}
}

func (renderer *postRenderer) ensureBlankLine() {
	for renderer.trailingNewlines < 2 {
		renderer.writeOutput("\n")
	}
}

// consumeLinePrefix returns the prefix for the current line. A
// pending bullet (first line of a list item) is returned once and
// cleared; otherwise the regular prefix applies.
func (renderer *postRenderer) consumeLinePrefix() string {
	if renderer.pendingBullet != "" {
		bullet := renderer.pendingBullet
		renderer.pendingBullet = ""
		return bullet
	}
	return renderer.linePrefix
}

// applyPrefixes prepends the line prefix to each line of content.
func (renderer *postRenderer) applyPrefixes(content string) string {
	lines := strings.Split(content, "\n")
	var result strings.Builder
	for index, line := range lines {
		if index == 0 {
			result.WriteString(renderer.consumeLinePrefix())
		} else {
			result.WriteString(renderer.linePrefix)
		}
		result.WriteString(line)
		if index < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// flushInline word-wraps the accumulated inline content, applies
// line prefixes, and resets the inline buffer.
func (renderer *postRenderer) flushInline() string {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if content == "" {
		return ""
	}
	return renderer.applyPrefixes(ansi.Wrap(content, renderer.contentWidth(), wrapBreakpoints))
}

// styledText applies the current inline style to a text fragment.
func (renderer *postRenderer) styledText(content string) string {
	style := renderer.newStyle().Foreground(renderer.theme.NormalText)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	if renderer.strikethroughCount > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(content)
}

// renderInlineContent walks a node's children to collect inline
// content into a string, saving and restoring the inline buffer and
// style counters so the caller's context is unaffected.
func (renderer *postRenderer) renderInlineContent(node ast.Node) string {
	savedInline := renderer.inline.String()
	savedBold := renderer.boldCount
	savedItalic := renderer.italicCount
	savedStrikethrough := renderer.strikethroughCount

	renderer.inline.Reset()
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		ast.Walk(child, renderer.walk)
	}
	result := renderer.inline.String()

	renderer.inline.Reset()
	renderer.inline.WriteString(savedInline)
	renderer.boldCount = savedBold
	renderer.italicCount = savedItalic
	renderer.strikethroughCount = savedStrikethrough

	return result
}

// highlightCode uses Chroma to syntax-highlight fenced code. Falls
// back to CodeForeground-styled plain text when the language is
// unknown or highlighting fails.
func (renderer *postRenderer) highlightCode(code, language string) string {
	if language == "" {
		return renderer.newStyle().Foreground(renderer.theme.CodeForeground).Render(code)
	}
	var buffer strings.Builder
	err := quick.Highlight(&buffer, code, language, "terminal256", "monokai")
	if err != nil {
		return renderer.newStyle().Foreground(renderer.theme.CodeForeground).Render(code)
	}
	return buffer.String()
}

func (renderer *postRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {

	// Block nodes.
	case ast.KindDocument:

	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			renderer.inline.Reset()
		} else {
			flushed := renderer.flushInline()
			if flushed != "" {
				renderer.writeOutput(flushed)
				renderer.ensureNewline()
				if !renderer.inTightList() {
					renderer.ensureBlankLine()
				}
			}
		}

	case ast.KindHeading:
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.leaveHeading(node.(*ast.Heading))
		}

	case ast.KindFencedCodeBlock:
		if entering {
			renderer.renderFencedCode(node.(*ast.FencedCodeBlock))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindCodeBlock:
		if entering {
			renderer.renderIndentedCode(node.(*ast.CodeBlock))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindBlockquote:
		if entering {
			renderer.pushPrefix(renderer.newStyle().Foreground(renderer.theme.QuoteBar).Render("│")+" ", 2)
		} else {
			renderer.popPrefix()
			renderer.ensureBlankLine()
		}

	case ast.KindList:
		if entering {
			renderer.enterList(node.(*ast.List))
		} else {
			renderer.leaveList()
		}

	case ast.KindListItem:
		if entering {
			renderer.enterListItem()
		} else {
			renderer.leaveListItem()
		}

	case ast.KindThematicBreak:
		if entering {
			renderer.renderThematicBreak()
		}

	// Inline nodes.
	case ast.KindText:
		if entering {
			renderer.handleText(node.(*ast.Text))
		}

	case ast.KindString:
		if entering {
			str := node.(*ast.String)
			renderer.inline.WriteString(renderer.styledText(string(str.Value)))
		}

	case ast.KindEmphasis:
		renderer.handleEmphasis(node.(*ast.Emphasis), entering)

	case ast.KindCodeSpan:
		if entering {
			renderer.renderCodeSpan(node)
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		if entering {
			renderer.renderLink(node.(*ast.Link))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindAutoLink:
		if entering {
			renderer.renderAutoLink(node.(*ast.AutoLink))
		}

	case extast.KindStrikethrough:
		if entering {
			renderer.strikethroughCount++
		} else {
			renderer.strikethroughCount--
		}
	}

	return ast.WalkContinue, nil
}

// --- Block-level handlers ---

func (renderer *postRenderer) leaveHeading(heading *ast.Heading) {
	// Strip inline styling first: the heading has its own style that
	// replaces the NormalText applied by styledText().
	content := ansi.Strip(renderer.inline.String())
	renderer.inline.Reset()
	if content == "" {
		return
	}

	style := renderer.newStyle().Bold(true)
	if heading.Level <= 2 {
		style = style.Foreground(renderer.theme.HeaderForeground)
	} else {
		style = style.Foreground(renderer.theme.NormalText)
	}

	wrapped := ansi.Wrap(style.Render(content), renderer.contentWidth(), wrapBreakpoints)
	renderer.ensureBlankLine()
	renderer.writeOutput(renderer.applyPrefixes(wrapped))
	renderer.ensureNewline()
	renderer.ensureBlankLine()
}

func (renderer *postRenderer) renderFencedCode(node *ast.FencedCodeBlock) {
	language := string(node.Language(renderer.source))
	var code strings.Builder
	lines := node.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(renderer.source))
	}

	highlighted := renderer.highlightCode(code.String(), language)
	renderer.ensureBlankLine()
	for _, line := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
		renderer.writeOutput(renderer.consumeLinePrefix() + line)
		renderer.ensureNewline()
	}
	renderer.ensureBlankLine()
}

func (renderer *postRenderer) renderIndentedCode(node *ast.CodeBlock) {
	var code strings.Builder
	lines := node.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(renderer.source))
	}

	codeStyle := renderer.newStyle().Foreground(renderer.theme.CodeForeground)
	renderer.ensureBlankLine()
	for _, line := range strings.Split(strings.TrimRight(code.String(), "\n"), "\n") {
		renderer.writeOutput(renderer.consumeLinePrefix() + codeStyle.Render(line))
		renderer.ensureNewline()
	}
	renderer.ensureBlankLine()
}

func (renderer *postRenderer) enterList(list *ast.List) {
	startNumber := 0
	if list.IsOrdered() {
		startNumber = list.Start
	}
	renderer.listStack = append(renderer.listStack, listLevel{
		ordered: list.IsOrdered(),
		counter: startNumber,
		tight:   list.IsTight,
	})
}

func (renderer *postRenderer) leaveList() {
	if len(renderer.listStack) > 0 {
		renderer.listStack = renderer.listStack[:len(renderer.listStack)-1]
	}
	if !renderer.inTightList() {
		renderer.ensureBlankLine()
	}
}

func (renderer *postRenderer) enterListItem() {
	if len(renderer.listStack) == 0 {
		return
	}
	top := &renderer.listStack[len(renderer.listStack)-1]

	var bullet string
	if top.ordered {
		bullet = fmt.Sprintf("%d. ", top.counter)
		top.counter++
	} else {
		bullet = "- "
	}

	bulletWidth := len(bullet) // ASCII-only, so byte length == visual width.
	continuation := strings.Repeat(" ", bulletWidth)

	// The pending bullet includes the current linePrefix so it
	// replaces the entire prefix for the first line of this item.
	renderer.pendingBullet = renderer.linePrefix + bullet
	renderer.pushPrefix(continuation, bulletWidth)
}

func (renderer *postRenderer) leaveListItem() {
	renderer.popPrefix()
	if !renderer.inTightList() {
		renderer.ensureBlankLine()
	} else {
		renderer.ensureNewline()
	}
}

func (renderer *postRenderer) renderThematicBreak() {
	rule := strings.Repeat("─", renderer.contentWidth())
	ruleStyle := renderer.newStyle().Foreground(renderer.theme.BorderColor)
	renderer.ensureBlankLine()
	renderer.writeOutput(renderer.applyPrefixes(ruleStyle.Render(rule)))
	renderer.ensureNewline()
	renderer.ensureBlankLine()
}

// --- Inline handlers ---

func (renderer *postRenderer) handleText(node *ast.Text) {
	segment := node.Segment
	renderer.inline.WriteString(renderer.styledText(string(segment.Value(renderer.source))))

	if node.SoftLineBreak() {
		// Soft line breaks become spaces so hard-wrapped source text
		// reflows at whatever width the terminal has.
		renderer.inline.WriteString(" ")
	}
	if node.HardLineBreak() {
		renderer.inline.WriteString("\n")
	}
}

func (renderer *postRenderer) handleEmphasis(node *ast.Emphasis, entering bool) {
	if node.Level >= 2 {
		if entering {
			renderer.boldCount++
		} else {
			renderer.boldCount--
		}
	} else {
		if entering {
			renderer.italicCount++
		} else {
			renderer.italicCount--
		}
	}
}

func (renderer *postRenderer) renderCodeSpan(node ast.Node) {
	var code strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			segment := textNode.Segment
			code.Write(segment.Value(renderer.source))
		} else if strNode, ok := child.(*ast.String); ok {
			code.Write(strNode.Value)
		}
	}
	codeStyle := renderer.newStyle().Foreground(renderer.theme.CodeForeground)
	renderer.inline.WriteString(codeStyle.Render(code.String()))
}

func (renderer *postRenderer) renderLink(node *ast.Link) {
	// renderInlineContent already applies inline styling to the link
	// text, so it is written without double-styling.
	displayText := renderer.renderInlineContent(node)
	url := string(node.Destination)

	renderer.inline.WriteString(displayText)
	if url != "" {
		urlStyle := renderer.newStyle().Foreground(renderer.theme.LinkForeground)
		renderer.inline.WriteString(" " + urlStyle.Render("("+url+")"))
	}
}

func (renderer *postRenderer) renderAutoLink(node *ast.AutoLink) {
	url := string(node.URL(renderer.source))
	urlStyle := renderer.newStyle().Foreground(renderer.theme.LinkForeground)
	renderer.inline.WriteString(urlStyle.Render(url))
}
