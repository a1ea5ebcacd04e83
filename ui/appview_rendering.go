package ui

import (
	"regexp"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"magicchat/config"
	appmodel "magicchat/model"
)

// go-term-markdown prefixes code block lines with this bar.
const codeBlockBar = "┃"

// Pre-compiled regex patterns for better performance
var (
	inlineCodeRegex = regexp.MustCompile(`(?s)\x1b\[44;3m(.*?)\x1b\[0m`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
	urlRegex        = regexp.MustCompile(`(https?://[^\s]+)`)
)

// bubbleContentWidth is the text width inside a bubble: three quarters of
// the screen minus border and padding.
func (a AppView) bubbleContentWidth() int {
	w := a.width*3/4 - 4
	if w < 10 {
		w = 10
	}
	return w
}

func (a *AppView) updateViewportContent(gotoBottom bool) {
	generation := a.dataModel.Conversation.Generation()

	var content strings.Builder
	for i, msg := range a.dataModel.Conversation.Messages() {
		text := msg.Text
		if !msg.IsUser {
			if r, ok := a.rendered[renderKey{generation, i}]; ok {
				text = r
			}
		}
		content.WriteString(a.formatBubble(msg, text))
		content.WriteString("\n")
	}

	a.viewport.SetContent(content.String())
	if gotoBottom {
		a.viewport.GotoBottom()
	}
}

// formatBubble draws one message: user messages right-aligned in green, bot
// messages left-aligned in blue, with a dim timestamp underneath.
func (a AppView) formatBubble(msg appmodel.Message, text string) string {
	maxWidth := a.bubbleContentWidth()

	style := BotBubbleStyle
	align := lipgloss.Left
	if msg.IsUser {
		style = UserBubbleStyle
		align = lipgloss.Right
	}

	text = strings.TrimRight(text, "\n")
	if lipgloss.Width(text) > maxWidth {
		style = style.Width(maxWidth + 2) // + horizontal padding
	}

	bubble := style.Render(text)
	timestamp := DimStyle.Render(msg.Timestamp.Format("15:04"))

	block := lipgloss.JoinVertical(align, bubble, timestamp)
	return lipgloss.PlaceHorizontal(a.width, align, block)
}

// rerenderAll drops cached markdown and renders every bot message again at
// the current width.
func (a *AppView) rerenderAll() tea.Cmd {
	a.rendered = make(map[renderKey]string)
	a.renderWidth = a.bubbleContentWidth()

	generation := a.dataModel.Conversation.Generation()
	var cmds []tea.Cmd
	for i, msg := range a.dataModel.Conversation.Messages() {
		if msg.IsUser {
			continue
		}
		cmds = append(cmds, a.renderMarkdownAsync(generation, i, msg.Text))
	}
	return tea.Batch(cmds...)
}

func (a AppView) renderMarkdownAsync(generation uint64, messageIndex int, content string) tea.Cmd {
	width := a.bubbleContentWidth()

	return func() tea.Msg {
		if config.DebugLog != nil {
			config.DebugLog.Debugf("Starting async markdown render for message %d - length: %d chars", messageIndex, len(content))
		}
		startTime := time.Now()

		rendered := renderMarkdown(content, width)

		if config.DebugLog != nil {
			config.DebugLog.Debugf("Markdown rendered and post-processed in %v", time.Since(startTime))
		}

		return markdownRenderedMsg{
			Generation:   generation,
			MessageIndex: messageIndex,
			Rendered:     rendered,
		}
	}
}

// renderMarkdown turns a bot reply into terminal text wrapped at width.
func renderMarkdown(content string, width int) string {
	// Strip markdown link syntax [text](url) → url
	content = preprocessLinks(content)

	// Autolink off: plain URLs stay plain so the terminal can detect them
	customExt := markdown.Extensions() &^ parser.Autolink
	p := parser.NewWithExtensions(customExt)
	r := markdown.NewRenderer(width, 0)
	doc := p.Parse([]byte(content))
	rendered := gomarkdown.Render(doc, r)

	return strings.TrimRight(postProcessMarkdown(string(rendered), width), "\n")
}

func postProcessMarkdown(rendered string, width int) string {
	// 1. Inline code: blue background → red text
	rendered = fixInlineCode(rendered)

	// 2. Color plain URLs red
	rendered = fixMarkdownLinks(rendered)

	// 3. Frame code blocks with horizontal lines
	return frameCodeBlocks(rendered, width)
}

func preprocessLinks(content string) string {
	return mdLinkRegex.ReplaceAllString(content, "$2")
}

func fixInlineCode(s string) string {
	// \x1b[44;3m...\x1b[0m (Blue BG + Italic) → \x1b[31m...\x1b[0m (Red text)
	return inlineCodeRegex.ReplaceAllString(s, "\x1b[31m$1\x1b[0m")
}

func fixMarkdownLinks(s string) string {
	redColor := "\x1b[31m"
	reset := "\x1b[0m"

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		// Code block lines keep their own highlighting
		if !strings.Contains(line, codeBlockBar) {
			lines[i] = urlRegex.ReplaceAllString(line, redColor+"$1"+reset)
		}
	}

	return strings.Join(lines, "\n")
}

func frameCodeBlocks(s string, width int) string {
	lines := strings.Split(s, "\n")
	var result []string
	var codeBlockLines []string
	inCodeBlock := false

	darkGray := "\x1b[90m"
	reset := "\x1b[0m"

	borderWidth := width - 2
	if borderWidth < 8 {
		borderWidth = 8
	}
	bottomBorder := darkGray + strings.Repeat("━", borderWidth) + reset

	closeBlock := func() {
		result = append(result, codeBlockLines...)
		result = append(result, bottomBorder)
		codeBlockLines = nil
		inCodeBlock = false
	}

	for _, line := range lines {
		if strings.Contains(line, codeBlockBar) {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLines = []string{}

				// Top border with [code] label centered
				label := "[code]"
				leftLen := (borderWidth - len(label)) / 2
				rightLen := borderWidth - len(label) - leftLen
				border := darkGray + strings.Repeat("━", leftLen) + reset + label + darkGray + strings.Repeat("━", rightLen) + reset
				result = append(result, border)
			}

			codeBlockLines = append(codeBlockLines, stripCodeBlockPrefix(line))
			continue
		}

		if inCodeBlock {
			closeBlock()
		}
		result = append(result, line)
	}

	if inCodeBlock && len(codeBlockLines) > 0 {
		closeBlock()
	}

	return strings.Join(result, "\n")
}

func stripCodeBlockPrefix(line string) string {
	idx := strings.Index(line, codeBlockBar)
	if idx < 0 {
		return line
	}

	after := idx + len(codeBlockBar)
	if after < len(line) && line[after] == ' ' {
		after++
	}
	if after < len(line) {
		return line[after:]
	}
	return ""
}
