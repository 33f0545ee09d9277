package tui

import (
	"strings"

	"github.com/bnema/termfolio/internal/domain"
	"github.com/bnema/termfolio/internal/reveal"
	"github.com/charmbracelet/lipgloss"
)

const indentUnit = "  "

// visibleText returns how much of an animated block is on screen. Blocks
// without a live reveal task are shown in full.
func visibleText(reveals *reveal.Registry, owner string, index int, block domain.Block) string {
	if reveals == nil || !block.Animated() {
		return block.Text
	}
	if prefix, ok := reveals.Prefix(reveal.Key{Owner: owner, Index: index}); ok {
		return prefix
	}
	return block.Text
}

func renderOutput(owner string, output domain.Output, reveals *reveal.Registry, s styles) string {
	lines := make([]string, 0, len(output.Blocks))
	for i, block := range output.Blocks {
		line := renderBlock(block, visibleText(reveals, owner, i, block), s)
		if block.SpaceBefore && i > 0 {
			line = "\n" + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderBlock(block domain.Block, text string, s styles) string {
	return strings.Repeat(indentUnit, block.Indent) + renderBlockBody(block, text, s)
}

func renderBlockBody(block domain.Block, text string, s styles) string {
	switch block.Kind {
	case domain.BlockCommand:
		return s.command.Render(block.Label) + " - " + s.text.Render(text)
	case domain.BlockListItem:
		return s.listItem.Render("• " + text)
	case domain.BlockField:
		return s.fieldLabel.Render(block.Label) + " " + s.text.Render(text)
	default:
		return s.forKind(block.Kind).Render(text)
	}
}

func renderPromptLine(prompt, input string, s styles) string {
	return s.prompt.Render(prompt) + " " + s.input.Render(input)
}

// renderEntry prints the prompt line (omitted for an empty input) followed by
// the indented output.
func renderEntry(entry domain.SessionEntry, reveals *reveal.Registry, prompt string, s styles) string {
	var parts []string
	if entry.Input != "" {
		parts = append(parts, renderPromptLine(prompt, entry.Input, s))
	}
	if !entry.Output.Empty() {
		body := renderOutput(entry.ID, entry.Output, reveals, s)
		parts = append(parts, lipgloss.NewStyle().PaddingLeft(2).Render(body))
	}
	return strings.Join(parts, "\n")
}

func renderHistory(entries []domain.SessionEntry, reveals *reveal.Registry, prompt string, s styles) string {
	rendered := make([]string, 0, len(entries))
	for _, entry := range entries {
		rendered = append(rendered, renderEntry(entry, reveals, prompt, s))
	}
	return strings.Join(rendered, "\n\n")
}
