package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/termfolio/internal/domain"
	"github.com/bnema/termfolio/internal/ports"
	"github.com/bnema/termfolio/internal/reveal"
)

const bodyPadding = "  "

type RenderOptions struct {
	Prompt string
}

func (o RenderOptions) prompt() string {
	if o.Prompt == "" {
		return DefaultPrompt
	}
	return o.Prompt
}

// Render draws entries the way the ready terminal shows them. Blocks with a
// live task in reveals show their current prefix; a nil registry shows every
// block in full.
func Render(entries []domain.SessionEntry, reveals *reveal.Registry, opts RenderOptions) string {
	return renderHistory(entries, reveals, opts.prompt(), newStyles())
}

// Play streams entries to w, typing animated blocks one character per reveal
// tick. Blocks are revealed one after the other.
func Play(ctx context.Context, w io.Writer, clock ports.Clock, entries []domain.SessionEntry, opts RenderOptions) error {
	prompt := opts.prompt()
	s := newStyles()

	for i, entry := range entries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if entry.Input != "" {
			if _, err := fmt.Fprintln(w, renderPromptLine(prompt, entry.Input, s)); err != nil {
				return err
			}
		}
		if err := playOutput(ctx, w, clock, entry.Output, s); err != nil {
			return err
		}
	}

	return nil
}

func playOutput(ctx context.Context, w io.Writer, clock ports.Clock, output domain.Output, s styles) error {
	for i, block := range output.Blocks {
		lead := bodyPadding + strings.Repeat(indentUnit, block.Indent)
		if block.SpaceBefore && i > 0 {
			lead = "\n" + lead
		}

		if !block.Animated() {
			if _, err := fmt.Fprintln(w, lead+renderBlockBody(block, block.Text, s)); err != nil {
				return err
			}
			continue
		}

		if _, err := io.WriteString(w, lead); err != nil {
			return err
		}
		style := s.forKind(block.Kind)
		if err := reveal.Typewrite(ctx, w, clock, block.Text, block.RevealDelay, func(chunk string) string {
			return style.Render(chunk)
		}); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
