// Package embedded ships a sample content document inside the binary so the
// terminal runs without any configured source.
package embedded

import (
	"context"
	_ "embed"

	"github.com/bnema/termfolio/internal/ports"
)

//go:embed terminal-content.md
var document string

type Source struct{}

var _ ports.ContentSource = Source{}

func (Source) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return document, nil
}

// Document returns the embedded markdown.
func Document() string {
	return document
}
