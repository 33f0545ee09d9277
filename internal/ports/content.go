package ports

import (
	"context"

	"github.com/bnema/termfolio/internal/domain"
)

// ContentSource returns the raw content document text.
type ContentSource interface {
	Fetch(ctx context.Context) (string, error)
}

// ContentParser never fails as a whole; broken sections come back absent.
type ContentParser interface {
	Parse(raw string) domain.ContentDocument
}
