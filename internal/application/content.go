package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/termfolio/internal/domain"
	"github.com/bnema/termfolio/internal/ports"
)

type ContentService struct {
	source ports.ContentSource
	parser ports.ContentParser
	logger *slog.Logger
}

func NewContentService(source ports.ContentSource, parser ports.ContentParser, logger *slog.Logger) *ContentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ContentService{source: source, parser: parser, logger: logger}
}

// Load fetches the document once. A fetch failure makes the whole document
// unavailable; broken sections only mark themselves absent.
func (s *ContentService) Load(ctx context.Context) (domain.ContentDocument, error) {
	if s.source == nil || s.parser == nil {
		return domain.ContentDocument{}, fmt.Errorf("load content: %w", errors.New("content source not configured"))
	}

	raw, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("load terminal content", "error", err)
		return domain.ContentDocument{}, fmt.Errorf("%w: %w", domain.ErrContentUnavailable, err)
	}

	doc := s.parser.Parse(raw)
	if doc.Usable() {
		s.logger.Info("terminal content loaded", "bytes", len(raw))
	} else {
		s.logger.Warn("terminal content incomplete", "missing_sections", doc.Missing())
	}

	return doc, nil
}
