package filesource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/termfolio/internal/ports"
)

type Source struct {
	path string
}

var _ ports.ContentSource = (*Source)(nil)

func NewSource(path string) *Source {
	return &Source{path: filepath.Clean(path)}
}

func (s *Source) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read content file %q: %w", s.path, err)
	}

	return string(data), nil
}
