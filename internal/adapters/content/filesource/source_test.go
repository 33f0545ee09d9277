package filesource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "terminal-content.md")
	require.NoError(t, os.WriteFile(path, []byte("## Welcome"), 0o600))

	raw, err := NewSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "## Welcome", raw)
}

func TestFetchMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewSource(filepath.Join(t.TempDir(), "absent.md")).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFetchHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource("unused.md").Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
