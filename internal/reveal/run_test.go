package reveal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bnema/termfolio/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickingClock hands out one mocked ticker fed from ticks. stopped closes
// when the ticker is stopped.
func tickingClock(t *testing.T, delay time.Duration) (*mocks.MockClock, chan<- time.Time, <-chan struct{}) {
	t.Helper()

	ticks := make(chan time.Time, 1)
	stopped := make(chan struct{})

	ticker := mocks.NewMockTicker(t)
	ticker.EXPECT().C().Return((<-chan time.Time)(ticks))
	ticker.EXPECT().Stop().Run(func() { close(stopped) }).Return().Once()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().NewTicker(delay).Return(ticker).Once()

	return clock, ticks, stopped
}

func TestRunEmitsEveryPrefixAndStops(t *testing.T) {
	t.Parallel()

	clock, ticks, stopped := tickingClock(t, 20*time.Millisecond)
	frames := make(chan string, 16)
	done := make(chan error, 1)

	go func() {
		done <- Run(context.Background(), clock, "abc", 20*time.Millisecond, func(prefix string) {
			frames <- prefix
		})
	}()

	assert.Equal(t, "", <-frames)
	for _, want := range []string{"a", "ab", "abc"} {
		ticks <- time.Now()
		assert.Equal(t, want, <-frames)
	}

	require.NoError(t, <-done)
	assert.Empty(t, frames)
	<-stopped
}

func TestRunCancelledMidwayEmitsNothingMore(t *testing.T) {
	t.Parallel()

	clock, ticks, stopped := tickingClock(t, 10*time.Millisecond)
	frames := make(chan string, 16)
	done := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		done <- Run(ctx, clock, "hello", 10*time.Millisecond, func(prefix string) {
			frames <- prefix
		})
	}()

	assert.Equal(t, "", <-frames)
	ticks <- time.Now()
	assert.Equal(t, "h", <-frames)
	ticks <- time.Now()
	assert.Equal(t, "he", <-frames)

	cancel()
	ticks <- time.Now()

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Empty(t, frames)
	<-stopped
}

func TestRunEmptyTextCompletesWithoutTicker(t *testing.T) {
	t.Parallel()

	var frames []string
	err := Run(context.Background(), nil, "", time.Hour, func(prefix string) {
		frames = append(frames, prefix)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{""}, frames)
}

func TestTypewriteWritesStyledChunks(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Typewrite(context.Background(), &out, nil, "hey", 0, strings.ToUpper)

	require.NoError(t, err)
	assert.Equal(t, "HEY", out.String())
}
