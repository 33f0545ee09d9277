package reveal

import (
	"context"
	"io"
	"time"

	"github.com/bnema/termfolio/internal/ports"
)

// Run reveals text on the caller's goroutine, calling emit with every prefix
// including the empty one. It returns ctx.Err() when cancelled; emit is never
// called after the context is done.
func Run(ctx context.Context, clock ports.Clock, text string, delay time.Duration, emit func(prefix string)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if delay <= 0 {
		for prefix := range Prefixes(text) {
			emit(prefix)
		}
		return nil
	}

	seq := NewSequence(text)
	emit(seq.Prefix())
	if seq.Done() {
		return nil
	}

	if clock == nil {
		clock = ports.SystemClock{}
	}
	ticker := clock.NewTicker(delay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			if err := ctx.Err(); err != nil {
				return err
			}
			seq.Step()
			emit(seq.Prefix())
			if seq.Done() {
				return nil
			}
		}
	}
}

// Typewrite writes text to w one character per tick. style wraps every
// written chunk and may be nil.
func Typewrite(ctx context.Context, w io.Writer, clock ports.Clock, text string, delay time.Duration, style func(string) string) error {
	written := 0
	var writeErr error

	err := Run(ctx, clock, text, delay, func(prefix string) {
		if writeErr != nil || len(prefix) == written {
			return
		}
		chunk := prefix[written:]
		written = len(prefix)
		if style != nil {
			chunk = style(chunk)
		}
		_, writeErr = io.WriteString(w, chunk)
	})
	if writeErr != nil {
		return writeErr
	}
	return err
}
