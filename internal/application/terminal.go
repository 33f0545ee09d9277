package application

import (
	"log/slog"

	"github.com/bnema/termfolio/internal/domain"
	"github.com/bnema/termfolio/internal/ports"
	"github.com/google/uuid"
)

type TerminalOptions struct {
	EmptySubmission domain.EmptySubmissionPolicy
	Clock           ports.Clock
	NewID           func() string
	Logger          *slog.Logger
}

// SubmitResult describes what a submission did to the log.
type SubmitResult struct {
	Result domain.CommandResult
	// Entry is nil when nothing was appended.
	Entry *domain.SessionEntry
	// Removed holds the IDs of entries dropped by clear.
	Removed []string
}

func (r SubmitResult) Cleared() bool {
	return r.Result.Kind == domain.ResultClear
}

// Terminal is one interactive session over an injected content document. It
// is driven from a single goroutine and is not safe for concurrent use.
type Terminal struct {
	content domain.ContentDocument
	log     domain.SessionLog
	state   domain.BootState
	policy  domain.EmptySubmissionPolicy
	clock   ports.Clock
	newID   func() string
	logger  *slog.Logger
}

func NewTerminal(content domain.ContentDocument, opts TerminalOptions) *Terminal {
	if opts.EmptySubmission == "" {
		opts.EmptySubmission = domain.EmptySubmissionRecord
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Terminal{
		content: content,
		state:   domain.BootStateBooting,
		policy:  opts.EmptySubmission,
		clock:   opts.Clock,
		newID:   opts.NewID,
		logger:  opts.Logger,
	}
}

func (t *Terminal) State() domain.BootState {
	return t.state
}

func (t *Terminal) BootScreen() domain.Output {
	return BootOutput(t.content)
}

// CompleteBoot moves the session to Ready and seeds the welcome entry. Only
// the first call has an effect.
func (t *Terminal) CompleteBoot() (domain.SessionEntry, bool) {
	if t.state == domain.BootStateReady {
		return domain.SessionEntry{}, false
	}

	t.state = domain.BootStateReady
	entry := t.newEntry("", WelcomeOutput(t.content))
	t.log.Append(entry)
	t.logger.Debug("terminal ready", "entry_id", entry.ID)

	return entry, true
}

func (t *Terminal) Submit(raw string) (SubmitResult, error) {
	if t.State() != domain.BootStateReady {
		return SubmitResult{}, domain.ErrBooting
	}

	result := Interpret(raw, t.content)
	if result.Unknown() {
		t.logger.Debug("unknown command", "input", raw)
	}
	if result.Degraded != "" {
		t.logger.Warn("command rendered without content", "command", result.Command, "section", result.Degraded)
	}

	switch result.Kind {
	case domain.ResultClear:
		removed := t.log.Reset()
		ids := make([]string, 0, len(removed))
		for _, entry := range removed {
			ids = append(ids, entry.ID)
		}
		return SubmitResult{Result: result, Removed: ids}, nil
	case domain.ResultEmpty:
		if t.policy == domain.EmptySubmissionIgnore {
			return SubmitResult{Result: result}, nil
		}
	}

	entry := t.newEntry(raw, result.Output)
	t.log.Append(entry)

	return SubmitResult{Result: result, Entry: &entry}, nil
}

// Entries returns a copy of the log, oldest first.
func (t *Terminal) Entries() []domain.SessionEntry {
	return t.log.Entries()
}

func (t *Terminal) newEntry(input string, output domain.Output) domain.SessionEntry {
	return domain.SessionEntry{
		ID:     t.newID(),
		Input:  input,
		Output: output,
		At:     t.clock.Now(),
	}
}
