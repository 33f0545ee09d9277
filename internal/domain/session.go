package domain

import (
	"fmt"
	"strings"
	"time"
)

type BootState int

const (
	BootStateBooting BootState = iota
	BootStateReady
)

func (s BootState) String() string {
	switch s {
	case BootStateBooting:
		return "booting"
	case BootStateReady:
		return "ready"
	default:
		return "unknown"
	}
}

type SessionEntry struct {
	ID     string    `json:"id"`
	Input  string    `json:"input"`
	Output Output    `json:"output"`
	At     time.Time `json:"at"`
}

// SessionLog keeps entries oldest first. Append order is display order.
type SessionLog struct {
	entries []SessionEntry
}

func (l *SessionLog) Append(entry SessionEntry) {
	l.entries = append(l.entries, entry)
}

// Reset empties the log and returns the removed entries.
func (l *SessionLog) Reset() []SessionEntry {
	removed := l.entries
	l.entries = []SessionEntry{}
	return removed
}

func (l *SessionLog) Entries() []SessionEntry {
	out := make([]SessionEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

type EmptySubmissionPolicy string

const (
	EmptySubmissionRecord EmptySubmissionPolicy = "record"
	EmptySubmissionIgnore EmptySubmissionPolicy = "ignore"
)

func ParseEmptySubmissionPolicy(raw string) (EmptySubmissionPolicy, error) {
	switch policy := EmptySubmissionPolicy(strings.ToLower(strings.TrimSpace(raw))); policy {
	case "":
		return EmptySubmissionRecord, nil
	case EmptySubmissionRecord, EmptySubmissionIgnore:
		return policy, nil
	default:
		return "", fmt.Errorf("unsupported empty submission policy %q", raw)
	}
}
