// Package reveal produces the per-character "typing" effect used for terminal
// output: a text is shown as a series of growing prefixes, one character
// (grapheme cluster) at a time.
package reveal

import (
	"iter"

	"github.com/rivo/uniseg"
)

// Sequence tracks how much of a text has been revealed. For a text of N
// characters it yields exactly N+1 prefixes, starting with the empty one.
type Sequence struct {
	text  string
	ends  []int
	shown int
}

func NewSequence(text string) *Sequence {
	ends := make([]int, 0, len(text))
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		_, to := graphemes.Positions()
		ends = append(ends, to)
	}

	return &Sequence{text: text, ends: ends}
}

func (s *Sequence) Prefix() string {
	if s.shown == 0 {
		return ""
	}
	return s.text[:s.ends[s.shown-1]]
}

// Step reveals one more character. It reports false once the text is complete.
func (s *Sequence) Step() bool {
	if s.Done() {
		return false
	}
	s.shown++
	return true
}

func (s *Sequence) Done() bool {
	return s.shown >= len(s.ends)
}

// Prefixes yields every prefix of text in reveal order, without timing.
func Prefixes(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		seq := NewSequence(text)
		if !yield(seq.Prefix()) {
			return
		}
		for seq.Step() {
			if !yield(seq.Prefix()) {
				return
			}
		}
	}
}
