package reveal

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixesGrowOneCharacterAtATime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{""}},
		{name: "ascii", text: "abc", want: []string{"", "a", "ab", "abc"}},
		{name: "accents", text: "héé", want: []string{"", "h", "hé", "héé"}},
		{name: "emoji cluster", text: "a👍🏽b", want: []string{"", "a", "a👍🏽", "a👍🏽b"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := slices.Collect(Prefixes(tc.text))
			assert.Equal(t, tc.want, got)
			for i := 1; i < len(got); i++ {
				assert.True(t, strings.HasPrefix(got[i], got[i-1]))
				assert.NotEqual(t, got[i], got[i-1])
			}
		})
	}
}

func TestSequenceStopsAtFullText(t *testing.T) {
	t.Parallel()

	seq := NewSequence("go")
	assert.False(t, seq.Done())
	assert.True(t, seq.Step())
	assert.True(t, seq.Step())
	assert.True(t, seq.Done())
	assert.False(t, seq.Step())
	assert.Equal(t, "go", seq.Prefix())
}

func TestPrefixesStopsWhenConsumerBreaks(t *testing.T) {
	t.Parallel()

	var seen []string
	for prefix := range Prefixes("hello") {
		seen = append(seen, prefix)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"", "h"}, seen)
}
