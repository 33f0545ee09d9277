package application

import (
	"testing"

	"github.com/bnema/termfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(output domain.Output, kind domain.BlockKind) []string {
	var out []string
	for _, block := range output.Blocks {
		if block.Kind == kind {
			out = append(out, block.Text)
		}
	}
	return out
}

func TestInterpretNormalizesInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want domain.CommandName
	}{
		{raw: "HELP", want: domain.CommandHelp},
		{raw: "  Info\t", want: domain.CommandInfo},
		{raw: "sKiLLs", want: domain.CommandSkills},
		{raw: "   ", want: domain.CommandEmpty},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Interpret(tc.raw, testDocument()).Command)
		})
	}
}

func TestInterpretHelpListsEveryCommandInOrder(t *testing.T) {
	t.Parallel()

	result := Interpret("HELP", testDocument())

	require.Equal(t, domain.ResultOutput, result.Kind)
	require.NotEmpty(t, result.Output.Blocks)
	assert.Equal(t, domain.Block{Kind: domain.BlockHeading, Text: "Available commands:"}, result.Output.Blocks[0])

	var names []string
	for _, block := range result.Output.Blocks[1:] {
		assert.Equal(t, domain.BlockCommand, block.Kind)
		names = append(names, block.Label)
	}
	assert.Equal(t, []string{"help", "info", "skills", "projects", "contacts", "clear"}, names)
	assert.Equal(t, "Show available commands", result.Output.Blocks[1].Text)
}

func TestInterpretInfoRevealsParagraphsAndFooter(t *testing.T) {
	t.Parallel()

	result := Interpret("info", testDocument())

	require.Equal(t, domain.ResultOutput, result.Kind)
	assert.Equal(t, []string{"About"}, texts(result.Output, domain.BlockTitle))
	assert.Equal(t, []string{"First paragraph.", "Second paragraph.", "That is all."}, texts(result.Output, domain.BlockText))
	for _, block := range result.Output.Blocks[1:] {
		assert.Equal(t, InfoRevealDelay, block.RevealDelay)
	}
}

func TestInterpretSkillsPreservesCategoryAndItemOrder(t *testing.T) {
	t.Parallel()

	result := Interpret("skills", testDocument())

	assert.Equal(t, []string{"Languages", "Tools"}, texts(result.Output, domain.BlockCategory))
	assert.Equal(t, []string{"Go", "SQL", "Git"}, texts(result.Output, domain.BlockListItem))

	kinds := make([]domain.BlockKind, 0, len(result.Output.Blocks))
	for _, block := range result.Output.Blocks {
		kinds = append(kinds, block.Kind)
	}
	assert.Equal(t, []domain.BlockKind{
		domain.BlockTitle,
		domain.BlockCategory, domain.BlockListItem, domain.BlockListItem,
		domain.BlockCategory, domain.BlockListItem,
	}, kinds)
}

func TestInterpretProjectsAnimatesDescriptionsOnly(t *testing.T) {
	t.Parallel()

	result := Interpret("projects", testDocument())

	assert.Equal(t, []string{"alpha", "beta"}, texts(result.Output, domain.BlockProjectTitle))
	assert.Equal(t, []string{"Go", "Go, SQL"}, texts(result.Output, domain.BlockField))
	for _, block := range result.Output.Blocks {
		switch block.Kind {
		case domain.BlockText:
			assert.Equal(t, ProjectRevealDelay, block.RevealDelay)
		case domain.BlockField:
			assert.Equal(t, "Tech Stack:", block.Label)
			assert.Zero(t, block.RevealDelay)
		}
	}
}

func TestInterpretContactsListsPairsThenFooter(t *testing.T) {
	t.Parallel()

	result := Interpret("contacts", testDocument())
	blocks := result.Output.Blocks

	require.Len(t, blocks, 4)
	assert.Equal(t, "Contacts", blocks[0].Text)
	assert.Equal(t, domain.Block{Kind: domain.BlockField, Label: "Email:", Text: "me@example.com", SpaceBefore: true}, blocks[1])
	assert.Equal(t, domain.Block{Kind: domain.BlockField, Label: "GitHub:", Text: "gh/me"}, blocks[2])
	assert.Equal(t, domain.BlockFooter, blocks[3].Kind)
	assert.Equal(t, "Say hi.", blocks[3].Text)
}

func TestInterpretClearAndEmpty(t *testing.T) {
	t.Parallel()

	clearResult := Interpret(" Clear ", testDocument())
	assert.Equal(t, domain.ResultClear, clearResult.Kind)
	assert.True(t, clearResult.Output.Empty())

	emptyResult := Interpret("", testDocument())
	assert.Equal(t, domain.ResultEmpty, emptyResult.Kind)
	assert.True(t, emptyResult.Output.Empty())
}

func TestInterpretUnknownQuotesInputVerbatim(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"xyz", "help me", "HeLp!", "rm -rf /", "projects2"} {
		raw := raw
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			result := Interpret(raw, testDocument())

			require.True(t, result.Unknown())
			require.Len(t, result.Output.Blocks, 1)
			assert.Equal(t, domain.BlockError, result.Output.Blocks[0].Kind)
			assert.Contains(t, result.Output.Blocks[0].Text, raw)
			assert.Contains(t, result.Output.Blocks[0].Text, "Type 'help'")
		})
	}
}

func TestInterpretDegradesWhenSectionAbsent(t *testing.T) {
	t.Parallel()

	doc := testDocument()
	doc.Skills = domain.Absent[domain.Skills](domain.ErrSectionInvalid)

	result := Interpret("skills", doc)

	assert.Equal(t, domain.ResultOutput, result.Kind)
	assert.Equal(t, domain.SectionSkills, result.Degraded)
	assert.True(t, result.Output.Empty())

	other := Interpret("contacts", doc)
	assert.Empty(t, other.Degraded)
	assert.False(t, other.Output.Empty())
}

func TestBootOutputOrdersHeaderSequenceReady(t *testing.T) {
	t.Parallel()

	output := BootOutput(testDocument())

	require.Len(t, output.Blocks, 4)
	assert.Equal(t, "BIOS v1", output.Blocks[0].Text)
	assert.Equal(t, BootHeaderRevealDelay, output.Blocks[0].RevealDelay)
	assert.Equal(t, BootSequenceRevealDelay, output.Blocks[1].RevealDelay)
	assert.Equal(t, BootSequenceRevealDelay, output.Blocks[2].RevealDelay)
	assert.Equal(t, domain.BlockBootReady, output.Blocks[3].Kind)
	assert.Equal(t, BootReadyRevealDelay, output.Blocks[3].RevealDelay)

	doc := testDocument()
	doc.Boot = domain.Absent[domain.Boot](nil)
	assert.True(t, BootOutput(doc).Empty())
}
