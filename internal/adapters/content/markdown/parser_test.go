package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/bnema/termfolio/internal/adapters/content/embedded"
	"github.com/bnema/termfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmbeddedDocumentIsUsable(t *testing.T) {
	t.Parallel()

	doc := NewParser(nil).Parse(embedded.Document())

	assert.True(t, doc.Usable())
	assert.Empty(t, doc.Missing())

	commands, ok := doc.Commands.Get()
	require.True(t, ok)
	names := make([]string, 0, len(commands.Commands))
	for _, command := range commands.Commands {
		names = append(names, command.Name)
	}
	assert.Equal(t, []string{"help", "info", "skills", "projects", "contacts", "clear"}, names)

	skills, ok := doc.Skills.Get()
	require.True(t, ok)
	require.Len(t, skills.Categories, 3)
	assert.Equal(t, "Languages", skills.Categories[0].Name)
	assert.Equal(t, []string{"Go", "TypeScript", "SQL"}, skills.Categories[0].Items)
}

func TestParseSectionNamesAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"## welcome",
		"```json",
		`{"welcomeText": "hi", "helpText": "type help"}`,
		"```",
	}, "\n")

	doc := NewParser(nil).Parse(raw)

	welcome, ok := doc.Welcome.Get()
	require.True(t, ok)
	assert.Equal(t, domain.Welcome{WelcomeText: "hi", HelpText: "type help"}, welcome)
}

func TestParseUsesFirstMatchPerSection(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"## Boot",
		"```json",
		`{"header": ["first"], "sequence": [], "ready": "go"}`,
		"```",
		"## Boot",
		"```json",
		`{"header": ["second"], "sequence": [], "ready": "go"}`,
		"```",
	}, "\n")

	boot, ok := NewParser(nil).Parse(raw).Boot.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"first"}, boot.Header)
}

func TestParseIsolatesBrokenSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		info    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "malformed json",
			info:    "## Info\n```json\n{\"title\": \n```",
			wantErr: domain.ErrSectionInvalid,
		},
		{
			name:    "missing field",
			info:    "## Info\n```json\n{\"title\": \"About\", \"paragraphs\": []}\n```",
			wantErr: domain.ErrSectionInvalid,
			wantMsg: `missing field "footer"`,
		},
		{
			name:    "null field",
			info:    "## Info\n```json\n{\"title\": null, \"paragraphs\": [], \"footer\": \"f\"}\n```",
			wantErr: domain.ErrSectionInvalid,
			wantMsg: `missing field "title"`,
		},
		{
			name:    "missing section",
			info:    "",
			wantErr: domain.ErrSectionMissing,
		},
		{
			name:    "wrong fence tag",
			info:    "## Info\n```yaml\ntitle: About\n```",
			wantErr: domain.ErrSectionMissing,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			raw := tc.info + "\n## Contacts\n```json\n{\"title\": \"C\", \"items\": [{\"label\": \"Email\", \"value\": \"a@b.c\"}], \"footer\": \"bye\"}\n```"
			doc := NewParser(nil).Parse(raw)

			assert.False(t, doc.Info.Present())
			reason := doc.Info.Reason()
			require.Error(t, reason)
			assert.True(t, errors.Is(reason, tc.wantErr))
			if tc.wantMsg != "" {
				assert.ErrorContains(t, reason, tc.wantMsg)
			}

			var sectionErr *domain.SectionError
			require.ErrorAs(t, reason, &sectionErr)
			assert.Equal(t, domain.SectionInfo, sectionErr.Section)

			contacts, ok := doc.Contacts.Get()
			require.True(t, ok)
			assert.Equal(t, []domain.ContactItem{{Label: "Email", Value: "a@b.c"}}, contacts.Items)
			assert.False(t, doc.Usable())
		})
	}
}

func TestParseRejectsIncompleteListEntries(t *testing.T) {
	t.Parallel()

	raw := "## Projects\n```json\n{\"title\": \"P\", \"projects\": [{\"title\": \"a\", \"description\": \"d\"}]}\n```"

	doc := NewParser(nil).Parse(raw)

	assert.False(t, doc.Projects.Present())
	assert.ErrorContains(t, doc.Projects.Reason(), `projects[0].techStack`)
}

func TestMissingListsAbsentSectionsInDocumentOrder(t *testing.T) {
	t.Parallel()

	doc := NewParser(nil).Parse("nothing to see here")

	assert.Equal(t, domain.SectionNames, doc.Missing())
	for _, status := range doc.Statuses() {
		assert.False(t, status.Present)
		assert.ErrorIs(t, status.Reason, domain.ErrSectionMissing)
	}
}

func TestParseSkipsHeadingsWithoutJSONFence(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"# Contacts",
		"```json",
		`{"title": "top level"}`,
		"```",
		"## Contacts",
		"Some prose first.",
		"```json",
		`{"title": "after prose"}`,
		"```",
		"## CONTACTS",
		"",
		"```JSON",
		`{"title": "C", "items": [{"label": "Email:", "value": "me@example.com"}], "footer": "bye"}`,
		"```",
	}, "\n")

	doc := NewParser(nil).Parse(raw)

	contacts, ok := doc.Contacts.Get()
	require.True(t, ok)
	assert.Equal(t, "C", contacts.Title)
	assert.ErrorIs(t, doc.Info.Reason(), domain.ErrSectionMissing)
}

func TestParseEmptyFirstFenceLeavesSectionMissing(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"## Info",
		"```json",
		"   ",
		"```",
		"## Info",
		"```json",
		`{"title": "late", "paragraphs": ["p"], "footer": "f"}`,
		"```",
	}, "\n")

	doc := NewParser(nil).Parse(raw)

	assert.False(t, doc.Info.Present())
	assert.ErrorIs(t, doc.Info.Reason(), domain.ErrSectionMissing)
}

func TestParseReadsFrontMatter(t *testing.T) {
	t.Parallel()

	welcome := strings.Join([]string{
		"## Welcome",
		"```json",
		`{"welcomeText": "hi", "helpText": "type help"}`,
		"```",
	}, "\n")

	tests := []struct {
		name   string
		header string
	}{
		{name: "yaml", header: "---\ntitle: guest@box\nprompt: \">\"\n---\n"},
		{name: "toml", header: "+++\ntitle = \"guest@box\"\nprompt = \">\"\n+++\n"},
		{name: "json", header: ";;;\n{\"title\": \"guest@box\", \"prompt\": \">\"}\n;;;\n"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := NewParser(nil).Parse(tc.header + welcome)

			assert.Equal(t, domain.Meta{Title: "guest@box", Prompt: ">"}, doc.Meta)
			assert.True(t, doc.Welcome.Present())
		})
	}
}

func TestParseWithoutFrontMatterLeavesMetaEmpty(t *testing.T) {
	t.Parallel()

	doc := NewParser(nil).Parse(embedded.Document())

	assert.Equal(t, domain.Meta{}, doc.Meta)
}

func TestParseInvalidFrontMatterKeepsSections(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"---",
		"title: [unterminated",
		"---",
		"",
		"## Welcome",
		"```json",
		`{"welcomeText": "hi", "helpText": "type help"}`,
		"```",
	}, "\n")

	doc := NewParser(nil).Parse(raw)

	assert.Equal(t, domain.Meta{}, doc.Meta)
	assert.True(t, doc.Welcome.Present())
}
