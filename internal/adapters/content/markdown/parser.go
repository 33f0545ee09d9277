package markdown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/bnema/termfolio/internal/domain"
	"github.com/bnema/termfolio/internal/ports"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	sectionHeadingLevel = 2
	sectionFenceTag     = "json"
)

type Parser struct {
	logger   *slog.Logger
	markdown goldmark.Markdown
}

var _ ports.ContentParser = (*Parser)(nil)

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Parser{logger: logger, markdown: goldmark.New()}
}

func (p *Parser) Parse(raw string) domain.ContentDocument {
	meta, body := p.frontMatter(raw)
	bodies := p.index(body)

	return domain.ContentDocument{
		Meta:     meta,
		Welcome:  decodeSection[welcomeSchema, domain.Welcome](p, bodies, domain.SectionWelcome),
		Commands: decodeSection[commandsSchema, domain.CommandList](p, bodies, domain.SectionCommands),
		Info:     decodeSection[infoSchema, domain.Info](p, bodies, domain.SectionInfo),
		Skills:   decodeSection[skillsSchema, domain.Skills](p, bodies, domain.SectionSkills),
		Projects: decodeSection[projectsSchema, domain.Projects](p, bodies, domain.SectionProjects),
		Contacts: decodeSection[contactsSchema, domain.Contacts](p, bodies, domain.SectionContacts),
		Boot:     decodeSection[bootSchema, domain.Boot](p, bodies, domain.SectionBoot),
	}
}

// frontMatter splits an optional YAML, TOML or JSON header off the document.
// A header that fails to decode is logged and the document is used as is.
func (p *Parser) frontMatter(raw string) (domain.Meta, []byte) {
	var schema metaSchema
	body, err := frontmatter.Parse(strings.NewReader(raw), &schema)
	if err != nil {
		p.logger.Warn("parse content front matter", "error", err)
		return domain.Meta{}, []byte(raw)
	}

	return schema.toDomain(), body
}

// index maps every "## <Name>" heading that is directly followed by a json
// fenced block to that block's trimmed body. Headings compare
// case-insensitively and the first occurrence of a name wins, even when its
// block is empty.
func (p *Parser) index(source []byte) map[string]string {
	bodies := make(map[string]string)
	root := p.markdown.Parser().Parse(text.NewReader(source))

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		heading, ok := node.(*ast.Heading)
		if !ok || heading.Level != sectionHeadingLevel {
			continue
		}

		fence, ok := heading.NextSibling().(*ast.FencedCodeBlock)
		if !ok || !strings.EqualFold(string(fence.Language(source)), sectionFenceTag) {
			continue
		}

		key := strings.ToLower(headingText(heading, source))
		if _, seen := bodies[key]; seen {
			continue
		}

		bodies[key] = strings.TrimSpace(blockText(fence, source))
	}

	return bodies
}

func sectionKey(name domain.SectionName) string {
	return strings.ToLower(string(name))
}

func headingText(heading *ast.Heading, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

func blockText(block ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(source))
	}
	return buf.String()
}

type converter[T any] interface {
	toDomain() (T, error)
}

func decodeSection[S converter[T], T any](p *Parser, bodies map[string]string, name domain.SectionName) domain.Section[T] {
	body, ok := bodies[sectionKey(name)]
	if !ok || body == "" {
		p.logger.Warn("content section not found or invalid format", "section", name)
		return domain.Absent[T](&domain.SectionError{Section: name, Err: domain.ErrSectionMissing})
	}

	var schema S
	if err := json.Unmarshal([]byte(body), &schema); err != nil {
		p.logger.Warn("parse content section json", "section", name, "error", err)
		return domain.Absent[T](&domain.SectionError{
			Section: name,
			Err:     fmt.Errorf("%w: %v", domain.ErrSectionInvalid, err),
		})
	}

	value, err := schema.toDomain()
	if err != nil {
		p.logger.Warn("validate content section", "section", name, "error", err)
		return domain.Absent[T](&domain.SectionError{Section: name, Err: err})
	}

	return domain.Present(value)
}
