package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/termfolio/internal/domain"
)

const (
	WelcomeRevealDelay      = 30 * time.Millisecond
	InfoRevealDelay         = 15 * time.Millisecond
	ProjectRevealDelay      = 10 * time.Millisecond
	BootHeaderRevealDelay   = 50 * time.Millisecond
	BootSequenceRevealDelay = 20 * time.Millisecond
	BootReadyRevealDelay    = 50 * time.Millisecond
)

const (
	helpHeading    = "Available commands:"
	techStackLabel = "Tech Stack:"
)

// Normalize trims and lower-cases raw input.
func Normalize(raw string) domain.CommandName {
	return domain.CommandName(strings.ToLower(strings.TrimSpace(raw)))
}

// Interpret maps raw input to its output. Only exact names are recognized;
// everything else yields a not-found response quoting the input.
func Interpret(raw string, doc domain.ContentDocument) domain.CommandResult {
	command := Normalize(raw)

	switch command {
	case domain.CommandHelp:
		return sectionResult(command, domain.SectionCommands, doc.Commands, helpOutput)
	case domain.CommandInfo:
		return sectionResult(command, domain.SectionInfo, doc.Info, infoOutput)
	case domain.CommandSkills:
		return sectionResult(command, domain.SectionSkills, doc.Skills, skillsOutput)
	case domain.CommandProjects:
		return sectionResult(command, domain.SectionProjects, doc.Projects, projectsOutput)
	case domain.CommandContacts:
		return sectionResult(command, domain.SectionContacts, doc.Contacts, contactsOutput)
	case domain.CommandClear:
		return domain.CommandResult{Command: command, Kind: domain.ResultClear}
	case domain.CommandEmpty:
		return domain.CommandResult{Command: command, Kind: domain.ResultEmpty}
	default:
		return domain.CommandResult{
			Command: command,
			Kind:    domain.ResultUnknown,
			Output:  NotFoundOutput(raw),
		}
	}
}

func NotFoundOutput(raw string) domain.Output {
	return domain.Output{Blocks: []domain.Block{{
		Kind: domain.BlockError,
		Text: fmt.Sprintf("Command not found: %s. Type 'help' to see available commands.", raw),
	}}}
}

func sectionResult[T any](command domain.CommandName, name domain.SectionName, section domain.Section[T], render func(T) domain.Output) domain.CommandResult {
	value, ok := section.Get()
	if !ok {
		return domain.CommandResult{Command: command, Kind: domain.ResultOutput, Degraded: name}
	}

	return domain.CommandResult{Command: command, Kind: domain.ResultOutput, Output: render(value)}
}

func helpOutput(list domain.CommandList) domain.Output {
	blocks := make([]domain.Block, 0, len(list.Commands)+1)
	blocks = append(blocks, domain.Block{Kind: domain.BlockHeading, Text: helpHeading})
	for _, command := range list.Commands {
		blocks = append(blocks, domain.Block{
			Kind:  domain.BlockCommand,
			Label: command.Name,
			Text:  command.Description,
		})
	}
	return domain.Output{Blocks: blocks}
}

func infoOutput(info domain.Info) domain.Output {
	blocks := make([]domain.Block, 0, len(info.Paragraphs)+2)
	blocks = append(blocks, domain.Block{Kind: domain.BlockTitle, Text: info.Title})
	for i, paragraph := range info.Paragraphs {
		blocks = append(blocks, domain.Block{
			Kind:        domain.BlockText,
			Text:        paragraph,
			SpaceBefore: i > 0,
			RevealDelay: InfoRevealDelay,
		})
	}
	blocks = append(blocks, domain.Block{
		Kind:        domain.BlockText,
		Text:        info.Footer,
		SpaceBefore: true,
		RevealDelay: InfoRevealDelay,
	})
	return domain.Output{Blocks: blocks}
}

func skillsOutput(skills domain.Skills) domain.Output {
	blocks := []domain.Block{{Kind: domain.BlockTitle, Text: skills.Title}}
	for i, category := range skills.Categories {
		blocks = append(blocks, domain.Block{
			Kind:        domain.BlockCategory,
			Text:        category.Name,
			SpaceBefore: i > 0,
		})
		for _, item := range category.Items {
			blocks = append(blocks, domain.Block{Kind: domain.BlockListItem, Text: item, Indent: 1})
		}
	}
	return domain.Output{Blocks: blocks}
}

func projectsOutput(projects domain.Projects) domain.Output {
	blocks := []domain.Block{{Kind: domain.BlockTitle, Text: projects.Title}}
	for _, project := range projects.Projects {
		blocks = append(blocks,
			domain.Block{Kind: domain.BlockProjectTitle, Text: project.Title, SpaceBefore: true},
			domain.Block{Kind: domain.BlockText, Text: project.Description, Indent: 1, RevealDelay: ProjectRevealDelay},
			domain.Block{Kind: domain.BlockField, Label: techStackLabel, Text: project.TechStack, Indent: 1},
		)
	}
	return domain.Output{Blocks: blocks}
}

func contactsOutput(contacts domain.Contacts) domain.Output {
	blocks := make([]domain.Block, 0, len(contacts.Items)+2)
	blocks = append(blocks, domain.Block{Kind: domain.BlockTitle, Text: contacts.Title})
	for i, item := range contacts.Items {
		blocks = append(blocks, domain.Block{
			Kind:        domain.BlockField,
			Label:       item.Label + ":",
			Text:        item.Value,
			SpaceBefore: i == 0,
		})
	}
	blocks = append(blocks, domain.Block{Kind: domain.BlockFooter, Text: contacts.Footer, SpaceBefore: true})
	return domain.Output{Blocks: blocks}
}

// WelcomeOutput is the first entry of every session.
func WelcomeOutput(doc domain.ContentDocument) domain.Output {
	welcome, ok := doc.Welcome.Get()
	if !ok {
		return domain.Output{}
	}

	return domain.Output{Blocks: []domain.Block{
		{Kind: domain.BlockText, Text: welcome.WelcomeText, RevealDelay: WelcomeRevealDelay},
		{Kind: domain.BlockText, Text: welcome.HelpText, SpaceBefore: true, RevealDelay: WelcomeRevealDelay},
	}}
}

// BootOutput is the canned screen shown while booting.
func BootOutput(doc domain.ContentDocument) domain.Output {
	boot, ok := doc.Boot.Get()
	if !ok {
		return domain.Output{}
	}

	blocks := make([]domain.Block, 0, len(boot.Header)+len(boot.Sequence)+1)
	for _, line := range boot.Header {
		blocks = append(blocks, domain.Block{Kind: domain.BlockBootLine, Text: line, RevealDelay: BootHeaderRevealDelay})
	}
	for i, step := range boot.Sequence {
		blocks = append(blocks, domain.Block{
			Kind:        domain.BlockBootLine,
			Text:        step,
			SpaceBefore: i == 0,
			RevealDelay: BootSequenceRevealDelay,
		})
	}
	blocks = append(blocks, domain.Block{
		Kind:        domain.BlockBootReady,
		Text:        boot.Ready,
		SpaceBefore: true,
		RevealDelay: BootReadyRevealDelay,
	})

	return domain.Output{Blocks: blocks}
}
