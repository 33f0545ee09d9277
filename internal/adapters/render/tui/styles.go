package tui

import (
	"github.com/bnema/termfolio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	titleBar     lipgloss.Style
	prompt       lipgloss.Style
	input        lipgloss.Style
	title        lipgloss.Style
	heading      lipgloss.Style
	text         lipgloss.Style
	command      lipgloss.Style
	category     lipgloss.Style
	listItem     lipgloss.Style
	projectTitle lipgloss.Style
	fieldLabel   lipgloss.Style
	footer       lipgloss.Style
	err          lipgloss.Style
	bootLine     lipgloss.Style
	bootReady    lipgloss.Style
	loading      lipgloss.Style
	spinner      lipgloss.Style
}

func newStyles() styles {
	return styles{
		titleBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1),
		prompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		input:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		heading:      lipgloss.NewStyle().Bold(true),
		text:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		command:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		category:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("46")),
		listItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		projectTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		fieldLabel:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		footer:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("46")),
		err:          lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		bootLine:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		bootReady:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		loading:      lipgloss.NewStyle().Faint(true),
		spinner:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	}
}

func (s styles) forKind(kind domain.BlockKind) lipgloss.Style {
	switch kind {
	case domain.BlockTitle:
		return s.title
	case domain.BlockHeading:
		return s.heading
	case domain.BlockCategory:
		return s.category
	case domain.BlockProjectTitle:
		return s.projectTitle
	case domain.BlockFooter:
		return s.footer
	case domain.BlockError:
		return s.err
	case domain.BlockBootLine:
		return s.bootLine
	case domain.BlockBootReady:
		return s.bootReady
	default:
		return s.text
	}
}
