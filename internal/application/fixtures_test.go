package application

import (
	"github.com/bnema/termfolio/internal/domain"
)

func testDocument() domain.ContentDocument {
	return domain.ContentDocument{
		Welcome: domain.Present(domain.Welcome{
			WelcomeText: "Welcome aboard.",
			HelpText:    "Type 'help' to begin.",
		}),
		Commands: domain.Present(domain.CommandList{Commands: []domain.CommandEntry{
			{Name: "help", Description: "Show available commands"},
			{Name: "info", Description: "About me"},
			{Name: "skills", Description: "What I know"},
			{Name: "projects", Description: "What I built"},
			{Name: "contacts", Description: "How to reach me"},
			{Name: "clear", Description: "Clear the terminal"},
		}}),
		Info: domain.Present(domain.Info{
			Title:      "About",
			Paragraphs: []string{"First paragraph.", "Second paragraph."},
			Footer:     "That is all.",
		}),
		Skills: domain.Present(domain.Skills{
			Title: "Skills",
			Categories: []domain.SkillCategory{
				{Name: "Languages", Items: []string{"Go", "SQL"}},
				{Name: "Tools", Items: []string{"Git"}},
			},
		}),
		Projects: domain.Present(domain.Projects{
			Title: "Projects",
			Projects: []domain.Project{
				{Title: "alpha", Description: "First project.", TechStack: "Go"},
				{Title: "beta", Description: "Second project.", TechStack: "Go, SQL"},
			},
		}),
		Contacts: domain.Present(domain.Contacts{
			Title:  "Contacts",
			Items:  []domain.ContactItem{{Label: "Email", Value: "me@example.com"}, {Label: "GitHub", Value: "gh/me"}},
			Footer: "Say hi.",
		}),
		Boot: domain.Present(domain.Boot{
			Header:   []string{"BIOS v1"},
			Sequence: []string{"Memory OK", "Disk OK"},
			Ready:    "Ready.",
		}),
	}
}
