package markdown

import (
	"fmt"
	"strings"

	"github.com/bnema/termfolio/internal/domain"
)

type metaSchema struct {
	Title  string `json:"title" yaml:"title" toml:"title"`
	Prompt string `json:"prompt" yaml:"prompt" toml:"prompt"`
}

func (s metaSchema) toDomain() domain.Meta {
	return domain.Meta{
		Title:  strings.TrimSpace(s.Title),
		Prompt: strings.TrimSpace(s.Prompt),
	}
}

// Pointer fields tell a missing key apart from an empty value.

type welcomeSchema struct {
	WelcomeText *string `json:"welcomeText"`
	HelpText    *string `json:"helpText"`
}

type commandSchema struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type commandsSchema struct {
	Commands *[]commandSchema `json:"commands"`
}

type infoSchema struct {
	Title      *string   `json:"title"`
	Paragraphs *[]string `json:"paragraphs"`
	Footer     *string   `json:"footer"`
}

type skillCategorySchema struct {
	Name  *string   `json:"name"`
	Items *[]string `json:"items"`
}

type skillsSchema struct {
	Title      *string                `json:"title"`
	Categories *[]skillCategorySchema `json:"categories"`
}

type projectSchema struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TechStack   *string `json:"techStack"`
}

type projectsSchema struct {
	Title    *string          `json:"title"`
	Projects *[]projectSchema `json:"projects"`
}

type contactItemSchema struct {
	Label *string `json:"label"`
	Value *string `json:"value"`
}

type contactsSchema struct {
	Title  *string              `json:"title"`
	Items  *[]contactItemSchema `json:"items"`
	Footer *string              `json:"footer"`
}

type bootSchema struct {
	Header   *[]string `json:"header"`
	Sequence *[]string `json:"sequence"`
	Ready    *string   `json:"ready"`
}

func missingField(field string) error {
	return fmt.Errorf("%w: missing field %q", domain.ErrSectionInvalid, field)
}

func str(field string, value *string) (string, error) {
	if value == nil {
		return "", missingField(field)
	}
	return *value, nil
}

func strs(field string, value *[]string) ([]string, error) {
	if value == nil {
		return nil, missingField(field)
	}
	out := make([]string, len(*value))
	copy(out, *value)
	return out, nil
}

func (s welcomeSchema) toDomain() (domain.Welcome, error) {
	welcome, err := str("welcomeText", s.WelcomeText)
	if err != nil {
		return domain.Welcome{}, err
	}
	help, err := str("helpText", s.HelpText)
	if err != nil {
		return domain.Welcome{}, err
	}
	return domain.Welcome{WelcomeText: welcome, HelpText: help}, nil
}

func (s commandsSchema) toDomain() (domain.CommandList, error) {
	if s.Commands == nil {
		return domain.CommandList{}, missingField("commands")
	}

	commands := make([]domain.CommandEntry, 0, len(*s.Commands))
	for i, entry := range *s.Commands {
		name, err := str(fmt.Sprintf("commands[%d].name", i), entry.Name)
		if err != nil {
			return domain.CommandList{}, err
		}
		description, err := str(fmt.Sprintf("commands[%d].description", i), entry.Description)
		if err != nil {
			return domain.CommandList{}, err
		}
		commands = append(commands, domain.CommandEntry{Name: name, Description: description})
	}

	return domain.CommandList{Commands: commands}, nil
}

func (s infoSchema) toDomain() (domain.Info, error) {
	title, err := str("title", s.Title)
	if err != nil {
		return domain.Info{}, err
	}
	paragraphs, err := strs("paragraphs", s.Paragraphs)
	if err != nil {
		return domain.Info{}, err
	}
	footer, err := str("footer", s.Footer)
	if err != nil {
		return domain.Info{}, err
	}
	return domain.Info{Title: title, Paragraphs: paragraphs, Footer: footer}, nil
}

func (s skillsSchema) toDomain() (domain.Skills, error) {
	title, err := str("title", s.Title)
	if err != nil {
		return domain.Skills{}, err
	}
	if s.Categories == nil {
		return domain.Skills{}, missingField("categories")
	}

	categories := make([]domain.SkillCategory, 0, len(*s.Categories))
	for i, entry := range *s.Categories {
		name, err := str(fmt.Sprintf("categories[%d].name", i), entry.Name)
		if err != nil {
			return domain.Skills{}, err
		}
		items, err := strs(fmt.Sprintf("categories[%d].items", i), entry.Items)
		if err != nil {
			return domain.Skills{}, err
		}
		categories = append(categories, domain.SkillCategory{Name: name, Items: items})
	}

	return domain.Skills{Title: title, Categories: categories}, nil
}

func (s projectsSchema) toDomain() (domain.Projects, error) {
	title, err := str("title", s.Title)
	if err != nil {
		return domain.Projects{}, err
	}
	if s.Projects == nil {
		return domain.Projects{}, missingField("projects")
	}

	projects := make([]domain.Project, 0, len(*s.Projects))
	for i, entry := range *s.Projects {
		projectTitle, err := str(fmt.Sprintf("projects[%d].title", i), entry.Title)
		if err != nil {
			return domain.Projects{}, err
		}
		description, err := str(fmt.Sprintf("projects[%d].description", i), entry.Description)
		if err != nil {
			return domain.Projects{}, err
		}
		techStack, err := str(fmt.Sprintf("projects[%d].techStack", i), entry.TechStack)
		if err != nil {
			return domain.Projects{}, err
		}
		projects = append(projects, domain.Project{Title: projectTitle, Description: description, TechStack: techStack})
	}

	return domain.Projects{Title: title, Projects: projects}, nil
}

func (s contactsSchema) toDomain() (domain.Contacts, error) {
	title, err := str("title", s.Title)
	if err != nil {
		return domain.Contacts{}, err
	}
	if s.Items == nil {
		return domain.Contacts{}, missingField("items")
	}

	items := make([]domain.ContactItem, 0, len(*s.Items))
	for i, entry := range *s.Items {
		label, err := str(fmt.Sprintf("items[%d].label", i), entry.Label)
		if err != nil {
			return domain.Contacts{}, err
		}
		value, err := str(fmt.Sprintf("items[%d].value", i), entry.Value)
		if err != nil {
			return domain.Contacts{}, err
		}
		items = append(items, domain.ContactItem{Label: label, Value: value})
	}

	footer, err := str("footer", s.Footer)
	if err != nil {
		return domain.Contacts{}, err
	}

	return domain.Contacts{Title: title, Items: items, Footer: footer}, nil
}

func (s bootSchema) toDomain() (domain.Boot, error) {
	header, err := strs("header", s.Header)
	if err != nil {
		return domain.Boot{}, err
	}
	sequence, err := strs("sequence", s.Sequence)
	if err != nil {
		return domain.Boot{}, err
	}
	ready, err := str("ready", s.Ready)
	if err != nil {
		return domain.Boot{}, err
	}
	return domain.Boot{Header: header, Sequence: sequence, Ready: ready}, nil
}
