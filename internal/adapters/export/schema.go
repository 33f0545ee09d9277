package export

import "github.com/bnema/termfolio/internal/domain"

const currentSchemaVersion = 1

type documentSchema struct {
	Version  int             `json:"version" toml:"version" yaml:"version"`
	Missing  []missingSchema `json:"missing,omitempty" toml:"missing,omitempty" yaml:"missing,omitempty"`
	Meta     *metaSchema     `json:"meta,omitempty" toml:"meta,omitempty" yaml:"meta,omitempty"`
	Welcome  *welcomeSchema  `json:"welcome,omitempty" toml:"welcome,omitempty" yaml:"welcome,omitempty"`
	Commands *commandsSchema `json:"commands,omitempty" toml:"commands,omitempty" yaml:"commands,omitempty"`
	Info     *infoSchema     `json:"info,omitempty" toml:"info,omitempty" yaml:"info,omitempty"`
	Skills   *skillsSchema   `json:"skills,omitempty" toml:"skills,omitempty" yaml:"skills,omitempty"`
	Projects *projectsSchema `json:"projects,omitempty" toml:"projects,omitempty" yaml:"projects,omitempty"`
	Contacts *contactsSchema `json:"contacts,omitempty" toml:"contacts,omitempty" yaml:"contacts,omitempty"`
	Boot     *bootSchema     `json:"boot,omitempty" toml:"boot,omitempty" yaml:"boot,omitempty"`
}

type missingSchema struct {
	Section string `json:"section" toml:"section" yaml:"section"`
	Reason  string `json:"reason" toml:"reason" yaml:"reason"`
}

type metaSchema struct {
	Title  string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Prompt string `json:"prompt,omitempty" toml:"prompt,omitempty" yaml:"prompt,omitempty"`
}

type welcomeSchema struct {
	WelcomeText string `json:"welcomeText" toml:"welcome_text" yaml:"welcome_text"`
	HelpText    string `json:"helpText" toml:"help_text" yaml:"help_text"`
}

type commandSchema struct {
	Name        string `json:"name" toml:"name" yaml:"name"`
	Description string `json:"description" toml:"description" yaml:"description"`
}

type commandsSchema struct {
	Commands []commandSchema `json:"commands" toml:"commands" yaml:"commands"`
}

type infoSchema struct {
	Title      string   `json:"title" toml:"title" yaml:"title"`
	Paragraphs []string `json:"paragraphs" toml:"paragraphs" yaml:"paragraphs"`
	Footer     string   `json:"footer" toml:"footer" yaml:"footer"`
}

type skillCategorySchema struct {
	Name  string   `json:"name" toml:"name" yaml:"name"`
	Items []string `json:"items" toml:"items" yaml:"items"`
}

type skillsSchema struct {
	Title      string                `json:"title" toml:"title" yaml:"title"`
	Categories []skillCategorySchema `json:"categories" toml:"categories" yaml:"categories"`
}

type projectSchema struct {
	Title       string `json:"title" toml:"title" yaml:"title"`
	Description string `json:"description" toml:"description" yaml:"description"`
	TechStack   string `json:"techStack" toml:"tech_stack" yaml:"tech_stack"`
}

type projectsSchema struct {
	Title    string          `json:"title" toml:"title" yaml:"title"`
	Projects []projectSchema `json:"projects" toml:"projects" yaml:"projects"`
}

type contactItemSchema struct {
	Label string `json:"label" toml:"label" yaml:"label"`
	Value string `json:"value" toml:"value" yaml:"value"`
}

type contactsSchema struct {
	Title  string              `json:"title" toml:"title" yaml:"title"`
	Items  []contactItemSchema `json:"items" toml:"items" yaml:"items"`
	Footer string              `json:"footer" toml:"footer" yaml:"footer"`
}

type bootSchema struct {
	Header   []string `json:"header" toml:"header" yaml:"header"`
	Sequence []string `json:"sequence" toml:"sequence" yaml:"sequence"`
	Ready    string   `json:"ready" toml:"ready" yaml:"ready"`
}

func toSchema(doc domain.ContentDocument) documentSchema {
	schema := documentSchema{Version: currentSchemaVersion}

	for _, status := range doc.Statuses() {
		if !status.Present {
			schema.Missing = append(schema.Missing, missingSchema{Section: string(status.Name), Reason: status.Reason.Error()})
		}
	}

	if doc.Meta != (domain.Meta{}) {
		schema.Meta = &metaSchema{Title: doc.Meta.Title, Prompt: doc.Meta.Prompt}
	}
	if welcome, ok := doc.Welcome.Get(); ok {
		schema.Welcome = &welcomeSchema{WelcomeText: welcome.WelcomeText, HelpText: welcome.HelpText}
	}
	if list, ok := doc.Commands.Get(); ok {
		commands := make([]commandSchema, 0, len(list.Commands))
		for _, command := range list.Commands {
			commands = append(commands, commandSchema{Name: command.Name, Description: command.Description})
		}
		schema.Commands = &commandsSchema{Commands: commands}
	}
	if info, ok := doc.Info.Get(); ok {
		schema.Info = &infoSchema{Title: info.Title, Paragraphs: info.Paragraphs, Footer: info.Footer}
	}
	if skills, ok := doc.Skills.Get(); ok {
		categories := make([]skillCategorySchema, 0, len(skills.Categories))
		for _, category := range skills.Categories {
			categories = append(categories, skillCategorySchema{Name: category.Name, Items: category.Items})
		}
		schema.Skills = &skillsSchema{Title: skills.Title, Categories: categories}
	}
	if projects, ok := doc.Projects.Get(); ok {
		items := make([]projectSchema, 0, len(projects.Projects))
		for _, project := range projects.Projects {
			items = append(items, projectSchema{Title: project.Title, Description: project.Description, TechStack: project.TechStack})
		}
		schema.Projects = &projectsSchema{Title: projects.Title, Projects: items}
	}
	if contacts, ok := doc.Contacts.Get(); ok {
		items := make([]contactItemSchema, 0, len(contacts.Items))
		for _, item := range contacts.Items {
			items = append(items, contactItemSchema{Label: item.Label, Value: item.Value})
		}
		schema.Contacts = &contactsSchema{Title: contacts.Title, Items: items, Footer: contacts.Footer}
	}
	if boot, ok := doc.Boot.Get(); ok {
		schema.Boot = &bootSchema{Header: boot.Header, Sequence: boot.Sequence, Ready: boot.Ready}
	}

	return schema
}

// sections pairs every present section with its heading, in document order.
func (s documentSchema) sections() []namedSection {
	all := []namedSection{
		{name: domain.SectionWelcome, value: s.Welcome, present: s.Welcome != nil},
		{name: domain.SectionCommands, value: s.Commands, present: s.Commands != nil},
		{name: domain.SectionInfo, value: s.Info, present: s.Info != nil},
		{name: domain.SectionSkills, value: s.Skills, present: s.Skills != nil},
		{name: domain.SectionProjects, value: s.Projects, present: s.Projects != nil},
		{name: domain.SectionContacts, value: s.Contacts, present: s.Contacts != nil},
		{name: domain.SectionBoot, value: s.Boot, present: s.Boot != nil},
	}

	present := all[:0]
	for _, section := range all {
		if section.present {
			present = append(present, section)
		}
	}
	return present
}

type namedSection struct {
	name    domain.SectionName
	value   any
	present bool
}
