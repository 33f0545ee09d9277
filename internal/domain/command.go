package domain

type CommandName string

const (
	CommandHelp     CommandName = "help"
	CommandInfo     CommandName = "info"
	CommandSkills   CommandName = "skills"
	CommandProjects CommandName = "projects"
	CommandContacts CommandName = "contacts"
	CommandClear    CommandName = "clear"
	CommandEmpty    CommandName = ""
)

type ResultKind string

const (
	ResultOutput  ResultKind = "output"
	ResultEmpty   ResultKind = "empty"
	ResultClear   ResultKind = "clear"
	ResultUnknown ResultKind = "unknown"
)

type CommandResult struct {
	Command CommandName
	Kind    ResultKind
	Output  Output
	// Degraded names the section that was absent when the command ran.
	Degraded SectionName
}

func (r CommandResult) Unknown() bool {
	return r.Kind == ResultUnknown
}
