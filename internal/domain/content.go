package domain

import "fmt"

type SectionName string

const (
	SectionWelcome  SectionName = "Welcome"
	SectionCommands SectionName = "Commands"
	SectionInfo     SectionName = "Info"
	SectionSkills   SectionName = "Skills"
	SectionProjects SectionName = "Projects"
	SectionContacts SectionName = "Contacts"
	SectionBoot     SectionName = "Boot"
)

// SectionNames lists every recognized section in document order.
var SectionNames = []SectionName{
	SectionWelcome,
	SectionCommands,
	SectionInfo,
	SectionSkills,
	SectionProjects,
	SectionContacts,
	SectionBoot,
}

// Section holds a validated content section or the reason it is absent.
type Section[T any] struct {
	value   T
	present bool
	reason  error
}

func Present[T any](value T) Section[T] {
	return Section[T]{value: value, present: true}
}

func Absent[T any](reason error) Section[T] {
	if reason == nil {
		reason = ErrSectionMissing
	}
	return Section[T]{reason: reason}
}

func (s Section[T]) Get() (T, bool) {
	return s.value, s.present
}

func (s Section[T]) Present() bool {
	return s.present
}

// Reason is nil for present sections.
func (s Section[T]) Reason() error {
	if s.present {
		return nil
	}
	if s.reason == nil {
		return ErrSectionMissing
	}
	return s.reason
}

type Welcome struct {
	WelcomeText string
	HelpText    string
}

type CommandEntry struct {
	Name        string
	Description string
}

type CommandList struct {
	Commands []CommandEntry
}

type Info struct {
	Title      string
	Paragraphs []string
	Footer     string
}

type SkillCategory struct {
	Name  string
	Items []string
}

type Skills struct {
	Title      string
	Categories []SkillCategory
}

type Project struct {
	Title       string
	Description string
	TechStack   string
}

type Projects struct {
	Title    string
	Projects []Project
}

type ContactItem struct {
	Label string
	Value string
}

type Contacts struct {
	Title  string
	Items  []ContactItem
	Footer string
}

type Boot struct {
	Header   []string
	Sequence []string
	Ready    string
}

// Meta holds optional document settings read from the front matter.
type Meta struct {
	Title  string
	Prompt string
}

// ContentDocument is loaded once and never mutated afterwards.
type ContentDocument struct {
	Meta     Meta
	Welcome  Section[Welcome]
	Commands Section[CommandList]
	Info     Section[Info]
	Skills   Section[Skills]
	Projects Section[Projects]
	Contacts Section[Contacts]
	Boot     Section[Boot]
}

// SectionStatus reports whether a named section loaded and why not.
type SectionStatus struct {
	Name    SectionName
	Present bool
	Reason  error
}

func (d ContentDocument) Statuses() []SectionStatus {
	reasons := map[SectionName]error{
		SectionWelcome:  d.Welcome.Reason(),
		SectionCommands: d.Commands.Reason(),
		SectionInfo:     d.Info.Reason(),
		SectionSkills:   d.Skills.Reason(),
		SectionProjects: d.Projects.Reason(),
		SectionContacts: d.Contacts.Reason(),
		SectionBoot:     d.Boot.Reason(),
	}

	statuses := make([]SectionStatus, 0, len(SectionNames))
	for _, name := range SectionNames {
		reason := reasons[name]
		statuses = append(statuses, SectionStatus{Name: name, Present: reason == nil, Reason: reason})
	}

	return statuses
}

func (d ContentDocument) Missing() []SectionName {
	var missing []SectionName
	for _, status := range d.Statuses() {
		if !status.Present {
			missing = append(missing, status.Name)
		}
	}
	return missing
}

func (d ContentDocument) Usable() bool {
	return len(d.Missing()) == 0
}

// SectionError ties an absence reason to the section it came from.
type SectionError struct {
	Section SectionName
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}
