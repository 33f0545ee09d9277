package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/bnema/termfolio/internal/application"
	"github.com/bnema/termfolio/internal/domain"
	"github.com/bnema/termfolio/internal/reveal"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultPrompt = "$"
	DefaultTitle  = "developer@terminal-portfolio"

	bootOwner     = "boot"
	loadingText   = "Loading terminal..."
	defaultWidth  = 80
	defaultHeight = 24
	inputLimit    = 256
)

var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

type LoadFunc func(ctx context.Context) (domain.ContentDocument, error)

type Options struct {
	BootDelay time.Duration
	Animate   bool
	Prompt    string
	Title     string
	Terminal  application.TerminalOptions
	Logger    *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.BootDelay < 0 {
		o.BootDelay = 0
	}
	if o.Prompt == "" {
		o.Prompt = DefaultPrompt
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Terminal.Logger == nil {
		o.Terminal.Logger = o.Logger
	}
	return o
}

type phase int

const (
	phaseLoading phase = iota
	phaseUnavailable
	phaseBooting
	phaseReady
)

type contentLoadedMsg struct {
	doc domain.ContentDocument
	err error
}

type bootDoneMsg struct{}

type revealTickMsg struct {
	tick reveal.Tick
}

type Model struct {
	ctx      context.Context
	load     LoadFunc
	opts     Options
	styles   styles
	phase    phase
	terminal *application.Terminal
	reveals  *reveal.Registry
	spinner  spinner.Model
	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int

	// loadOnly stops the program once the document arrives.
	loadOnly bool
	loaded   bool
	doc      domain.ContentDocument
	loadErr  error
}

func New(ctx context.Context, load LoadFunc, opts Options) Model {
	opts = opts.withDefaults()
	s := newStyles()

	input := textinput.New()
	input.Prompt = s.prompt.Render(opts.Prompt) + " "
	input.TextStyle = s.input
	input.CharLimit = inputLimit

	m := Model{
		ctx:     ctx,
		load:    load,
		opts:    opts,
		styles:  s,
		phase:   phaseLoading,
		reveals: reveal.NewRegistry(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(s.spinner),
		),
		input:    input,
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
	m.resize(defaultWidth, defaultHeight)

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadContent())
}

func (m Model) loadContent() tea.Cmd {
	return func() tea.Msg {
		doc, err := m.load(m.ctx)
		return contentLoadedMsg{doc: doc, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refresh(false)
		return m, nil
	case spinner.TickMsg:
		if m.phase != phaseLoading && m.phase != phaseUnavailable {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case contentLoadedMsg:
		return m.contentLoaded(msg)
	case bootDoneMsg:
		return m.bootDone()
	case revealTickMsg:
		next, ok := m.reveals.Advance(msg.tick)
		m.refresh(false)
		if !ok {
			return m, nil
		}
		return m, revealTickCmd(next)
	}

	if m.phase == phaseReady {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.opts.Logger.Debug("terminal closed", "pending_reveals", m.reveals.Pending())
		m.reveals.CancelAll()
		return m, tea.Quit
	}

	if m.phase != phaseReady {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	m.input.Reset()

	res, err := m.terminal.Submit(raw)
	if err != nil {
		m.opts.Logger.Debug("submission rejected", "error", err)
		return m, nil
	}

	if res.Cleared() {
		for _, id := range res.Removed {
			m.reveals.CancelOwner(id)
		}
	}

	var cmd tea.Cmd
	if res.Entry != nil {
		cmd = m.startReveals(res.Entry.ID, res.Entry.Output)
	}
	m.refresh(true)

	return m, cmd
}

func (m Model) contentLoaded(msg contentLoadedMsg) (tea.Model, tea.Cmd) {
	if m.phase != phaseLoading {
		return m, nil
	}

	if m.loadOnly {
		m.loaded = true
		m.doc, m.loadErr = msg.doc, msg.err
		return m, tea.Quit
	}

	if msg.err != nil {
		m.phase = phaseUnavailable
		m.opts.Logger.Error("terminal content unavailable", "error", msg.err)
		return m, nil
	}

	m.applyMeta(msg.doc.Meta)
	m.terminal = application.NewTerminal(msg.doc, m.opts.Terminal)
	m.phase = phaseBooting

	bootDelay := m.opts.BootDelay
	return m, tea.Batch(
		m.startReveals(bootOwner, m.terminal.BootScreen()),
		tea.Tick(bootDelay, func(time.Time) tea.Msg { return bootDoneMsg{} }),
	)
}

// applyMeta lets the document's front matter replace the default title and
// prompt. Values set explicitly through Options are kept.
func (m *Model) applyMeta(meta domain.Meta) {
	if meta.Title != "" && m.opts.Title == DefaultTitle {
		m.opts.Title = meta.Title
	}
	if meta.Prompt != "" && m.opts.Prompt == DefaultPrompt {
		m.opts.Prompt = meta.Prompt
		m.input.Prompt = m.styles.prompt.Render(meta.Prompt) + " "
		m.resize(m.width, m.height)
	}
}

func (m Model) bootDone() (tea.Model, tea.Cmd) {
	if m.terminal == nil {
		return m, nil
	}

	entry, ok := m.terminal.CompleteBoot()
	if !ok {
		return m, nil
	}

	m.reveals.CancelOwner(bootOwner)
	m.phase = phaseReady
	focus := m.input.Focus()
	reveals := m.startReveals(entry.ID, entry.Output)
	m.refresh(true)

	return m, tea.Batch(focus, reveals)
}

// startReveals registers one task per animated block, keyed by its owner.
func (m Model) startReveals(owner string, output domain.Output) tea.Cmd {
	if !m.opts.Animate {
		return nil
	}

	var cmds []tea.Cmd
	for i, block := range output.Blocks {
		if !block.Animated() {
			continue
		}
		if tick, ok := m.reveals.Start(reveal.Key{Owner: owner, Index: i}, block.Text, block.RevealDelay, nil); ok {
			cmds = append(cmds, revealTickCmd(tick))
		}
	}

	return tea.Batch(cmds...)
}

func revealTickCmd(tick reveal.Tick) tea.Cmd {
	return tea.Tick(tick.Delay, func(time.Time) tea.Msg {
		return revealTickMsg{tick: tick}
	})
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// title bar and input line
	viewportHeight := height - 2
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = viewportHeight
	m.input.Width = width - lipgloss.Width(m.input.Prompt) - 1
}

// refresh redraws the session log. The viewport follows the newest entry after
// every log mutation, and keeps following reveals while already at the bottom.
func (m *Model) refresh(toBottom bool) {
	if m.phase != phaseReady || m.terminal == nil {
		return
	}

	atBottom := m.viewport.AtBottom()
	history := renderHistory(m.terminal.Entries(), m.reveals, m.opts.Prompt, m.styles)
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.width).Render(history))
	if toBottom || atBottom {
		m.viewport.GotoBottom()
	}
}

func (m Model) View() string {
	if m.loadOnly {
		if m.loaded {
			return ""
		}
		return m.spinner.View() + " " + m.styles.loading.Render(loadingText)
	}

	titleBar := m.styles.titleBar.Width(m.width).Render(m.opts.Title)

	switch m.phase {
	case phaseLoading, phaseUnavailable:
		return titleBar + "\n" + m.spinner.View() + " " + m.styles.loading.Render(loadingText)
	case phaseBooting:
		return titleBar + "\n" + renderOutput(bootOwner, m.terminal.BootScreen(), m.reveals, m.styles)
	default:
		return titleBar + "\n" + m.viewport.View() + "\n" + m.input.View()
	}
}

// Run starts the interactive terminal and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, load LoadFunc, opts Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(ctx, load, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if _, ok := finalModel.(Model); !ok {
		return ErrUnexpectedModel
	}

	return nil
}

// Load runs only the loading phase: the spinner is drawn to out until load
// returns, then the document and load error are handed back.
func Load(ctx context.Context, load LoadFunc, out io.Writer) (domain.ContentDocument, error) {
	m := New(ctx, load, Options{})
	m.loadOnly = true

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(out),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.ContentDocument{}, err
	}

	loaded, ok := finalModel.(Model)
	if !ok {
		return domain.ContentDocument{}, ErrUnexpectedModel
	}

	return loaded.doc, loaded.loadErr
}
