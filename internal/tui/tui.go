// Package tui provides a Bubble Tea terminal user interface for lobbygen.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/lobbygen/internal/config"
	"github.com/handiism/lobbygen/internal/generate"
	"github.com/handiism/lobbygen/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	trackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateReview
	StateWriting
	StateComplete
	StateError
)

const (
	maxLogs          = 10
	maxReviewTracks  = 12
	eventBufferSize  = 64
	progressInterval = 200 * time.Millisecond
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   generate.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	tracks    []*model.Track
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	manager *generate.Manager
	events  chan generate.ProgressEvent

	// Generation progress
	resolvedTracks int32
	totalTracks    int32
	taggedTracks   int32

	// Options
	suffixMatch bool
	normalize   bool
	verbose     bool

	width  int
	height int
}

// NewModel creates a new TUI model seeded from settings.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/game"
	ti.SetValue(settings.RootDir)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:       StateInput,
		textInput:   ti,
		spinner:     sp,
		progress:    prog,
		settings:    settings,
		logs:        make([]LogEntry, 0),
		ctx:         ctx,
		cancel:      cancel,
		events:      make(chan generate.ProgressEvent, eventBufferSize),
		suffixMatch: settings.ToMatchMode() == model.MatchSuffix,
		normalize:   settings.NormalizeTitles,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, listenEvents(m.events))
}

// Message types
type (
	// ProgressMsg carries a progress event from the manager.
	ProgressMsg struct {
		Event generate.ProgressEvent
	}

	// ScanDoneMsg is sent when the scan and title preview complete.
	ScanDoneMsg struct {
		Manager *generate.Manager
		Tracks  []*model.Track
		Err     error
	}

	// GenerateDoneMsg is sent when both prototype files are written.
	GenerateDoneMsg struct {
		Resolved int32
		Total    int32
		Tagged   int32
		Err      error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateInput:
				return m, tea.Quit
			case StateReview:
				m.state = StateInput
				m.manager = nil
				m.tracks = nil
				m.textInput.Focus()
				return m, nil
			case StateScanning, StateWriting:
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
				return m, nil
			}

		case "enter":
			switch m.state {
			case StateInput:
				if strings.TrimSpace(m.textInput.Value()) != "" {
					m.state = StateScanning
					m.logs = nil
					return m, tea.Batch(m.startScan(), m.spinner.Tick)
				}
			case StateReview:
				m.state = StateWriting
				return m, tea.Batch(m.startGenerate(), m.tickProgress())
			}

		case "tab":
			if m.state == StateInput {
				m.suffixMatch = !m.suffixMatch
				return m, nil
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.normalize = !m.normalize
				return m, nil
			}

		case "ctrl+l":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, listenEvents(m.events))
		if msg.Event.Level == generate.LevelVerbose && !m.verbose {
			return m, tea.Batch(cmds...)
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case ScanDoneMsg:
		if m.state != StateScanning {
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.manager = msg.Manager
			m.tracks = msg.Tracks
			m.totalTracks = int32(len(msg.Tracks))
			m.state = StateReview
		}

	case GenerateDoneMsg:
		m.resolvedTracks = msg.Resolved
		m.totalTracks = msg.Total
		m.taggedTracks = msg.Tagged
		if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateWriting {
			m.resolvedTracks, m.totalTracks, m.taggedTracks = m.manager.GetProgress()

			var percent float64
			if m.totalTracks > 0 {
				percent = float64(m.resolvedTracks) / float64(m.totalTracks)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Err returns the error shown in the error state, if any.
func (m Model) Err() error {
	return m.err
}

// Settings builds the settings for the next run from the base settings
// and the options chosen in the input view.
func (m Model) Settings() *config.Settings {
	settings := *m.settings
	settings.RootDir = strings.TrimSpace(m.textInput.Value())
	settings.MatchMode = model.MatchSubstring.String()
	if m.suffixMatch {
		settings.MatchMode = model.MatchSuffix.String()
	}
	settings.NormalizeTitles = m.normalize
	return &settings
}

func (m *Model) reset() {
	m.state = StateInput
	m.logs = nil
	m.tracks = nil
	m.err = nil
	m.resolvedTracks = 0
	m.totalTracks = 0
	m.taggedTracks = 0
	m.manager = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.Focus()
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(progressInterval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// listenEvents waits for the next progress event from the manager.
func listenEvents(events <-chan generate.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		return ProgressMsg{Event: <-events}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ Lobby Music Generator"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Build lobby sound collection and jukebox prototypes"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateReview:
		b.WriteString(m.viewReview())
	case StateWriting:
		b.WriteString(m.viewWriting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Game root directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Match extensions as suffix only (tab)\n", checkbox(m.suffixMatch)))
	b.WriteString(fmt.Sprintf("  %s Normalize titles to NFC (ctrl+t)\n", checkbox(m.normalize)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+l)\n", checkbox(m.verbose)))
	b.WriteString("\n")

	settings := m.Settings()
	b.WriteString(dimStyle.Render(fmt.Sprintf("Audio: %s", settings.ResolvedAudioDir())))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Metadata reader: %s", settings.MetadataReader)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading lobby tracks..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewReview() string {
	var b strings.Builder

	if len(m.tracks) == 0 {
		b.WriteString(warningStyle.Render("No lobby tracks found; empty prototypes will be written."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(successStyle.Render(fmt.Sprintf("Found %d track(s):", len(m.tracks))))
		b.WriteString("\n")
		for i, track := range m.tracks {
			if i == maxReviewTracks {
				b.WriteString(dimStyle.Render(fmt.Sprintf("  … and %d more", len(m.tracks)-maxReviewTracks)))
				b.WriteString("\n")
				break
			}
			line := fmt.Sprintf("  ♪ %s", track.Title)
			if track.TitleSource == model.TitleFromFileName {
				line += dimStyle.Render(" (file name)")
			}
			b.WriteString(trackStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	settings := m.manager.Settings()
	b.WriteString(dimStyle.Render("Will write:"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + settings.ResolvedCollectionPath()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + settings.ResolvedJukeboxPath()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewWriting() string {
	var b strings.Builder

	var percent float64
	if m.totalTracks > 0 {
		percent = float64(m.resolvedTracks) / float64(m.totalTracks)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Tracks: %d/%d | Titled from tags: %d",
		m.resolvedTracks,
		m.totalTracks,
		m.taggedTracks,
	)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	var collection, jukebox string
	if m.manager != nil {
		collection = m.manager.Settings().ResolvedCollectionPath()
		jukebox = m.manager.Settings().ResolvedJukeboxPath()
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Prototypes Written!\n\n"+
			"Tracks: %d\n"+
			"Titled from tags: %d\n"+
			"Collection: %s\n"+
			"Jukebox: %s",
		m.totalTracks,
		m.taggedTracks,
		collection,
		jukebox,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case generate.LevelError:
			style = errorStyle
			prefix = "✗"
		case generate.LevelWarning:
			style = warningStyle
			prefix = "!"
		case generate.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case generate.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: scan • tab: suffix match • ctrl+t: normalize • ctrl+l: verbose • esc: quit"
	case StateReview:
		return "enter: write prototypes • esc: back"
	case StateScanning, StateWriting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: start over • q: quit"
	}
	return ""
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

// startScan lists the lobby directory and resolves every title.
func (m Model) startScan() tea.Cmd {
	ctx := m.ctx
	settings := m.Settings()
	events := m.events

	return func() tea.Msg {
		if err := settings.Validate(); err != nil {
			return ScanDoneMsg{Err: err}
		}

		manager := generate.NewManager(settings, func(event generate.ProgressEvent) {
			select {
			case events <- event:
			default:
			}
		})

		if err := manager.Initialize(ctx); err != nil {
			return ScanDoneMsg{Err: err}
		}
		tracks, err := manager.Preview(ctx)
		if err != nil {
			return ScanDoneMsg{Err: err}
		}

		return ScanDoneMsg{Manager: manager, Tracks: tracks}
	}
}

// startGenerate writes both prototype files in the background.
func (m Model) startGenerate() tea.Cmd {
	ctx := m.ctx
	manager := m.manager

	return func() tea.Msg {
		if manager == nil {
			return GenerateDoneMsg{Err: fmt.Errorf("no scan results")}
		}

		err := manager.Generate(ctx)
		resolved, total, tagged := manager.GetProgress()

		return GenerateDoneMsg{
			Resolved: resolved,
			Total:    total,
			Tagged:   tagged,
			Err:      err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
