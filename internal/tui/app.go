// Package tui is the interactive front-end. It renders entities and
// forwards user intents to the controllers; all mutation runs on the
// bubbletea update loop, and a one-second tick re-reads the live timer
// without touching persisted state.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"gastrogrid/internal/auftrag"
	"gastrogrid/internal/extras"
	"gastrogrid/internal/knowledge"
	"gastrogrid/internal/models"
	"gastrogrid/internal/repository"
	"gastrogrid/internal/session"
)

type screen int

const (
	screenEvents screen = iota
	screenJobs
	screenDetail
	screenTemplates
)

type inputTarget int

const (
	inputNone inputTarget = iota
	inputNewEvent
	inputNewJob
	inputNewStep
)

type tickMsg time.Time

// App bundles everything the model needs.
type App struct {
	Session   session.Session
	Jobs      *auftrag.JobController
	Events    *auftrag.EventController
	Auftraege *repository.AuftragRepository
	EventRepo *repository.EventRepository
	Lookup    *knowledge.Lookup
	Logger    *zap.Logger
}

// Run starts the interactive UI and blocks until quit.
func Run(app App) error {
	m := newModel(app)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type model struct {
	app App

	screen screen
	width  int
	height int
	notice string

	events   []models.Event
	eventIdx int

	event  *models.Event
	jobs   []models.Auftrag
	jobIdx int

	job     *models.Auftrag
	doc     extras.JobExtras
	stepIdx int

	templates   []extras.Template
	templateIdx int

	input       textinput.Model
	inputTarget inputTarget
}

func newModel(app App) model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 48

	m := model{app: app, input: ti, templates: extras.Templates()}
	m.reloadEvents()
	return m
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		// Display-only: the next View call re-reads the live timer.
		return m, tick()
	case tea.KeyMsg:
		if m.inputTarget != inputNone {
			return m.updateInput(msg)
		}
		switch m.screen {
		case screenEvents:
			return m.updateEvents(msg)
		case screenJobs:
			return m.updateJobs(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenTemplates:
			return m.updateTemplates(msg)
		}
	}
	return m, nil
}

// --- data loading -----------------------------------------------------------

func (m *model) reloadEvents() {
	events, err := m.app.EventRepo.FindAll("")
	if err != nil {
		m.notice = "Events konnten nicht geladen werden: " + err.Error()
		return
	}
	m.events = events
	if m.eventIdx >= len(events) {
		m.eventIdx = max(0, len(events)-1)
	}
}

func (m *model) reloadJobs() {
	if m.event == nil {
		return
	}
	jobs, err := m.app.Auftraege.FindByEvent(m.event.ID)
	if err != nil {
		m.notice = "Aufträge konnten nicht geladen werden: " + err.Error()
		return
	}
	m.jobs = jobs
	if m.jobIdx >= len(jobs) {
		m.jobIdx = max(0, len(jobs)-1)
	}
}

func (m *model) openDetail() {
	if m.jobIdx >= len(m.jobs) {
		return
	}
	job := m.jobs[m.jobIdx]
	m.job = &job
	m.doc = m.app.Jobs.LoadExtras(m.job)
	m.stepIdx = 0
	m.screen = screenDetail
}

// saveNotice maps a controller result to the status line. The in-memory
// state is already updated either way.
func (m *model) saveNotice(err error) {
	if err != nil {
		m.notice = "Nicht gespeichert: " + err.Error()
		return
	}
	m.notice = ""
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
