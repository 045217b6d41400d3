package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gastrogrid/internal/auftrag"
	"gastrogrid/internal/extras"
	"gastrogrid/internal/models"
)

func (m model) updateEvents(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.eventIdx > 0 {
			m.eventIdx--
		}
	case "down", "j":
		if m.eventIdx < len(m.events)-1 {
			m.eventIdx++
		}
	case "enter":
		if m.eventIdx < len(m.events) {
			event := m.events[m.eventIdx]
			m.event = &event
			m.jobIdx = 0
			m.reloadJobs()
			m.screen = screenJobs
		}
	case "n":
		m.startInput(inputNewEvent, "Titel des Events")
	case "d":
		if m.eventIdx < len(m.events) {
			event := m.events[m.eventIdx]
			m.saveNotice(m.app.Events.DeleteEvent(&event))
			m.reloadEvents()
		}
	}
	return m, nil
}

func (m model) updateJobs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenEvents
		m.reloadEvents()
	case "up", "k":
		if m.jobIdx > 0 {
			m.jobIdx--
		}
	case "down", "j":
		if m.jobIdx < len(m.jobs)-1 {
			m.jobIdx++
		}
	case "enter":
		m.openDetail()
	case "n":
		m.startInput(inputNewJob, "Mitarbeiter (Pflicht)")
	case "d":
		if m.jobIdx < len(m.jobs) {
			job := m.jobs[m.jobIdx]
			m.saveNotice(m.app.Jobs.DeleteJob(&job))
			m.reloadJobs()
		}
	}
	return m, nil
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.job == nil {
		m.screen = screenJobs
		return m, nil
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.job = nil
		m.screen = screenJobs
		m.reloadJobs()
	case "up", "k":
		if m.stepIdx > 0 {
			m.stepIdx--
		}
	case "down", "j":
		if m.stepIdx < len(m.doc.Checklist)-1 {
			m.stepIdx++
		}
	case " ", "enter":
		if m.stepIdx < len(m.doc.Checklist) {
			id := m.doc.Checklist[m.stepIdx].ID
			m.saveNotice(m.app.Jobs.ToggleStep(m.job, &m.doc, id))
		}
	case "a":
		m.startInput(inputNewStep, "Neuer Schritt")
	case "x":
		if m.stepIdx < len(m.doc.Checklist) {
			id := m.doc.Checklist[m.stepIdx].ID
			m.saveNotice(m.app.Jobs.DeleteStep(m.job, &m.doc, id))
			if m.stepIdx >= len(m.doc.Checklist) {
				m.stepIdx = max(0, len(m.doc.Checklist)-1)
			}
		}
	case "t":
		m.saveNotice(m.app.Jobs.SetTrainingMode(m.job, &m.doc, !m.doc.TrainingMode))
	case "m":
		m.saveNotice(m.app.Jobs.MarkCompleted(m.job, &m.doc))
	case "r":
		m.saveNotice(m.app.Jobs.ResetCompletion(m.job, &m.doc))
	case "v":
		m.templateIdx = 0
		m.screen = screenTemplates
	case "1":
		m.saveNotice(m.app.Jobs.SetStatus(m.job, models.StatusPending))
	case "2":
		m.saveNotice(m.app.Jobs.SetStatus(m.job, models.StatusInProgress))
	case "3":
		m.saveNotice(m.app.Jobs.SetStatus(m.job, models.StatusOnHold))
	case "4":
		m.saveNotice(m.app.Jobs.SetStatus(m.job, models.StatusCompleted))
	}
	return m, nil
}

func (m model) updateTemplates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenDetail
	case "up", "k":
		if m.templateIdx > 0 {
			m.templateIdx--
		}
	case "down", "j":
		if m.templateIdx < len(m.templates)-1 {
			m.templateIdx++
		}
	case "enter":
		tpl := m.templates[m.templateIdx]
		m.saveNotice(m.app.Jobs.ApplyTemplate(m.job, &m.doc, tpl.Steps, extras.ModeAppend))
		m.screen = screenDetail
	case "R":
		tpl := m.templates[m.templateIdx]
		m.saveNotice(m.app.Jobs.ApplyTemplate(m.job, &m.doc, tpl.Steps, extras.ModeReplace))
		m.screen = screenDetail
	}
	return m, nil
}

// --- text input -------------------------------------------------------------

func (m *model) startInput(target inputTarget, placeholder string) {
	m.inputTarget = target
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputTarget = inputNone
		m.input.Blur()
		return m, nil
	case "enter":
		value := m.input.Value()
		target := m.inputTarget
		m.inputTarget = inputNone
		m.input.Blur()
		m.submitInput(target, value)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) submitInput(target inputTarget, value string) {
	switch target {
	case inputNewEvent:
		event := models.Event{Title: value}
		if err := m.app.Events.CreateEvent(&event); err != nil {
			m.notice = "Event nicht angelegt: " + err.Error()
			return
		}
		m.notice = ""
		m.reloadEvents()
	case inputNewJob:
		if m.event == nil {
			return
		}
		_, err := m.app.Jobs.CreateJob(auftrag.NewJobParams{
			EventID:       m.event.ID,
			EmployeeName:  value,
			InitialStatus: models.StatusPending,
			Extras:        extras.NewJobExtras(),
		})
		if err != nil {
			m.notice = "Auftrag nicht angelegt: " + err.Error()
			return
		}
		m.notice = ""
		m.reloadJobs()
	case inputNewStep:
		if m.job == nil {
			return
		}
		m.saveNotice(m.app.Jobs.AddStep(m.job, &m.doc, value))
	}
}
