package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"gastrogrid/internal/auftrag"
	"gastrogrid/internal/extras"
	"gastrogrid/internal/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	selStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("219"))
)

func (m model) View() string {
	var b strings.Builder

	header := "GastroGrid — " + m.app.Session.Role.Title()
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	switch m.screen {
	case screenEvents:
		b.WriteString(m.viewEvents())
	case screenJobs:
		b.WriteString(m.viewJobs())
	case screenDetail:
		b.WriteString(m.viewDetail())
	case screenTemplates:
		b.WriteString(m.viewTemplates())
	}

	if m.inputTarget != inputNone {
		b.WriteString("\n")
		b.WriteString(panelStyle.Render(m.input.View()))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.helpLine()))
	return b.String()
}

func (m model) viewEvents() string {
	if len(m.events) == 0 {
		return mutedStyle.Render("Keine Events. 'n' legt ein neues an.")
	}
	var b strings.Builder
	for i, e := range m.events {
		line := e.Title
		if e.EventNumber != "" {
			line += "  " + mutedStyle.Render("#"+e.EventNumber)
		}
		if e.EventStartTime != nil {
			line += "  " + mutedStyle.Render(e.EventStartTime.Format("02.01. 15:04"))
		}
		if i == m.eventIdx {
			line = selStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) viewJobs() string {
	var b strings.Builder
	if m.event != nil {
		b.WriteString(titleStyle.Render(m.event.Title))
		b.WriteString("\n\n")
	}
	if len(m.jobs) == 0 {
		b.WriteString(mutedStyle.Render("Keine Aufträge. 'n' legt einen neuen an."))
		return b.String()
	}
	for i, job := range m.jobs {
		doc := extras.DecodeJobExtras(job.Extras)
		ratio := auftrag.ProgressRatio(extras.DoneCount(doc.Checklist), len(doc.Checklist), job.Status())
		line := fmt.Sprintf("%-30s %s %3.0f%%  %s",
			truncate(job.DisplayTitle(), 30),
			statusStyle.Render(job.Status().DisplayName()),
			ratio*100,
			auftrag.FormatSeconds(auftrag.CurrentTotalTime(&job, time.Now())),
		)
		if i == m.jobIdx {
			line = selStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) viewDetail() string {
	job := m.job
	var b strings.Builder

	b.WriteString(titleStyle.Render(job.DisplayTitle()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(job.Status().DisplayName()))
	b.WriteString("  ")
	b.WriteString(auftrag.FormatSeconds(m.app.Jobs.CurrentTotalTime(job)))
	b.WriteString("  ")
	ratio := m.app.Jobs.Progress(job, &m.doc)
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d/%d Schritte (%.0f%%)",
		extras.DoneCount(m.doc.Checklist), len(m.doc.Checklist), ratio*100)))
	b.WriteString("\n")

	if m.doc.OrderNumber != "" || m.doc.Station != "" || m.doc.Persons > 0 {
		meta := []string{}
		if m.doc.OrderNumber != "" {
			meta = append(meta, "#"+m.doc.OrderNumber)
		}
		if m.doc.Station != "" {
			meta = append(meta, m.doc.Station)
		}
		if m.doc.Persons > 0 {
			meta = append(meta, fmt.Sprintf("%d Pers.", m.doc.Persons))
		}
		b.WriteString(mutedStyle.Render(strings.Join(meta, "  ")))
		b.WriteString("\n")
	}

	mode := "Profi-Modus"
	if m.doc.TrainingMode {
		mode = "Ausbildungsmodus"
		if next, ok := extras.NextOpenStep(m.doc.Checklist); ok && job.Status() != models.StatusCompleted {
			b.WriteString("\nJETZT: " + titleStyle.Render(next.Title) + "\n")
		}
	}
	b.WriteString(mutedStyle.Render(mode))
	b.WriteString("\n\n")

	if len(m.doc.Checklist) == 0 {
		b.WriteString(mutedStyle.Render("Keine SOP hinterlegt. 'a' fügt Schritte hinzu, 'v' wählt eine Vorlage."))
		b.WriteString("\n")
	}
	for i, item := range m.doc.Checklist {
		box := "[ ]"
		line := item.Title
		if item.IsDone {
			box = "[x]"
			line = doneStyle.Render(line)
		}
		row := box + " " + line
		if i == m.stepIdx {
			row = selStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if len(m.doc.LineItems) > 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Produktionsliste:"))
		b.WriteString("\n")
		for _, li := range m.doc.LineItems {
			b.WriteString(fmt.Sprintf("  %s %s %s", li.Amount, li.Unit, li.Title))
			if li.Note != "" {
				b.WriteString("  " + mutedStyle.Render(li.Note))
			}
			b.WriteString("\n")
		}
	}

	if pins := len(m.doc.PinnedProductIDs) + len(m.doc.PinnedLexikonCodes); pins > 0 {
		b.WriteString("\n")
		b.WriteString(m.viewPins())
	}
	return b.String()
}

// viewPins resolves knowledge pins for display; unresolved refs show an
// inline notice instead of erroring.
func (m model) viewPins() string {
	res, err := m.app.Lookup.ResolvePins(m.doc.PinnedProductIDs, m.doc.PinnedLexikonCodes)
	if err != nil {
		return errorStyle.Render("Wissen nicht abrufbar: " + err.Error())
	}
	var b strings.Builder
	b.WriteString(mutedStyle.Render("Wissen:"))
	b.WriteString("\n")
	for _, p := range res.Products {
		b.WriteString("  📦 " + p.Name + "\n")
	}
	for _, id := range res.MissingProductIDs {
		b.WriteString(mutedStyle.Render("  📦 "+id+" (nicht gefunden)") + "\n")
	}
	for _, e := range res.Lexikon {
		b.WriteString("  📚 " + e.Name + "\n")
	}
	for _, code := range res.MissingLexikonCodes {
		b.WriteString(mutedStyle.Render("  📚 "+code+" (nicht gefunden)") + "\n")
	}
	return b.String()
}

func (m model) viewTemplates() string {
	var b strings.Builder
	b.WriteString("Vorlage wählen:")
	b.WriteString("\n\n")
	for i, tpl := range m.templates {
		line := fmt.Sprintf("%s  %s", tpl.Name, mutedStyle.Render(fmt.Sprintf("(%d Schritte)", len(tpl.Steps))))
		if i == m.templateIdx {
			line = selStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) helpLine() string {
	switch {
	case m.inputTarget != inputNone:
		return "enter bestätigen · esc abbrechen"
	case m.screen == screenEvents:
		return "↑/↓ wählen · enter öffnen · n neu · d löschen · q beenden"
	case m.screen == screenJobs:
		return "↑/↓ wählen · enter öffnen · n neu · d löschen · esc zurück"
	case m.screen == screenTemplates:
		return "enter anhängen · R ersetzen · esc zurück"
	default:
		return "space abhaken · a Schritt · x löschen · v Vorlage · t Modus · m fertig · r zurücksetzen · 1-4 Status · esc zurück"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
