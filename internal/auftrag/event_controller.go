package auftrag

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"gastrogrid/internal/extras"
	"gastrogrid/internal/models"
	"gastrogrid/internal/repository"
)

// ErrTitleRequired rejects creating an event without a title.
var ErrTitleRequired = errors.New("event title must not be empty")

// EventController binds the checklist engine to an event's extras
// document. Events carry no status machine; their checklist is pure
// planning state.
type EventController struct {
	repo   *repository.EventRepository
	logger *zap.Logger
}

func NewEventController(repo *repository.EventRepository, logger *zap.Logger) *EventController {
	return &EventController{repo: repo, logger: logger}
}

// CreateEvent persists a new event. Setup/start/end ordering is not
// enforced, matching the planning screens.
func (c *EventController) CreateEvent(event *models.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return ErrTitleRequired
	}
	if err := c.repo.Create(event); err != nil {
		c.logger.Error("create event failed", zap.Error(err))
		return err
	}
	return nil
}

// DeleteEvent removes the event. Jobs of the event are left in place.
func (c *EventController) DeleteEvent(event *models.Event) error {
	if err := c.repo.Delete(event); err != nil {
		c.logger.Error("delete event failed", zap.Uint("event_id", event.ID), zap.Error(err))
		return err
	}
	return nil
}

// LoadExtras decodes the event's extras column.
func (c *EventController) LoadExtras(event *models.Event) extras.EventExtras {
	return extras.DecodeEventExtras(event.Extras)
}

// AddStep appends a step to the event checklist.
func (c *EventController) AddStep(event *models.Event, doc *extras.EventExtras, title string) error {
	if !extras.AddStep(&doc.Checklist, title) {
		return nil
	}
	return c.saveWithExtras(event, doc)
}

// ToggleStep flips one event checklist step.
func (c *EventController) ToggleStep(event *models.Event, doc *extras.EventExtras, id string) error {
	if !extras.ToggleStep(doc.Checklist, id) {
		return nil
	}
	return c.saveWithExtras(event, doc)
}

// DeleteStep removes one event checklist step.
func (c *EventController) DeleteStep(event *models.Event, doc *extras.EventExtras, id string) error {
	if !extras.DeleteStep(&doc.Checklist, id) {
		return nil
	}
	return c.saveWithExtras(event, doc)
}

// ClearChecklist drops every step of the event checklist.
func (c *EventController) ClearChecklist(event *models.Event, doc *extras.EventExtras) error {
	doc.Checklist = doc.Checklist[:0]
	return c.saveWithExtras(event, doc)
}

// SaveExtras persists pin edits made in the knowledge sheet.
func (c *EventController) SaveExtras(event *models.Event, doc *extras.EventExtras) error {
	return c.saveWithExtras(event, doc)
}

func (c *EventController) saveWithExtras(event *models.Event, doc *extras.EventExtras) error {
	raw, err := extras.EncodeEventExtras(*doc)
	if err != nil {
		c.logger.Error("encode event extras failed", zap.Uint("event_id", event.ID), zap.Error(err))
	} else {
		event.Extras = raw
	}
	if err := c.repo.Save(event); err != nil {
		c.logger.Error("save event failed", zap.Uint("event_id", event.ID), zap.Error(err))
		return err
	}
	return nil
}
