package repository

import (
	"gorm.io/gorm"

	"gastrogrid/internal/models"
)

// EventRepository handles event database operations.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepository) Save(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes the event row only. Its jobs stay in place and keep
// their event_id; cleanup of orphaned jobs is a caller decision.
func (r *EventRepository) Delete(event *models.Event) error {
	return r.db.Delete(event).Error
}

func (r *EventRepository) FindByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindAll returns events ordered by start time, newest planning first,
// optionally filtered by a title/number/location search.
func (r *EventRepository) FindAll(query string) ([]models.Event, error) {
	var events []models.Event
	db := r.db.Model(&models.Event{})
	if query != "" {
		search := "%" + query + "%"
		db = db.Where("title LIKE ? OR event_number LIKE ? OR location LIKE ?", search, search, search)
	}
	err := db.Order("event_start_time IS NULL, event_start_time ASC, id ASC").Find(&events).Error
	return events, err
}
