package models

import "time"

// Event maps to the `events` table. An event owns zero or more
// Aufträge; deleting an event leaves its jobs in place.
type Event struct {
	ID             uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title          string     `gorm:"column:title;size:300" json:"title"`
	EventNumber    string     `gorm:"column:event_number;size:100;index:idx_events_number" json:"event_number"`
	Location       string     `gorm:"column:location;size:300" json:"location"`
	Notes          string     `gorm:"column:notes;type:text" json:"notes"`
	SetupTime      *time.Time `gorm:"column:setup_time" json:"setup_time"`
	EventStartTime *time.Time `gorm:"column:event_start_time" json:"event_start_time"`
	EventEndTime   *time.Time `gorm:"column:event_end_time" json:"event_end_time"`
	Extras         string     `gorm:"column:extras;type:text" json:"extras"`
	Jobs           []Auftrag  `gorm:"foreignKey:EventID;constraint:OnDelete:NO ACTION" json:"jobs,omitempty"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
