package models

import "time"

// Auftrag maps to the `auftraege` table. A job belongs to exactly one
// Event and carries the status/timer lifecycle plus a serialized extras
// document in the `extras` text column.
type Auftrag struct {
	ID                  uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID             uint       `gorm:"column:event_id;index:idx_auftraege_event" json:"event_id"`
	StatusRaw           string     `gorm:"column:status;size:30;default:'pending'" json:"status"`
	EmployeeName        string     `gorm:"column:employee_name;size:200" json:"employee_name"`
	ProcessingDetails   string     `gorm:"column:processing_details;type:text" json:"processing_details"`
	TotalProcessingTime float64    `gorm:"column:total_processing_time;default:0" json:"total_processing_time"`
	LastStartTime       *time.Time `gorm:"column:last_start_time" json:"last_start_time"`
	IsCompleted         bool       `gorm:"column:is_completed;default:false" json:"is_completed"`
	Extras              string     `gorm:"column:extras;type:text" json:"extras"`
	StorageLocation     string     `gorm:"column:storage_location;size:200" json:"storage_location"`
	StorageNote         string     `gorm:"column:storage_note;size:200" json:"storage_note"`
	DeliveryTemperature bool       `gorm:"column:delivery_temperature;default:false" json:"delivery_temperature"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Auftrag) TableName() string {
	return "auftraege"
}

// Status reads the raw column through the enum adapter.
func (a *Auftrag) Status() AuftragStatus {
	return ParseStatus(a.StatusRaw)
}

// SetStatusValue writes the enum back to the raw column. Status
// accounting belongs to the status machine; this only converts.
func (a *Auftrag) SetStatusValue(s AuftragStatus) {
	a.StatusRaw = string(s)
}

// DisplayTitle is the "what to do" headline: processing details first,
// then a fallback built from the employee name.
func (a *Auftrag) DisplayTitle() string {
	if a.ProcessingDetails != "" {
		return a.ProcessingDetails
	}
	if a.EmployeeName != "" {
		return "Auftrag für " + a.EmployeeName
	}
	return "Auftrag"
}
