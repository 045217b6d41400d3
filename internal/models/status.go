package models

// AuftragStatus is the lifecycle state of a job. It is stored as a raw
// string column so legacy rows with unknown values degrade to pending
// instead of failing the load.
type AuftragStatus string

const (
	StatusPending    AuftragStatus = "pending"
	StatusInProgress AuftragStatus = "inProgress"
	StatusOnHold     AuftragStatus = "onHold"
	StatusCompleted  AuftragStatus = "completed"
)

// AllStatuses lists every status in display order.
func AllStatuses() []AuftragStatus {
	return []AuftragStatus{StatusPending, StatusInProgress, StatusOnHold, StatusCompleted}
}

// ParseStatus maps a raw column value to a status, falling back to
// pending for empty or unknown input.
func ParseStatus(raw string) AuftragStatus {
	switch AuftragStatus(raw) {
	case StatusPending, StatusInProgress, StatusOnHold, StatusCompleted:
		return AuftragStatus(raw)
	default:
		return StatusPending
	}
}

// DisplayName returns the German UI label for the status.
func (s AuftragStatus) DisplayName() string {
	switch s {
	case StatusInProgress:
		return "In Arbeit"
	case StatusOnHold:
		return "Pausiert"
	case StatusCompleted:
		return "Fertig"
	default:
		return "Offen"
	}
}
