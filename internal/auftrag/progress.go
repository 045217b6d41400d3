package auftrag

import "gastrogrid/internal/models"

// ProgressRatio derives the progress-bar value for a job. With a
// checklist it is simply done/total; without one it falls back to a
// status-keyed constant so the bar still signals where the job stands.
func ProgressRatio(done, total int, status models.AuftragStatus) float64 {
	if total > 0 {
		return float64(done) / float64(total)
	}
	switch status {
	case models.StatusInProgress:
		return 0.55
	case models.StatusOnHold:
		return 0.35
	case models.StatusCompleted:
		return 1.0
	default:
		return 0.15
	}
}
