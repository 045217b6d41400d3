// Package auftrag carries the job lifecycle: the status/timer state
// machine, progress derivation and the controllers that bind both to
// the persisted entities.
package auftrag

import (
	"fmt"
	"time"

	"gastrogrid/internal/models"
)

// Apply runs one status transition on the in-memory job. Every
// transition is legal, including self-transitions; the rules are about
// time accounting, not about rejecting moves:
//
//  1. leaving inProgress banks the elapsed interval into
//     TotalProcessingTime, judged by the status as it was before this
//     call;
//  2. entering inProgress starts a new interval, any other target
//     clears the start timestamp;
//  3. IsCompleted tracks the completed status.
//
// A self-transition into inProgress banks the running interval and
// immediately opens a new one: the total is unchanged, only the
// timestamp refreshes. Persisting is the controller's job.
func Apply(job *models.Auftrag, newStatus models.AuftragStatus, now time.Time) {
	if job.Status() == models.StatusInProgress && job.LastStartTime != nil {
		elapsed := now.Sub(*job.LastStartTime).Seconds()
		if elapsed > 0 {
			job.TotalProcessingTime += elapsed
		}
	}

	if newStatus == models.StatusInProgress {
		t := now
		job.LastStartTime = &t
	} else {
		job.LastStartTime = nil
	}

	job.SetStatusValue(newStatus)
	job.IsCompleted = newStatus == models.StatusCompleted
}

// CurrentTotalTime returns the accumulated seconds plus the running
// interval when the job is in progress. Pure read for live display;
// never mutates the job.
func CurrentTotalTime(job *models.Auftrag, now time.Time) float64 {
	total := job.TotalProcessingTime
	if job.Status() == models.StatusInProgress && job.LastStartTime != nil {
		if live := now.Sub(*job.LastStartTime).Seconds(); live > 0 {
			total += live
		}
	}
	return total
}

// FormatSeconds renders accumulated seconds as HH:MM:SS.
func FormatSeconds(totalSeconds float64) string {
	s := int(totalSeconds)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}
