package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gastrogrid/internal/models"
)

func TestParseStatus_KnownValues(t *testing.T) {
	for _, s := range models.AllStatuses() {
		assert.Equal(t, s, models.ParseStatus(string(s)))
	}
}

func TestParseStatus_FallsBackToPending(t *testing.T) {
	assert.Equal(t, models.StatusPending, models.ParseStatus(""))
	assert.Equal(t, models.StatusPending, models.ParseStatus("garbage"))
	assert.Equal(t, models.StatusPending, models.ParseStatus("INPROGRESS"))
}

func TestAuftrag_StatusAdapter(t *testing.T) {
	job := models.Auftrag{StatusRaw: "legacy-value"}
	assert.Equal(t, models.StatusPending, job.Status())

	job.SetStatusValue(models.StatusOnHold)
	assert.Equal(t, "onHold", job.StatusRaw)
	assert.Equal(t, models.StatusOnHold, job.Status())
}

func TestAuftrag_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Auftrag", (&models.Auftrag{}).DisplayTitle())
	assert.Equal(t, "Auftrag für Alex", (&models.Auftrag{EmployeeName: "Alex"}).DisplayTitle())
	assert.Equal(t, "Spätzle ziehen", (&models.Auftrag{EmployeeName: "Alex", ProcessingDetails: "Spätzle ziehen"}).DisplayTitle())
}

func TestStatusDisplayNames(t *testing.T) {
	cases := map[models.AuftragStatus]string{
		models.StatusPending:    "Offen",
		models.StatusInProgress: "In Arbeit",
		models.StatusOnHold:     "Pausiert",
		models.StatusCompleted:  "Fertig",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.DisplayName())
	}
}
