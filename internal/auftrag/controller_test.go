package auftrag_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gastrogrid/internal/auftrag"
	"gastrogrid/internal/bootstrap"
	"gastrogrid/internal/extras"
	"gastrogrid/internal/models"
	"gastrogrid/internal/repository"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, bootstrap.Migrate(db))
	return db
}

func newTestJob(t *testing.T, c *auftrag.JobController, eventID uint) *models.Auftrag {
	t.Helper()
	job, err := c.CreateJob(auftrag.NewJobParams{
		EventID:       eventID,
		EmployeeName:  "Alex",
		InitialStatus: models.StatusPending,
		Extras:        extras.NewJobExtras(),
	})
	require.NoError(t, err)
	return job
}

func TestCreateJob_RequiresEmployee(t *testing.T) {
	db := testDB(t)
	c := auftrag.NewJobController(repository.NewAuftragRepository(db), zap.NewNop())

	_, err := c.CreateJob(auftrag.NewJobParams{EmployeeName: "   "})
	assert.ErrorIs(t, err, auftrag.ErrEmployeeRequired)
}

func TestCreateJob_InitializesTimerAndExtras(t *testing.T) {
	db := testDB(t)
	repo := repository.NewAuftragRepository(db)
	c := auftrag.NewJobController(repo, zap.NewNop())

	job := newTestJob(t, c, 1)
	assert.Zero(t, job.TotalProcessingTime)
	assert.Nil(t, job.LastStartTime)
	assert.Equal(t, models.StatusPending, job.Status())
	assert.False(t, job.IsCompleted)

	stored, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, extras.NewJobExtras(), extras.DecodeJobExtras(stored.Extras))
}

func TestSetStatus_PersistsTimerAccrual(t *testing.T) {
	db := testDB(t)
	repo := repository.NewAuftragRepository(db)

	now := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
	c := auftrag.NewJobController(repo, zap.NewNop()).WithClock(func() time.Time { return now })

	job := newTestJob(t, c, 1)

	require.NoError(t, c.SetStatus(job, models.StatusInProgress))
	now = now.Add(90 * time.Second)
	require.NoError(t, c.SetStatus(job, models.StatusOnHold))

	stored, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnHold, stored.Status())
	assert.Equal(t, 90.0, stored.TotalProcessingTime)
	assert.Nil(t, stored.LastStartTime)
}

func TestToggleStep_ReconcilesCompletionThroughMachine(t *testing.T) {
	db := testDB(t)
	repo := repository.NewAuftragRepository(db)

	now := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
	c := auftrag.NewJobController(repo, zap.NewNop()).WithClock(func() time.Time { return now })

	job := newTestJob(t, c, 1)
	doc := c.LoadExtras(job)
	require.NoError(t, c.AddStep(job, &doc, "a"))
	require.NoError(t, c.AddStep(job, &doc, "b"))

	// Start the timer, then tick off everything.
	require.NoError(t, c.SetStatus(job, models.StatusInProgress))
	now = now.Add(30 * time.Second)
	require.NoError(t, c.ToggleStep(job, &doc, doc.Checklist[0].ID))
	assert.Equal(t, models.StatusInProgress, job.Status())

	now = now.Add(30 * time.Second)
	require.NoError(t, c.ToggleStep(job, &doc, doc.Checklist[1].ID))
	assert.Equal(t, models.StatusCompleted, job.Status())
	assert.True(t, job.IsCompleted)
	assert.Equal(t, 60.0, job.TotalProcessingTime, "running time banked on completion")
	assert.Nil(t, job.LastStartTime)

	// Unticking a step reopens the job.
	require.NoError(t, c.ToggleStep(job, &doc, doc.Checklist[1].ID))
	assert.Equal(t, models.StatusPending, job.Status())
	assert.False(t, job.IsCompleted)

	stored, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status())
	assert.False(t, extras.DecodeJobExtras(stored.Extras).Checklist[1].IsDone)
}

func TestToggleStep_UnknownIDDoesNotSave(t *testing.T) {
	db := testDB(t)
	repo := repository.NewAuftragRepository(db)
	c := auftrag.NewJobController(repo, zap.NewNop())

	job := newTestJob(t, c, 1)
	doc := c.LoadExtras(job)
	require.NoError(t, c.SetStatus(job, models.StatusCompleted))

	// An unknown id must not trigger reconciliation either.
	require.NoError(t, c.ToggleStep(job, &doc, "missing"))
	assert.Equal(t, models.StatusCompleted, job.Status())
}

func TestAddStep_ReopensCompletedJob(t *testing.T) {
	db := testDB(t)
	repo := repository.NewAuftragRepository(db)
	c := auftrag.NewJobController(repo, zap.NewNop())

	job := newTestJob(t, c, 1)
	doc := c.LoadExtras(job)
	require.NoError(t, c.SetStatus(job, models.StatusCompleted))

	require.NoError(t, c.AddStep(job, &doc, "Nachschlag"))
	assert.Equal(t, models.StatusPending, job.Status())
	assert.False(t, job.IsCompleted)
}

func TestApplyTemplate_ReplaceResetsCompletion(t *testing.T) {
	db := testDB(t)
	repo := repository.NewAuftragRepository(db)
	c := auftrag.NewJobController(repo, zap.NewNop())

	job := newTestJob(t, c, 1)
	doc := c.LoadExtras(job)
	require.NoError(t, c.AddStep(job, &doc, "X"))
	require.NoError(t, c.MarkCompleted(job, &doc))
	require.True(t, job.IsCompleted)

	require.NoError(t, c.ApplyTemplate(job, &doc, []string{"A", "B", "C"}, extras.ModeReplace))

	require.Len(t, doc.Checklist, 3)
	for i, title := range []string{"A", "B", "C"} {
		assert.Equal(t, title, doc.Checklist[i].Title)
		assert.False(t, doc.Checklist[i].IsDone)
	}
	assert.False(t, job.IsCompleted)
	assert.Equal(t, models.StatusPending, job.Status())

	stored, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.Len(t, extras.DecodeJobExtras(stored.Extras).Checklist, 3)
}

func TestMarkCompletedAndReset(t *testing.T) {
	db := testDB(t)
	repo := repository.NewAuftragRepository(db)
	c := auftrag.NewJobController(repo, zap.NewNop())

	job := newTestJob(t, c, 1)
	doc := c.LoadExtras(job)
	require.NoError(t, c.AddStep(job, &doc, "a"))
	require.NoError(t, c.AddStep(job, &doc, "b"))

	require.NoError(t, c.MarkCompleted(job, &doc))
	assert.True(t, job.IsCompleted)
	assert.Equal(t, models.StatusCompleted, job.Status())
	assert.True(t, extras.AllDone(doc.Checklist))

	require.NoError(t, c.ResetCompletion(job, &doc))
	assert.False(t, job.IsCompleted)
	assert.Equal(t, models.StatusPending, job.Status())
	assert.Equal(t, 0, extras.DoneCount(doc.Checklist))
}

func TestSetTrainingMode_Persists(t *testing.T) {
	db := testDB(t)
	repo := repository.NewAuftragRepository(db)
	c := auftrag.NewJobController(repo, zap.NewNop())

	job := newTestJob(t, c, 1)
	doc := c.LoadExtras(job)
	require.True(t, doc.TrainingMode)

	require.NoError(t, c.SetTrainingMode(job, &doc, false))

	stored, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.False(t, extras.DecodeJobExtras(stored.Extras).TrainingMode)
}

func TestEventController_ChecklistFlow(t *testing.T) {
	db := testDB(t)
	repo := repository.NewEventRepository(db)
	c := auftrag.NewEventController(repo, zap.NewNop())

	event := &models.Event{Title: "Kantinentag"}
	require.NoError(t, c.CreateEvent(event))

	doc := c.LoadExtras(event)
	require.NoError(t, c.AddStep(event, &doc, "Anlieferung prüfen"))
	require.NoError(t, c.ToggleStep(event, &doc, doc.Checklist[0].ID))

	stored, err := repo.FindByID(event.ID)
	require.NoError(t, err)
	got := extras.DecodeEventExtras(stored.Extras)
	require.Len(t, got.Checklist, 1)
	assert.True(t, got.Checklist[0].IsDone)

	require.NoError(t, c.ClearChecklist(event, &doc))
	stored, err = repo.FindByID(event.ID)
	require.NoError(t, err)
	assert.Empty(t, extras.DecodeEventExtras(stored.Extras).Checklist)
}

func TestEventController_RequiresTitle(t *testing.T) {
	db := testDB(t)
	c := auftrag.NewEventController(repository.NewEventRepository(db), zap.NewNop())
	assert.ErrorIs(t, c.CreateEvent(&models.Event{Title: " "}), auftrag.ErrTitleRequired)
}
