package auftrag

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"gastrogrid/internal/extras"
	"gastrogrid/internal/models"
	"gastrogrid/internal/repository"
)

// ErrEmployeeRequired rejects creating a job without an employee name.
var ErrEmployeeRequired = errors.New("employee name must not be empty")

// JobController orchestrates the status machine and the checklist
// engine against a persisted job. Every mutating intent mutates the
// in-memory job, re-encodes its extras document, and saves in one go.
// A failed save is returned to the caller; the in-memory change stays,
// so memory and store diverge until the next successful save.
type JobController struct {
	repo   *repository.AuftragRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewJobController(repo *repository.AuftragRepository, logger *zap.Logger) *JobController {
	return &JobController{repo: repo, logger: logger, now: time.Now}
}

// WithClock overrides the controller's clock. Tests only.
func (c *JobController) WithClock(now func() time.Time) *JobController {
	c.now = now
	return c
}

// NewJobParams are the create-job form fields.
type NewJobParams struct {
	EventID             uint
	EmployeeName        string
	ProcessingDetails   string
	StorageLocation     string
	StorageNote         string
	DeliveryTemperature bool
	InitialStatus       models.AuftragStatus
	Extras              extras.JobExtras
}

// CreateJob builds and persists a new job with a zeroed timer. The
// initial status runs through the machine so the start timestamp and
// completion flag are consistent from the first save.
func (c *JobController) CreateJob(p NewJobParams) (*models.Auftrag, error) {
	if strings.TrimSpace(p.EmployeeName) == "" {
		return nil, ErrEmployeeRequired
	}

	job := &models.Auftrag{
		EventID:             p.EventID,
		EmployeeName:        strings.TrimSpace(p.EmployeeName),
		ProcessingDetails:   p.ProcessingDetails,
		StorageLocation:     p.StorageLocation,
		StorageNote:         p.StorageNote,
		DeliveryTemperature: p.DeliveryTemperature,
	}
	Apply(job, p.InitialStatus, c.now())

	raw, err := extras.EncodeJobExtras(p.Extras)
	if err != nil {
		c.logger.Error("encode extras for new auftrag failed", zap.Error(err))
	} else {
		job.Extras = raw
	}

	if err := c.repo.Create(job); err != nil {
		c.logger.Error("create auftrag failed", zap.Error(err))
		return nil, err
	}
	return job, nil
}

// DeleteJob removes the job from the store.
func (c *JobController) DeleteJob(job *models.Auftrag) error {
	if err := c.repo.Delete(job); err != nil {
		c.logger.Error("delete auftrag failed", zap.Uint("auftrag_id", job.ID), zap.Error(err))
		return err
	}
	return nil
}

// LoadExtras decodes the job's extras column, defaulting on absent or
// malformed text.
func (c *JobController) LoadExtras(job *models.Auftrag) extras.JobExtras {
	return extras.DecodeJobExtras(job.Extras)
}

// SetStatus runs the lifecycle transition and persists it.
func (c *JobController) SetStatus(job *models.Auftrag, newStatus models.AuftragStatus) error {
	Apply(job, newStatus, c.now())
	return c.save(job)
}

// CurrentTotalTime is the live timer read used by the display tick.
func (c *JobController) CurrentTotalTime(job *models.Auftrag) float64 {
	return CurrentTotalTime(job, c.now())
}

// AddStep appends a checklist step. Adding a step always reopens
// completion, even on an otherwise finished job.
func (c *JobController) AddStep(job *models.Auftrag, doc *extras.JobExtras, title string) error {
	if !extras.AddStep(&doc.Checklist, title) {
		return nil
	}
	c.reconcile(job, doc)
	return c.saveWithExtras(job, doc)
}

// ToggleStep flips one step and reconciles completion. Unknown ids do
// not touch the store.
func (c *JobController) ToggleStep(job *models.Auftrag, doc *extras.JobExtras, id string) error {
	if !extras.ToggleStep(doc.Checklist, id) {
		return nil
	}
	c.reconcile(job, doc)
	return c.saveWithExtras(job, doc)
}

// DeleteStep removes one step and reconciles completion.
func (c *JobController) DeleteStep(job *models.Auftrag, doc *extras.JobExtras, id string) error {
	if !extras.DeleteStep(&doc.Checklist, id) {
		return nil
	}
	c.reconcile(job, doc)
	return c.saveWithExtras(job, doc)
}

// ApplyTemplate inserts a template's steps and reopens completion.
func (c *JobController) ApplyTemplate(job *models.Auftrag, doc *extras.JobExtras, steps []string, mode extras.TemplateMode) error {
	extras.ApplyTemplate(&doc.Checklist, steps, mode)
	c.reconcile(job, doc)
	return c.saveWithExtras(job, doc)
}

// MarkCompleted is the professional-mode "I'm done": every step is
// ticked and the job transitions to completed, banking running time.
func (c *JobController) MarkCompleted(job *models.Auftrag, doc *extras.JobExtras) error {
	extras.MarkAllDone(doc.Checklist)
	Apply(job, models.StatusCompleted, c.now())
	return c.saveWithExtras(job, doc)
}

// ResetCompletion reopens every step; a completed job drops back to
// pending.
func (c *JobController) ResetCompletion(job *models.Auftrag, doc *extras.JobExtras) error {
	extras.ResetAll(doc.Checklist)
	if job.Status() == models.StatusCompleted {
		Apply(job, models.StatusPending, c.now())
	}
	return c.saveWithExtras(job, doc)
}

// SetTrainingMode flips between step-by-step and professional mode.
func (c *JobController) SetTrainingMode(job *models.Auftrag, doc *extras.JobExtras, on bool) error {
	doc.TrainingMode = on
	return c.saveWithExtras(job, doc)
}

// SaveExtras persists the document as edited elsewhere (pins, header
// metadata, line items).
func (c *JobController) SaveExtras(job *models.Auftrag, doc *extras.JobExtras) error {
	return c.saveWithExtras(job, doc)
}

// Progress derives the progress-bar ratio for the job.
func (c *JobController) Progress(job *models.Auftrag, doc *extras.JobExtras) float64 {
	return ProgressRatio(extras.DoneCount(doc.Checklist), len(doc.Checklist), job.Status())
}

// reconcile keeps the status authoritative over completion: a fully
// ticked checklist drives the job to completed through the machine,
// an unticked one reopens a completed job to pending. IsCompleted is
// then always equivalent to status == completed at rest.
func (c *JobController) reconcile(job *models.Auftrag, doc *extras.JobExtras) {
	allDone := extras.AllDone(doc.Checklist)
	switch {
	case allDone && job.Status() != models.StatusCompleted:
		Apply(job, models.StatusCompleted, c.now())
	case !allDone && job.Status() == models.StatusCompleted:
		Apply(job, models.StatusPending, c.now())
	}
}

func (c *JobController) save(job *models.Auftrag) error {
	if err := c.repo.Save(job); err != nil {
		c.logger.Error("save auftrag failed", zap.Uint("auftrag_id", job.ID), zap.Error(err))
		return err
	}
	return nil
}

func (c *JobController) saveWithExtras(job *models.Auftrag, doc *extras.JobExtras) error {
	raw, err := extras.EncodeJobExtras(*doc)
	if err != nil {
		// Leave the stored document as it was; scalars still save.
		c.logger.Error("encode auftrag extras failed", zap.Uint("auftrag_id", job.ID), zap.Error(err))
	} else {
		job.Extras = raw
	}
	return c.save(job)
}
