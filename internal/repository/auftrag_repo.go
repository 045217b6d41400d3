package repository

import (
	"gorm.io/gorm"

	"gastrogrid/internal/models"
)

// AuftragRepository handles job database operations.
type AuftragRepository struct {
	db *gorm.DB
}

func NewAuftragRepository(db *gorm.DB) *AuftragRepository {
	return &AuftragRepository{db: db}
}

// Create inserts a new job.
func (r *AuftragRepository) Create(job *models.Auftrag) error {
	return r.db.Create(job).Error
}

// Save writes all fields of the job, scalars and extras together.
func (r *AuftragRepository) Save(job *models.Auftrag) error {
	return r.db.Save(job).Error
}

// Delete removes a job.
func (r *AuftragRepository) Delete(job *models.Auftrag) error {
	return r.db.Delete(job).Error
}

// FindByID returns a job by ID.
func (r *AuftragRepository) FindByID(id uint) (*models.Auftrag, error) {
	var job models.Auftrag
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindByEvent returns the jobs of an event, open ones first, then by
// creation order.
func (r *AuftragRepository) FindByEvent(eventID uint) ([]models.Auftrag, error) {
	var jobs []models.Auftrag
	err := r.db.Where("event_id = ?", eventID).
		Order("is_completed ASC, created_at ASC, id ASC").
		Find(&jobs).Error
	return jobs, err
}

// CountOpenByEvent counts jobs of an event that are not completed.
func (r *AuftragRepository) CountOpenByEvent(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Auftrag{}).
		Where("event_id = ? AND is_completed = ?", eventID, false).
		Count(&count).Error
	return count, err
}
