package repository

import (
	"gorm.io/gorm"

	"gastrogrid/internal/models"
)

// LexikonRepository handles glossary database operations.
type LexikonRepository struct {
	db *gorm.DB
}

func NewLexikonRepository(db *gorm.DB) *LexikonRepository {
	return &LexikonRepository{db: db}
}

// Count returns the number of imported glossary entries.
func (r *LexikonRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.LexikonEntry{}).Count(&count).Error
	return count, err
}

// BulkInsert creates glossary entries in one transaction.
func (r *LexikonRepository) BulkInsert(entries []models.LexikonEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(entries, 500).Error
	})
}

// FindAll returns glossary entries with an optional search.
func (r *LexikonRepository) FindAll(query string) ([]models.LexikonEntry, error) {
	var entries []models.LexikonEntry
	db := r.db.Model(&models.LexikonEntry{})
	if query != "" {
		search := "%" + query + "%"
		db = db.Where("name LIKE ? OR category LIKE ? OR code LIKE ?", search, search, search)
	}
	err := db.Order("name ASC").Find(&entries).Error
	return entries, err
}

// FindByCode returns one glossary entry.
func (r *LexikonRepository) FindByCode(code string) (*models.LexikonEntry, error) {
	var entry models.LexikonEntry
	if err := r.db.Where("code = ?", code).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByCodes resolves a pin list; missing codes are absent from the
// result.
func (r *LexikonRepository) FindByCodes(codes []string) ([]models.LexikonEntry, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var entries []models.LexikonEntry
	err := r.db.Where("code IN ?", codes).Find(&entries).Error
	return entries, err
}
