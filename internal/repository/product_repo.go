package repository

import (
	"gorm.io/gorm"

	"gastrogrid/internal/models"
)

// ProductRepository handles knowledge-base product operations.
// Products are read-mostly reference data seeded once at first run.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Count returns the number of imported products.
func (r *ProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

// BulkInsert creates products together with their ingredients in one
// transaction. Callers dedupe beforehand; primary keys must be unique.
func (r *ProductRepository) BulkInsert(products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(products, 200).Error
	})
}

// FindAll returns products with an optional name/category search.
func (r *ProductRepository) FindAll(query string) ([]models.Product, error) {
	var products []models.Product
	db := r.db.Model(&models.Product{})
	if query != "" {
		search := "%" + query + "%"
		db = db.Where("name LIKE ? OR category LIKE ?", search, search)
	}
	err := db.Order("name ASC").Find(&products).Error
	return products, err
}

// FindByID returns one product with its ingredients preloaded.
func (r *ProductRepository) FindByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Ingredients").Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs resolves a pin list. Missing IDs are simply absent from
// the result; the caller decides how to render them.
func (r *ProductRepository) FindByIDs(ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := r.db.Where("id IN ?", ids).Find(&products).Error
	return products, err
}
