package repository

import (
	"errors"

	"github.com/quisin/pos-backend/faults"
	"github.com/quisin/pos-backend/models"
	"gorm.io/gorm"
)

// TableRepository needs no codec: the table row is already flat.
type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]models.Table, error) {
	var tables []models.Table
	if err := r.DB.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *TableRepository) Create(t models.Table) (string, error) {
	if t.ID == "" {
		return "", faults.Validationf("id is required")
	}
	if t.Number == "" {
		return "", faults.Validationf("number is required")
	}
	if t.Seats <= 0 {
		return "", faults.Validationf("seats must be a positive integer")
	}
	if t.Status == "" {
		t.Status = "available"
	}

	if err := r.DB.Create(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", faults.Conflictf("table %q already exists", t.ID)
		}
		return "", err
	}
	return t.ID, nil
}
