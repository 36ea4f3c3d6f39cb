// Package repository owns the list/create operations for each resource.
// Every repository receives its *gorm.DB through the constructor so tests can
// run against an in-memory database.
package repository

import (
	"github.com/quisin/pos-backend/codec"
	"github.com/quisin/pos-backend/faults"
	"github.com/quisin/pos-backend/models"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB    *gorm.DB
	codec codec.MenuItemCodec
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// List returns every menu item in storage order, decoded to domain form.
func (r *MenuItemRepository) List() ([]models.MenuItem, error) {
	var rows []models.MenuItemRow
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]models.MenuItem, 0, len(rows))
	for _, row := range rows {
		item, err := r.codec.Decode(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Create validates, encodes and inserts one menu item, returning the
// store-generated id.
func (r *MenuItemRepository) Create(item models.MenuItem) (uint, error) {
	if item.Name == "" {
		return 0, faults.Validationf("name is required")
	}
	if item.Price < 0 {
		return 0, faults.Validationf("price must not be negative")
	}
	if item.Currency == "" {
		return 0, faults.Validationf("currency is required")
	}
	if item.Category == "" {
		return 0, faults.Validationf("category is required")
	}
	if item.MealType == "" {
		return 0, faults.Validationf("mealType is required")
	}

	row, err := r.codec.Encode(item)
	if err != nil {
		return 0, err
	}
	row.ID = 0

	if err := r.DB.Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}
