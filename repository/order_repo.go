package repository

import (
	"errors"

	"github.com/quisin/pos-backend/codec"
	"github.com/quisin/pos-backend/faults"
	"github.com/quisin/pos-backend/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB    *gorm.DB
	codec codec.OrderCodec
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) List() ([]models.Order, error) {
	var rows []models.OrderRow
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		o, err := r.codec.Decode(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Create inserts one order. The table and waiter ids are stored as given;
// nothing checks that they point at existing records.
func (r *OrderRepository) Create(o models.Order) (string, error) {
	if o.ID == "" {
		return "", faults.Validationf("id is required")
	}
	if o.TableID == "" {
		return "", faults.Validationf("tableId is required")
	}
	if o.Items == nil {
		return "", faults.Validationf("items is required")
	}
	if o.Status == "" {
		return "", faults.Validationf("status is required")
	}
	if o.Total < 0 || o.Tax < 0 || o.Subtotal < 0 {
		return "", faults.Validationf("total, tax and subtotal must not be negative")
	}
	if o.WaiterID == "" {
		return "", faults.Validationf("waiterId is required")
	}
	if o.WaiterName == "" {
		return "", faults.Validationf("waiterName is required")
	}

	row, err := r.codec.Encode(o)
	if err != nil {
		return "", err
	}

	if err := r.DB.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", faults.Conflictf("order %q already exists", o.ID)
		}
		return "", err
	}
	return row.ID, nil
}
