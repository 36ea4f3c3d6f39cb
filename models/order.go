package models

import (
	"encoding/json"
	"time"
)

// Order is the domain shape of a placed order. Line items are opaque to the
// backend: they are kept as raw JSON objects and never inspected, only stored
// and returned. WaiterName is a denormalized snapshot, not a live reference
// into the staff table.
type Order struct {
	ID            string            `json:"id"`
	TableID       string            `json:"tableId"`
	Items         []json.RawMessage `json:"items"`
	Status        string            `json:"status"`
	Total         float64           `json:"total"`
	Tax           float64           `json:"tax"`
	Subtotal      float64           `json:"subtotal"`
	WaiterID      string            `json:"waiterId"`
	WaiterName    string            `json:"waiterName"`
	EstimatedTime *string           `json:"estimatedTime"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// OrderRow stores the items sequence as one JSON array column.
type OrderRow struct {
	ID            string  `gorm:"primaryKey;column:id"`
	TableID       string  `gorm:"type:varchar(255);not null;column:table_id"`
	Items         string  `gorm:"type:text;not null;column:items"`
	Status        string  `gorm:"type:varchar(50);not null;column:status"`
	Total         float64 `gorm:"type:decimal(10,2);not null;column:total"`
	Tax           float64 `gorm:"type:decimal(10,2);not null;column:tax"`
	Subtotal      float64 `gorm:"type:decimal(10,2);not null;column:subtotal"`
	WaiterID      string  `gorm:"type:varchar(255);not null;column:waiter_id"`
	WaiterName    string  `gorm:"type:varchar(255);not null;column:waiter_name"`
	EstimatedTime *string `gorm:"type:varchar(50);column:estimated_time"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OrderRow) TableName() string {
	return "orders"
}
