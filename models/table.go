package models

import "time"

// Table has no nested fields, so one struct serves as both the domain and
// storage shape.
type Table struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Number    string    `gorm:"type:varchar(50);not null;column:number" json:"number"`
	Seats     int       `gorm:"not null;column:seats" json:"seats"`
	Location  *string   `gorm:"type:varchar(255);column:location" json:"location"`
	Status    string    `gorm:"type:varchar(50);default:'available';column:status" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Table) TableName() string {
	return "tables"
}
