package models

import "time"

// Shift is the nested work-schedule block on a staff member.
type Shift struct {
	Start string   `json:"start"`
	End   string   `json:"end"`
	Days  []string `json:"days"`
}

// Staff is the domain shape with the shift columns reassembled into a
// nested sub-record. The password travels in plain form; that matches the
// deployed behavior and is a known weak point, not something this layer fixes.
type Staff struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Shift     Shift     `json:"shift"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// StaffRow flattens the shift into three scalar columns; shift_days holds a
// JSON array of day names.
type StaffRow struct {
	ID         string  `gorm:"primaryKey;column:id"`
	Name       string  `gorm:"type:varchar(255);not null;column:name"`
	Email      string  `gorm:"type:varchar(255);not null;column:email"`
	Phone      *string `gorm:"type:varchar(50);column:phone"`
	ShiftStart *string `gorm:"type:varchar(50);column:shift_start"`
	ShiftEnd   *string `gorm:"type:varchar(50);column:shift_end"`
	ShiftDays  *string `gorm:"type:text;column:shift_days"`
	Username   string  `gorm:"type:varchar(255);not null;column:username"`
	Password   string  `gorm:"type:varchar(255);not null;column:password"`
	Status     string  `gorm:"type:varchar(50);default:'active';column:status"`
	CreatedAt  time.Time
}

func (StaffRow) TableName() string {
	return "staff"
}
