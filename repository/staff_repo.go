package repository

import (
	"errors"

	"github.com/quisin/pos-backend/codec"
	"github.com/quisin/pos-backend/faults"
	"github.com/quisin/pos-backend/models"
	"gorm.io/gorm"
)

type StaffRepository struct {
	DB    *gorm.DB
	codec codec.StaffCodec
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) List() ([]models.Staff, error) {
	var rows []models.StaffRow
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}

	staff := make([]models.Staff, 0, len(rows))
	for _, row := range rows {
		s, err := r.codec.Decode(row)
		if err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, nil
}

// Create inserts one staff record under the caller-supplied id. A duplicate
// id fails the insert and leaves the existing record untouched.
func (r *StaffRepository) Create(s models.Staff) (string, error) {
	if s.ID == "" {
		return "", faults.Validationf("id is required")
	}
	if s.Name == "" {
		return "", faults.Validationf("name is required")
	}
	if s.Email == "" {
		return "", faults.Validationf("email is required")
	}
	if s.Username == "" {
		return "", faults.Validationf("username is required")
	}
	if s.Password == "" {
		return "", faults.Validationf("password is required")
	}
	if s.Status == "" {
		s.Status = "active"
	}

	row, err := r.codec.Encode(s)
	if err != nil {
		return "", err
	}

	if err := r.DB.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", faults.Conflictf("staff %q already exists", s.ID)
		}
		return "", err
	}
	return row.ID, nil
}

// FindActiveByCredentials matches username, password and status 'active'
// with exact case-sensitive equality. No match is reported as a single
// unauthorized fault; which field was wrong is deliberately not revealed.
func (r *StaffRepository) FindActiveByCredentials(username, password string) (models.Staff, error) {
	var row models.StaffRow
	err := r.DB.Where("username = ? AND password = ? AND status = ?", username, password, "active").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Staff{}, faults.Unauthorizedf("invalid credentials")
	}
	if err != nil {
		return models.Staff{}, err
	}
	return r.codec.Decode(row)
}
