package codec

import "github.com/quisin/pos-backend/models"

// StaffCodec flattens the nested shift sub-record into the three shift
// columns and reassembles it on read.
type StaffCodec struct{}

func (StaffCodec) Encode(s models.Staff) (models.StaffRow, error) {
	days, err := encodeStringList(s.Shift.Days)
	if err != nil {
		return models.StaffRow{}, err
	}

	return models.StaffRow{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		ShiftStart: optText(s.Shift.Start),
		ShiftEnd:   optText(s.Shift.End),
		ShiftDays:  days,
		Username:   s.Username,
		Password:   s.Password,
		Status:     s.Status,
	}, nil
}

func (StaffCodec) Decode(row models.StaffRow) (models.Staff, error) {
	days, err := decodeStringList("shift_days", row.ShiftDays)
	if err != nil {
		return models.Staff{}, err
	}

	return models.Staff{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Phone: row.Phone,
		Shift: models.Shift{
			Start: textOr(row.ShiftStart),
			End:   textOr(row.ShiftEnd),
			Days:  days,
		},
		Username:  row.Username,
		Password:  row.Password,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}, nil
}
