// Package codec maps between the flat storage rows and the nested domain
// objects. Sequence fields live in the rows as JSON text, boolean fields as
// 0/1 integers; both directions are lossless for valid records.
package codec

import (
	"encoding/json"

	"github.com/quisin/pos-backend/faults"
	"github.com/quisin/pos-backend/models"
)

// encodeStringList marshals a slice into its JSON column text. A nil slice
// stays NULL so untouched optional columns look the same as legacy rows.
func encodeStringList(list []string) (*string, error) {
	if list == nil {
		return nil, nil
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	s := string(raw)
	return &s, nil
}

// decodeStringList parses a JSON column back into a slice. Absent columns
// decode to an empty slice; present but unparseable text is corruption and
// surfaces as a decode fault.
func decodeStringList(column string, raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(*raw), &list); err != nil {
		return nil, faults.Decodef(err, "stored %s is not a valid JSON array", column)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

func flagToInt(f models.Flag) int {
	if f {
		return 1
	}
	return 0
}

func intToFlag(i int) models.Flag {
	return models.Flag(i != 0)
}

// optText maps an optional domain string to its column pointer, folding the
// empty string into NULL.
func optText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func textOr(raw *string) string {
	if raw == nil {
		return ""
	}
	return *raw
}
