package models

import (
	"encoding/json"
	"fmt"
)

// Flag is a boolean field that tolerates the loose typing of POS clients:
// JSON true/false, any number (nonzero means true) or null are all accepted.
// It always marshals back as a real JSON boolean.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(val)
	case float64:
		*f = Flag(val != 0)
	default:
		return fmt.Errorf("cannot use %T as boolean flag", v)
	}
	return nil
}
