package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EmailList stores an ordered list of email addresses as a JSON text column.
type EmailList []string

func (l EmailList) Value() (driver.Value, error) {
	if l == nil {
		l = EmailList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *EmailList) Scan(value interface{}) error {
	if value == nil {
		*l = EmailList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into EmailList", value)
	}
	if len(raw) == 0 {
		*l = EmailList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}
