package utils

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ISO-8601 with millisecond precision, the same shape as JavaScript's
// Date.prototype.toISOString once the value is in UTC.
const _isoMillisLayout = "2006-01-02T15:04:05.000Z07:00"

type Time struct {
	time.Time
}

func Now() Time {
	return Time{Time: time.Now()}
}

func (t Time) String() string {
	return t.UTC().Format(_isoMillisLayout)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, str)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Time) Value() (driver.Value, error) {
	return t.UTC(), nil
}

func (t *Time) Scan(src any) error {
	switch val := src.(type) {
	case time.Time:
		t.Time = val
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, val)
		if err != nil {
			return err
		}
		t.Time = parsed
	case nil:
		t.Time = time.Time{}
	default:
		return fmt.Errorf("invalid type for time: %T", src)
	}
	return nil
}
