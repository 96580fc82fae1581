package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// UTCTime is an instant that is always held in UTC once it leaves the driver.
// Text values written without a zone offset are read as UTC.
type UTCTime struct {
	time.Time
}

func NewUTCTime(t time.Time) UTCTime {
	return UTCTime{Time: t.UTC()}
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseUTC parses a stored timestamp, treating values without an offset as UTC.
func ParseUTC(s string) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

func (t *UTCTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
	case time.Time:
		t.Time = v.UTC()
	case string:
		parsed, err := ParseUTC(v)
		if err != nil {
			return err
		}
		t.Time = parsed
	case []byte:
		parsed, err := ParseUTC(string(v))
		if err != nil {
			return err
		}
		t.Time = parsed
	default:
		return fmt.Errorf("cannot scan %T into UTCTime", value)
	}
	return nil
}

func (t UTCTime) Value() (driver.Value, error) {
	return t.Time.UTC(), nil
}

// GormDataType maps the column to the dialect's timestamp type.
func (UTCTime) GormDataType() string {
	return "time"
}
