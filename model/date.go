package model

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire format for every date the API reads or writes.
const DateLayout = "2006-01-02"

// Date is a calendar day. The wrapped time is always midnight UTC so two
// Dates compare equal exactly when they name the same day.
type Date struct {
	time.Time
}

// NewDate drops the time-of-day and location of t, keeping its calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return err
	}
	*d = NewDate(t)
	return nil
}
