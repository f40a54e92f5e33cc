package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO = "2006-01-02"

	MessageDateConstraints = "Dates should be of the format YYYY-MM-DD and be a valid calendar date"
)

// Date is a calendar day without a time component.
type Date struct {
	time.Time
}

func ParseDate(v string) (Date, error) {
	t, err := time.Parse(layoutISO, strings.TrimSpace(v))
	if err != nil {
		return Date{}, errors.New(MessageDateConstraints)
	}
	return Date{Time: t}, nil
}

func (d *Date) MarshalJSON() ([]byte, error) {
	if d == nil || d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layoutISO)
}
