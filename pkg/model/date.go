package model

import (
	"fmt"
	"time"
)

// Date is a calendar day counted from 1970-01-01 in the institution-local calendar
type Date int

const (
	daysPerWeek  = 7
	secondsInDay = 24 * 60 * 60
	dateLayout   = "2006-01-02"
)

func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsInDay)
}

// ParseCompactDate converts yymmdd (e.g. 240115) or yyyymmdd (e.g. 20240115) integers into a Date
func ParseCompactDate(compact int) (Date, error) {
	year, month, day := compact/10000, (compact/100)%100, compact%100
	if compact < 1_000_000 {
		year += 2000
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if compact <= 0 || t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return 0, fmt.Errorf("invalid compact date %d", compact)
	}
	return DateOf(t), nil
}

func (date Date) Time() time.Time {
	return time.Unix(int64(date)*secondsInDay, 0).UTC()
}

// 1970-01-01 was a Thursday
func (date Date) Weekday() time.Weekday {
	return time.Weekday(((int(date)+int(time.Thursday))%daysPerWeek + daysPerWeek) % daysPerWeek)
}

func (date Date) String() string {
	return date.Time().Format(dateLayout)
}

func (date Date) MarshalText() ([]byte, error) {
	return []byte(date.String()), nil
}

func (date *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(dateLayout, string(text))
	if err != nil {
		return err
	}
	*date = DateOf(t)
	return nil
}
