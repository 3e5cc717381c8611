package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const maxPeriods = 64 // Period bitmasks are stored in a uint64

// Shift is an inclusive range of periods within a day
type Shift struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type Shifts struct {
	Morning   Shift `json:"morning"`
	Afternoon Shift `json:"afternoon"`
	Evening   Shift `json:"evening"`
}

type Options struct {
	Periods   int     // Number of periods in a day (N)
	Shifts    Shifts  // Shift bounds used by shift preferences
	Threshold float64 // Overlap above which a partial combination is abandoned
}

func DefaultOptions() Options {
	return Options{
		Periods: 16,
		Shifts: Shifts{
			Morning:   Shift{Start: 1, End: 6},
			Afternoon: Shift{Start: 7, End: 12},
			Evening:   Shift{Start: 13, End: 16},
		},
		Threshold: 12,
	}
}

func (options Options) Validate() error {
	if options.Periods < 1 || options.Periods > maxPeriods {
		return fmt.Errorf("%w: periods must be between 1 and %d: %d", ErrInvalidInput, maxPeriods, options.Periods)
	}
	if options.Threshold < 0 {
		return fmt.Errorf("%w: overlap threshold must not be negative: %v", ErrInvalidInput, options.Threshold)
	}
	for _, named := range []lo.Tuple2[string, Shift]{
		lo.T2("morning", options.Shifts.Morning),
		lo.T2("afternoon", options.Shifts.Afternoon),
		lo.T2("evening", options.Shifts.Evening),
	} {
		name, shift := named.Unpack()
		if shift.Start < 1 || shift.Start > shift.End || shift.End > options.Periods {
			return fmt.Errorf("%w: %v shift [%d, %d] is outside periods [1, %d]", ErrInvalidInput, name, shift.Start, shift.End, options.Periods)
		}
	}
	return nil
}

// PeriodList returns 1..N
func (options Options) PeriodList() []int {
	periods := make([]int, options.Periods)
	for i := range periods {
		periods[i] = i + 1
	}
	return periods
}

// ShiftPreference breaks ties between equally overlapping combinations
type ShiftPreference int

const (
	PreferNone ShiftPreference = iota
	PreferMorning
	PreferAfternoon
	PreferEvening
)

var shiftPreferenceNames = map[ShiftPreference]string{
	PreferNone:      "none",
	PreferMorning:   "prefer-morning",
	PreferAfternoon: "prefer-afternoon",
	PreferEvening:   "prefer-evening",
}

// Names used by earlier releases of the timetable front-end
var legacyShiftPreferenceNames = map[string]ShiftPreference{
	"refer-non-overlap":           PreferNone,
	"refer-non-overlap-morning":   PreferMorning,
	"refer-non-overlap-afternoon": PreferAfternoon,
	"refer-non-overlap-evening":   PreferEvening,
}

func ParseShiftPreference(name string) (ShiftPreference, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return PreferNone, nil
	}
	for preference, preferenceName := range shiftPreferenceNames {
		if preferenceName == name {
			return preference, nil
		}
	}
	if preference, ok := legacyShiftPreferenceNames[name]; ok {
		return preference, nil
	}
	return PreferNone, fmt.Errorf("%v is not a valid shift preference", name)
}

func (preference ShiftPreference) String() string {
	if name, ok := shiftPreferenceNames[preference]; ok {
		return name
	}
	return fmt.Sprintf("ShiftPreference(%d)", int(preference))
}

func (preference ShiftPreference) MarshalText() ([]byte, error) {
	return []byte(preference.String()), nil
}

func (preference *ShiftPreference) UnmarshalText(text []byte) error {
	parsed, err := ParseShiftPreference(string(text))
	if err != nil {
		return err
	}
	*preference = parsed
	return nil
}

// Shift returns the preferred shift, ok is false for PreferNone
func (options Options) Shift(preference ShiftPreference) (shift Shift, ok bool) {
	switch preference {
	case PreferMorning:
		return options.Shifts.Morning, true
	case PreferAfternoon:
		return options.Shifts.Afternoon, true
	case PreferEvening:
		return options.Shifts.Evening, true
	}
	return Shift{}, false
}
