package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	invalid := map[string]func(options *Options){
		"No periods":          func(options *Options) { options.Periods = 0 },
		"Too many periods":    func(options *Options) { options.Periods = maxPeriods + 1 },
		"Negative threshold":  func(options *Options) { options.Threshold = -1 },
		"Shift past last day": func(options *Options) { options.Shifts.Evening.End = 17 },
		"Reversed shift":      func(options *Options) { options.Shifts.Morning = Shift{Start: 6, End: 1} },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			//** Arrange
			options := DefaultOptions()
			mutate(&options)

			//** Act
			err := options.Validate()

			//** Assert
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseShiftPreference(t *testing.T) {
	cases := map[string]ShiftPreference{
		"":                            PreferNone,
		"none":                        PreferNone,
		"prefer-morning":              PreferMorning,
		" Prefer-Afternoon ":          PreferAfternoon,
		"prefer-evening":              PreferEvening,
		"refer-non-overlap":           PreferNone,
		"refer-non-overlap-morning":   PreferMorning,
		"refer-non-overlap-afternoon": PreferAfternoon,
		"refer-non-overlap-evening":   PreferEvening,
	}
	for name, expected := range cases {
		preference, err := ParseShiftPreference(name)
		assert.NoError(t, err, name)
		assert.Equal(t, expected, preference, name)
	}

	_, err := ParseShiftPreference("prefer-night")
	assert.Error(t, err)

	var preference ShiftPreference
	assert.NoError(t, preference.UnmarshalText([]byte("prefer-evening")))
	assert.Equal(t, "prefer-evening", preference.String())

	shift, ok := DefaultOptions().Shift(PreferAfternoon)
	assert.True(t, ok)
	assert.Equal(t, Shift{Start: 7, End: 12}, shift)
	_, ok = DefaultOptions().Shift(PreferNone)
	assert.False(t, ok)
}
