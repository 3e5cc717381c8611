package model

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetJson = `{
	"title": "Spring 2024",
	"majors": {
		"informatics": {
			"algebra": {
				"01": {
					"teacher": "Ana",
					"schedules": [
						{"startDate": 240101, "endDate": 240310, "dayOfWeek": 2, "startSession": 1, "endSession": 2},
						{"startDate": 240101, "endDate": 240310, "dayOfWeek": 8, "startSession": 3, "endSession": 4}
					]
				}
			}
		},
		"mathematics": {
			"algebra": {
				"01": {
					"teacher": "Ana",
					"schedules": [
						{"startDate": 240101, "endDate": 240310, "dayOfWeek": 2, "startSession": 1, "endSession": 2}
					]
				},
				"02": {
					"teacher": "Luis",
					"schedules": [
						{"startDate": 240108, "endDate": 240401, "dayOfWeek": 4, "dayOfWeekStandard": 5, "startSession": 7, "endSession": 9}
					]
				}
			}
		}
	}
}`

func TestDatasetFromBytes(t *testing.T) {
	t.Run("Valid dataset", func(t *testing.T) {
		//** Act
		dataset, err := DatasetFromBytes([]byte(datasetJson))

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, "Spring 2024", dataset.Title)
		assert.Equal(t, firstMonday, dataset.MinDate)
		assert.Equal(t, "2024-04-01", dataset.MaxDate.String())

		informatics, ok := dataset.Subject(SubjectKey{Major: "informatics", Subject: "algebra"})
		require.True(t, ok)
		section := informatics.Sections["01"]
		assert.Equal(t, "Ana", section.Teacher)
		assert.Equal(t, []string{"informatics", "mathematics"}, section.Majors)
		assert.Equal(t, time.Monday, section.Blocks[0].DayOfWeek)
		assert.Equal(t, time.Sunday, section.Blocks[1].DayOfWeek)
		assert.Equal(t, 10.0, section.Blocks[0].Weeks())

		mathematics, ok := dataset.Subject(SubjectKey{Major: "mathematics", Subject: "algebra"})
		require.True(t, ok)
		assert.Equal(t, []string{"01", "02"}, mathematics.Codes())
		assert.Equal(t, time.Friday, mathematics.Sections["02"].Blocks[0].DayOfWeek) // Standard encoding wins
		assert.Equal(t, []string{"mathematics"}, mathematics.Sections["02"].Majors)
	})

	t.Run("Explicit calendar bounds", func(t *testing.T) {
		//** Act
		dataset, err := DatasetFromBytes([]byte(`{"title": "empty", "minDate": 240101, "maxDate": 240107, "majors": {}}`))

		//** Assert
		require.NoError(t, err)
		assert.Len(t, dataset.Dates(), 7)
	})

	t.Run("Invalid blocks", func(t *testing.T) {
		schedules := map[string]string{
			"Sessions reversed": `{"startDate": 240101, "endDate": 240310, "dayOfWeek": 2, "startSession": 4, "endSession": 2}`,
			"Dates reversed":    `{"startDate": 240310, "endDate": 240101, "dayOfWeek": 2, "startSession": 1, "endSession": 2}`,
			"Unknown weekday":   `{"startDate": 240101, "endDate": 240310, "dayOfWeek": 9, "startSession": 1, "endSession": 2}`,
			"Invalid date":      `{"startDate": 240230, "endDate": 240310, "dayOfWeek": 2, "startSession": 1, "endSession": 2}`,
			"Session zero":      `{"startDate": 240101, "endDate": 240310, "dayOfWeek": 2, "startSession": 0, "endSession": 2}`,
		}
		for name, schedule := range schedules {
			t.Run(name, func(t *testing.T) {
				//** Arrange
				input := `{"majors": {"informatics": {"algebra": {"01": {"teacher": "Ana", "schedules": [` + schedule + `]}}}}}`

				//** Act
				_, err := DatasetFromBytes([]byte(input))

				//** Assert
				var blockErr InvalidBlockError
				require.ErrorAs(t, err, &blockErr)
				assert.Equal(t, "algebra", blockErr.Subject)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("Empty calendar", func(t *testing.T) {
		_, err := DatasetFromBytes([]byte(`{"majors": {}}`))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Malformed json", func(t *testing.T) {
		_, err := DatasetFromBytes([]byte(`{"majors": `))
		assert.Error(t, err)
	})
}

func TestDatasetFromJson(t *testing.T) {
	//** Arrange
	file := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(file, []byte(datasetJson), 0o644))

	//** Act
	dataset, err := DatasetFromJson(file)
	_, missing := DatasetFromJson(filepath.Join(t.TempDir(), "missing.json"))

	//** Assert
	require.NoError(t, err)
	assert.Len(t, dataset.Majors, 2)
	assert.Error(t, missing)
}
