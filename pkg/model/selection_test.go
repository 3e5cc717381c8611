package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection(t *testing.T) {
	t.Run("With copies on write", func(t *testing.T) {
		//** Arrange
		original := Selection{"informatics": {"algebra": {Displayed: true, ActiveSection: "01"}}}

		//** Act
		updated := original.With(SubjectKey{Major: "informatics", Subject: "physics"}, SubjectSelection{Displayed: true})

		//** Assert
		assert.Len(t, original["informatics"], 1)
		assert.Len(t, updated["informatics"], 2)
		assert.Equal(t, "01", updated.State(SubjectKey{Major: "informatics", Subject: "algebra"}).ActiveSection)
	})

	t.Run("Apply marks chosen sections", func(t *testing.T) {
		//** Arrange
		original := Selection{
			"informatics": {"algebra": {Displayed: false, ActiveSection: "01"}},
			"mathematics": {"calculus": {Displayed: true, ActiveSection: "03"}},
		}

		//** Act
		updated := original.Apply([]ChosenSection{
			{Major: "informatics", Subject: "algebra", Section: "02"},
			{Major: "physics", Subject: "optics", Section: "01"},
		})

		//** Assert
		assert.Equal(t, SubjectSelection{Displayed: false, ActiveSection: "01"}, original["informatics"]["algebra"])
		assert.NotContains(t, original, "physics")
		assert.Equal(t, SubjectSelection{Displayed: true, ActiveSection: "02"}, updated["informatics"]["algebra"])
		assert.Equal(t, SubjectSelection{Displayed: true, ActiveSection: "01"}, updated["physics"]["optics"])
		assert.Equal(t, []SubjectKey{
			{Major: "informatics", Subject: "algebra"},
			{Major: "mathematics", Subject: "calculus"},
			{Major: "physics", Subject: "optics"},
		}, updated.Displayed())
	})

	t.Run("Nil selection", func(t *testing.T) {
		var selection Selection
		assert.Empty(t, selection.Displayed())
		assert.Equal(t, SubjectSelection{}, selection.State(SubjectKey{Major: "a", Subject: "b"}))
		assert.Len(t, selection.With(SubjectKey{Major: "a", Subject: "b"}, SubjectSelection{Displayed: true}).Displayed(), 1)
	})
}

func TestParseSubjectKey(t *testing.T) {
	key, err := ParseSubjectKey("informatics/data structures/II")
	require.NoError(t, err)
	assert.Equal(t, SubjectKey{Major: "informatics", Subject: "data structures/II"}, key)
	assert.Equal(t, "informatics/data structures/II", key.String())

	for _, text := range []string{"", "informatics", "/algebra", "informatics/"} {
		_, err := ParseSubjectKey(text)
		assert.Error(t, err, text)
	}
}

func TestCursor(t *testing.T) {
	//** Arrange
	var cursor Cursor

	//** Act
	first := cursor.Next(PreferNone)
	second := first.Next(PreferNone)
	third := second.Next(PreferNone)
	switched := third.Next(PreferMorning)
	repeated := switched.Next(PreferMorning)
	reset := repeated.Reset().Next(PreferMorning)

	//** Assert
	assert.Equal(t, []int{0, 1, 2, 0, 1, 0}, []int{first.Ordinal, second.Ordinal, third.Ordinal, switched.Ordinal, repeated.Ordinal, reset.Ordinal})
	assert.Equal(t, PreferMorning, repeated.Mode)
}
