package main

import (
	"bytes"
	"encoding/csv"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/classpicker/pkg/model"
)

func TestGenerateDataset(t *testing.T) {
	//** Arrange
	scenario := Scenario{Subjects: 3, Sections: 4, Blocks: 2, Threshold: 12}
	random := rand.New(rand.NewPCG(1, 1))

	//** Act
	dataset := generateDataset(random, scenario)

	//** Assert
	assert.NoError(t, dataset.Validate(model.DefaultOptions().Periods))
	assert.Len(t, dataset.Majors[major], 3)
	for _, key := range subjectKeys(scenario) {
		subject, ok := dataset.Subject(key)
		require.True(t, ok, key.String())
		assert.Len(t, subject.Sections, 4)
		for _, section := range subject.Sections {
			for _, block := range section.Blocks {
				assert.GreaterOrEqual(t, block.StartDate, dataset.MinDate)
				assert.LessOrEqual(t, block.EndDate, dataset.MaxDate)
			}
		}
	}
}

func TestScenariosStayBounded(t *testing.T) {
	for _, scenario := range getScenarios() {
		combinations := 1
		for range scenario.Subjects {
			combinations *= scenario.Sections
		}
		assert.LessOrEqual(t, combinations, maxCombinations)
	}
}

func TestToCsv(t *testing.T) {
	//** Arrange
	scenario := Scenario{Subjects: 2, Sections: 2, Blocks: 2, Threshold: 12}
	scheduler, err := model.NewScheduler(generateDataset(rand.New(rand.NewPCG(3, 3)), scenario), model.DefaultOptions())
	require.NoError(t, err)
	result := measure(scheduler, scenario, model.SearchRequest{Subjects: subjectKeys(scenario), Mode: model.PreferMorning})

	//** Act
	var buffer bytes.Buffer
	err = toCsv(&buffer, []BenchmarkResult{result})

	//** Assert
	require.NoError(t, err)
	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Subjects", records[0][0])
	assert.Equal(t, []string{"2", "2", "2", "12.0", "prefer-morning"}, records[1][:5])
}
