package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/limaJavier/classpicker/pkg/model"

	"github.com/samber/lo"
)

const (
	resultsFile = "benchmark_results.csv"
	seed        = 2024
	repetitions = 3
	major       = "benchmark"

	maxCombinations = 300_000
)

type Scenario struct {
	Subjects  int
	Sections  int
	Blocks    int // Blocks per section
	Threshold float64
}

type BenchmarkResult struct {
	Scenario     Scenario
	Mode         model.ShiftPreference
	Duration     time.Duration // Fastest of the repetitions
	Combinations int
	Overlap      float64
	Found        bool
}

func main() {
	scenarios := getScenarios()
	modes := []model.ShiftPreference{model.PreferNone, model.PreferMorning, model.PreferEvening}
	results := make([]BenchmarkResult, 0, len(scenarios)*len(modes))

	random := rand.New(rand.NewPCG(seed, seed))
	for _, scenario := range scenarios {
		dataset := generateDataset(random, scenario)
		options := model.DefaultOptions()
		options.Threshold = scenario.Threshold

		scheduler := lo.Must(model.NewScheduler(dataset, options))
		request := model.SearchRequest{Subjects: subjectKeys(scenario)}

		for _, mode := range modes {
			fmt.Printf("Benchmarking %v subjects, %v sections, %v blocks, threshold %v, mode \"%v\"\n", scenario.Subjects, scenario.Sections, scenario.Blocks, scenario.Threshold, mode)

			request.Mode = mode
			results = append(results, measure(scheduler, scenario, request))
		}
	}

	file, err := os.Create(resultsFile)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		log.Panicf("cannot write CSV file: %v", err)
	}
}

func getScenarios() []Scenario {
	scenarios := make([]Scenario, 0)
	for _, subjects := range []int{2, 4, 6, 8} {
		for _, sections := range []int{2, 4, 8} {
			// Every combination may survive a loose threshold
			if math.Pow(float64(sections), float64(subjects)) > maxCombinations {
				continue
			}
			for _, threshold := range []float64{0, 12, 48} {
				scenarios = append(scenarios, Scenario{Subjects: subjects, Sections: sections, Blocks: 2, Threshold: threshold})
			}
		}
	}
	return scenarios
}

func measure(scheduler model.Scheduler, scenario Scenario, request model.SearchRequest) BenchmarkResult {
	result := BenchmarkResult{Scenario: scenario, Mode: request.Mode, Duration: time.Duration(math.MaxInt64)}

	for range repetitions {
		start := time.Now()
		auto := lo.Must(scheduler.AutoSchedule(model.Selection{}, request))
		result.Duration = min(result.Duration, time.Since(start))

		result.Found, result.Combinations, result.Overlap = auto.Found, auto.Count, auto.Overlap
	}
	return result
}

// generateDataset builds a semester of random weekly blocks, one major holding every subject
func generateDataset(random *rand.Rand, scenario Scenario) model.Dataset {
	options := model.DefaultOptions()
	semesterStart := model.DateOf(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	semesterWeeks := 16

	subjects := make(map[string]model.Subject, scenario.Subjects)
	for _, key := range subjectKeys(scenario) {
		subject := model.Subject{Major: major, Name: key.Subject, Sections: make(map[string]model.Section, scenario.Sections)}

		for i := range scenario.Sections {
			code := fmt.Sprintf("%02d", i+1)
			blocks := make([]model.TimeBlock, scenario.Blocks)
			for j := range blocks {
				startWeek := random.IntN(semesterWeeks / 2)
				weeks := 1 + random.IntN(semesterWeeks-startWeek)
				length := 1 + random.IntN(3)
				from := 1 + random.IntN(options.Periods-length+1)

				blocks[j] = model.TimeBlock{
					StartDate:    semesterStart + model.Date(startWeek*7),
					EndDate:      semesterStart + model.Date((startWeek+weeks)*7-1),
					DayOfWeek:    time.Weekday(1 + random.IntN(6)),
					StartSession: from,
					EndSession:   from + length - 1,
				}
			}
			subject.Sections[code] = model.Section{Code: code, Teacher: "staff", Majors: []string{major}, Blocks: blocks}
		}
		subjects[key.Subject] = subject
	}

	return model.Dataset{
		Title:   fmt.Sprintf("%vx%v", scenario.Subjects, scenario.Sections),
		MinDate: semesterStart,
		MaxDate: semesterStart + model.Date(semesterWeeks*7-1),
		Majors:  map[string]map[string]model.Subject{major: subjects},
	}
}

func subjectKeys(scenario Scenario) []model.SubjectKey {
	return lo.Times(scenario.Subjects, func(i int) model.SubjectKey {
		return model.SubjectKey{Major: major, Subject: fmt.Sprintf("subject-%02d", i+1)}
	})
}

func toCsv(writer io.Writer, results []BenchmarkResult) error {
	csvWriter := csv.NewWriter(writer)

	header := []string{"Subjects", "Sections", "Blocks", "Threshold", "Mode", "Duration(us)", "Combinations", "Overlap", "Found"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			strconv.Itoa(result.Scenario.Subjects),
			strconv.Itoa(result.Scenario.Sections),
			strconv.Itoa(result.Scenario.Blocks),
			fmt.Sprintf("%.1f", result.Scenario.Threshold),
			result.Mode.String(),
			strconv.FormatInt(result.Duration.Microseconds(), 10),
			strconv.Itoa(result.Combinations),
			fmt.Sprintf("%.2f", result.Overlap),
			strconv.FormatBool(result.Found),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
