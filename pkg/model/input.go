package model

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RawSchedule struct {
	StartDate         int  `mapstructure:"startDate"`
	EndDate           int  `mapstructure:"endDate"`
	DayOfWeek         int  `mapstructure:"dayOfWeek"`
	DayOfWeekStandard *int `mapstructure:"dayOfWeekStandard"`
	StartSession      int  `mapstructure:"startSession"`
	EndSession        int  `mapstructure:"endSession"`
}

type RawSection struct {
	Teacher   string
	Schedules []RawSchedule
}

type RawDataset struct {
	Title   string
	MinDate int                                         `mapstructure:"minDate"`
	MaxDate int                                         `mapstructure:"maxDate"`
	Majors  map[string]map[string]map[string]RawSection // major -> subject -> section code
}

// TimeBlock is one weekly recurring meeting slot of a section
type TimeBlock struct {
	StartDate    Date         `json:"startDate"`
	EndDate      Date         `json:"endDate" validate:"gtefield=StartDate"`
	DayOfWeek    time.Weekday `json:"dayOfWeek" validate:"min=0,max=6"`
	StartSession int          `json:"startSession" validate:"min=1"`
	EndSession   int          `json:"endSession" validate:"gtefield=StartSession"`
}

type Section struct {
	Code    string      `json:"code"`
	Teacher string      `json:"teacher"`
	Majors  []string    `json:"majors"` // Every major offering the same subject and section code
	Blocks  []TimeBlock `json:"blocks"`
}

type Subject struct {
	Major    string
	Name     string
	Sections map[string]Section
}

type Dataset struct {
	Title   string
	MinDate Date
	MaxDate Date
	Majors  map[string]map[string]Subject
}

// Codes returns the subject's section codes in ascending order
func (subject Subject) Codes() []string {
	codes := lo.Keys(subject.Sections)
	slices.Sort(codes)
	return codes
}

func (dataset Dataset) Subject(key SubjectKey) (Subject, bool) {
	subject, ok := dataset.Majors[key.Major][key.Subject]
	return subject, ok
}

// Dates returns every day between MinDate and MaxDate (both inclusive)
func (dataset Dataset) Dates() []Date {
	if dataset.MaxDate < dataset.MinDate {
		return nil
	}
	dates := make([]Date, 0, dataset.MaxDate-dataset.MinDate+1)
	for date := dataset.MinDate; date <= dataset.MaxDate; date++ {
		dates = append(dates, date)
	}
	return dates
}

func DatasetFromJson(file string) (Dataset, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Dataset{}, fmt.Errorf("cannot read dataset file: %w", err)
	}
	return DatasetFromBytes(bytes)
}

func DatasetFromBytes(bytes []byte) (Dataset, error) {
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Dataset{}, err
	}

	var rawDataset RawDataset
	if err := mapstructure.Decode(inputJson, &rawDataset); err != nil {
		return Dataset{}, fmt.Errorf("cannot decode dataset: %w", err)
	}
	return ProcessRawDataset(rawDataset)
}

func ProcessRawDataset(rawDataset RawDataset) (Dataset, error) {
	dataset := Dataset{
		Title:  rawDataset.Title,
		Majors: make(map[string]map[string]Subject, len(rawDataset.Majors)),
	}

	// Majors sharing the same subject and section code
	offeringMajors := make(map[[2]string][]string)
	var minDate, maxDate Date
	bounded := false

	for majorName, rawSubjects := range rawDataset.Majors {
		subjects := make(map[string]Subject, len(rawSubjects))
		for subjectName, rawSections := range rawSubjects {
			subject := Subject{
				Major:    majorName,
				Name:     subjectName,
				Sections: make(map[string]Section, len(rawSections)),
			}

			for code, rawSection := range rawSections {
				section := Section{
					Code:    code,
					Teacher: rawSection.Teacher,
					Blocks:  make([]TimeBlock, 0, len(rawSection.Schedules)),
				}

				for i, rawSchedule := range rawSection.Schedules {
					block, err := convertSchedule(rawSchedule)
					if err != nil {
						return Dataset{}, InvalidBlockError{Major: majorName, Subject: subjectName, Section: code, Index: i, Reason: err.Error()}
					}
					section.Blocks = append(section.Blocks, block)

					if !bounded || block.StartDate < minDate {
						minDate = block.StartDate
					}
					if !bounded || block.EndDate > maxDate {
						maxDate = block.EndDate
					}
					bounded = true
				}

				subject.Sections[code] = section
				key := [2]string{subjectName, code}
				offeringMajors[key] = append(offeringMajors[key], majorName)
			}
			subjects[subjectName] = subject
		}
		dataset.Majors[majorName] = subjects
	}

	//** Attach offering majors to every section
	for _, subjects := range dataset.Majors {
		for subjectName, subject := range subjects {
			for code, section := range subject.Sections {
				majors := slices.Clone(offeringMajors[[2]string{subjectName, code}])
				slices.Sort(majors)
				section.Majors = majors
				subject.Sections[code] = section
			}
		}
	}

	//** Resolve calendar bounds, falling back to the blocks' extent
	var err error
	if rawDataset.MinDate != 0 {
		if minDate, err = ParseCompactDate(rawDataset.MinDate); err != nil {
			return Dataset{}, fmt.Errorf("%w: minDate: %v", ErrInvalidInput, err)
		}
	} else if !bounded {
		return Dataset{}, fmt.Errorf("%w: empty min/max date", ErrInvalidInput)
	}
	if rawDataset.MaxDate != 0 {
		if maxDate, err = ParseCompactDate(rawDataset.MaxDate); err != nil {
			return Dataset{}, fmt.Errorf("%w: maxDate: %v", ErrInvalidInput, err)
		}
	} else if !bounded {
		return Dataset{}, fmt.Errorf("%w: empty min/max date", ErrInvalidInput)
	}
	if minDate > maxDate {
		return Dataset{}, fmt.Errorf("%w: minDate %v is after maxDate %v", ErrInvalidInput, minDate, maxDate)
	}

	dataset.MinDate, dataset.MaxDate = minDate, maxDate
	return dataset, nil
}

func convertSchedule(rawSchedule RawSchedule) (TimeBlock, error) {
	startDate, err := ParseCompactDate(rawSchedule.StartDate)
	if err != nil {
		return TimeBlock{}, err
	}
	endDate, err := ParseCompactDate(rawSchedule.EndDate)
	if err != nil {
		return TimeBlock{}, err
	}

	var dayOfWeek time.Weekday
	if rawSchedule.DayOfWeekStandard != nil {
		dayOfWeek = time.Weekday(*rawSchedule.DayOfWeekStandard)
	} else if dayOfWeek, err = institutionWeekday(rawSchedule.DayOfWeek); err != nil {
		return TimeBlock{}, err
	}

	block := TimeBlock{
		StartDate:    startDate,
		EndDate:      endDate,
		DayOfWeek:    dayOfWeek,
		StartSession: rawSchedule.StartSession,
		EndSession:   rawSchedule.EndSession,
	}
	if err := validate.Struct(block); err != nil {
		return TimeBlock{}, err
	}
	return block, nil
}

// Timetables number weekdays from 2 (Monday) to 7 (Saturday), with 8 standing for Sunday
func institutionWeekday(day int) (time.Weekday, error) {
	switch {
	case day == 8:
		return time.Sunday, nil
	case day >= 2 && day <= 7:
		return time.Weekday(day - 1), nil
	}
	return 0, fmt.Errorf("day of week %d is outside the 2..8 range", day)
}
