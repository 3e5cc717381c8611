package model

import (
	"time"

	"github.com/samber/lo"
)

// Monday 2024-01-01
var firstMonday = lo.Must(ParseCompactDate(240101))

func newBlock(start Date, weeks int, day time.Weekday, from, to int) TimeBlock {
	return TimeBlock{
		StartDate:    start,
		EndDate:      start + Date(weeks*daysPerWeek) - 1,
		DayOfWeek:    day,
		StartSession: from,
		EndSession:   to,
	}
}

func newSection(code string, blocks ...TimeBlock) Section {
	return Section{Code: code, Blocks: blocks}
}

func newSubject(major, name string, sections ...Section) Subject {
	subject := Subject{Major: major, Name: name, Sections: make(map[string]Section, len(sections))}
	for _, section := range sections {
		section.Majors = []string{major}
		subject.Sections[section.Code] = section
	}
	return subject
}

func newDataset(subjects ...Subject) Dataset {
	dataset := Dataset{Title: "test", Majors: make(map[string]map[string]Subject)}
	bounded := false
	for _, subject := range subjects {
		if dataset.Majors[subject.Major] == nil {
			dataset.Majors[subject.Major] = make(map[string]Subject)
		}
		dataset.Majors[subject.Major][subject.Name] = subject

		for _, section := range subject.Sections {
			for _, block := range section.Blocks {
				if !bounded || block.StartDate < dataset.MinDate {
					dataset.MinDate = block.StartDate
				}
				if !bounded || block.EndDate > dataset.MaxDate {
					dataset.MaxDate = block.EndDate
				}
				bounded = true
			}
		}
	}
	return dataset
}

func displayed(sections ...ChosenSection) Selection {
	return Selection{}.Apply(sections)
}
