package model

import "github.com/samber/lo"

type schedulerImplementation struct {
	dataset Dataset
	options Options
}

func (scheduler *schedulerImplementation) Table(selection Selection) (TableResult, error) {
	return BuildTable(scheduler.dataset, selection, scheduler.options)
}

func (scheduler *schedulerImplementation) AutoSchedule(selection Selection, request SearchRequest) (AutoResult, error) {
	request.Subjects = lo.Uniq(request.Subjects)

	//** Resolve candidates
	candidates, err := candidatesFor(scheduler.dataset, selection, request)
	if err != nil {
		return AutoResult{}, err
	}

	//** Search
	generator := newCombinationGenerator(candidates, scheduler.options.Periods, scheduler.options.Threshold)
	combinations := generator.Combinations()
	if len(combinations) == 0 {
		return AutoResult{Selection: selection}, nil
	}

	//** Rank and select
	ranked := rankCombinations(combinations, candidates, scheduler.options, request.Mode)
	selected, index, _ := selectCombination(ranked, request.Ordinal)

	chosen := make([]ChosenSection, len(request.Subjects))
	for subject, section := range selected.choices {
		key := request.Subjects[subject]
		chosen[subject] = ChosenSection{Major: key.Major, Subject: key.Subject, Section: candidates[subject][section].Code}
	}

	//** Apply and rebuild the table
	updated := selection.Apply(chosen)
	table, err := BuildTable(scheduler.dataset, updated, scheduler.options)
	if err != nil {
		return AutoResult{}, err
	}

	return AutoResult{
		Found:             true,
		Chosen:            chosen,
		Selection:         updated,
		Table:             table.Table,
		IsConflict:        table.IsConflict,
		ConflictedPeriods: table.ConflictedPeriods,
		Overlap:           float64(selected.overlap) / daysPerWeek,
		Count:             len(ranked),
		Index:             index,
	}, nil
}

func (scheduler *schedulerImplementation) Verify(selection Selection) bool {
	return verify(scheduler.dataset, selection, scheduler.options)
}
