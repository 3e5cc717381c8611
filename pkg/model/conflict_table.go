package model

import "fmt"

// Occupant is one block of a displayed subject's active section occupying a period
type Occupant struct {
	Major   string    `json:"major"`
	Subject string    `json:"subject"`
	Section string    `json:"section"`
	Block   TimeBlock `json:"block"`
}

// ConflictTable maps every date and period of the calendar to the blocks occupying it
type ConflictTable struct {
	Dates   []Date                      `json:"dates"`
	Periods []int                       `json:"periods"`
	Cells   map[Date]map[int][]Occupant `json:"cells"`
}

type Cell struct {
	Date      Date       `json:"date"`
	Period    int        `json:"period"`
	Occupants []Occupant `json:"occupants"`
}

type TableResult struct {
	Table             ConflictTable `json:"table"`
	IsConflict        bool          `json:"isConflict"`
	ConflictedPeriods int           `json:"conflictedPeriods"` // Cells occupied by more than one block
}

func (table ConflictTable) Cell(date Date, period int) []Occupant {
	return table.Cells[date][period]
}

// Conflicts returns the cells with more than one occupant, by date and then period
func (table ConflictTable) Conflicts() []Cell {
	conflicts := make([]Cell, 0)
	for _, date := range table.Dates {
		for _, period := range table.Periods {
			if occupants := table.Cells[date][period]; len(occupants) > 1 {
				conflicts = append(conflicts, Cell{Date: date, Period: period, Occupants: occupants})
			}
		}
	}
	return conflicts
}

// BuildTable rebuilds the whole occupancy table for the displayed subjects' active sections
func BuildTable(dataset Dataset, selection Selection, options Options) (TableResult, error) {
	evaluator := newPredicateEvaluator(dataset)

	//** Resolve displayed subjects with an active section
	occupants := make([]Occupant, 0)
	for _, key := range selection.Displayed() {
		code := selection.State(key).ActiveSection
		if code == "" {
			continue
		}
		subject, ok := dataset.Subject(key)
		if !ok {
			return TableResult{}, fmt.Errorf("%w: %v", ErrUnknownSubject, key)
		}
		if !evaluator.Offers(key, code) {
			return TableResult{}, fmt.Errorf("%w: %v has no section %q", ErrUnknownSection, key, code)
		}
		for _, block := range subject.Sections[code].Blocks {
			occupants = append(occupants, Occupant{Major: key.Major, Subject: key.Subject, Section: code, Block: block})
		}
	}

	//** Fill every date and period
	result := TableResult{
		Table: ConflictTable{
			Dates:   dataset.Dates(),
			Periods: options.PeriodList(),
		},
	}
	result.Table.Cells = make(map[Date]map[int][]Occupant, len(result.Table.Dates))

	for _, date := range result.Table.Dates {
		row := make(map[int][]Occupant, options.Periods)
		result.Table.Cells[date] = row

		for _, period := range result.Table.Periods {
			row[period] = make([]Occupant, 0)
			for _, occupant := range occupants {
				if evaluator.Occupies(occupant.Block, date, period) {
					row[period] = append(row[period], occupant)
				}
			}

			// More than one occupant in a period means a conflict
			if len(row[period]) > 1 {
				result.IsConflict = true
				result.ConflictedPeriods++
			}
		}
	}

	return result, nil
}
