package model

type Scheduler interface {
	// Builds the conflict table of the selection's displayed subjects.
	// Fails when a displayed subject or its active section is not part of the dataset.
	Table(selection Selection) (TableResult, error)

	// Searches for the request.Ordinal-th best assignment of one section per requested subject,
	// ranked by ascending overlap and then by request.Mode. The selection is never modified:
	// the returned result carries an updated copy with the chosen sections displayed and active.
	// Found is false when there is nothing to choose from (no subjects, a subject without
	// sections, or every assignment above the overlap threshold).
	AutoSchedule(selection Selection, request SearchRequest) (AutoResult, error)

	// Checks whether the selection's active sections are free of conflicts
	Verify(selection Selection) bool
}

type SearchRequest struct {
	Subjects []SubjectKey    `json:"subjects"`
	Mode     ShiftPreference `json:"mode"`
	Ordinal  int             `json:"ordinal"`
	Pinned   []SubjectKey    `json:"pinned"` // Subjects restricted to their currently active section
}

type AutoResult struct {
	Found             bool            `json:"found"`
	Chosen            []ChosenSection `json:"chosen"`
	Selection         Selection       `json:"selection"`
	Table             ConflictTable   `json:"table"`
	IsConflict        bool            `json:"isConflict"`
	ConflictedPeriods int             `json:"conflictedPeriods"`
	Overlap           float64         `json:"overlap"` // Period-weeks shared by the chosen sections
	Count             int             `json:"count"`   // Number of combinations under the threshold
	Index             int             `json:"index"`   // Position of the chosen combination in the ranking
}

func NewScheduler(dataset Dataset, options Options) (Scheduler, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if err := dataset.Validate(options.Periods); err != nil {
		return nil, err
	}
	return &schedulerImplementation{
		dataset: dataset,
		options: options,
	}, nil
}
