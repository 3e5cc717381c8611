package model

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

type SubjectKey struct {
	Major   string `json:"major"`
	Subject string `json:"subject"`
}

type ChosenSection struct {
	Major   string `json:"major"`
	Subject string `json:"subject"`
	Section string `json:"section"`
}

func (key SubjectKey) String() string {
	return key.Major + "/" + key.Subject
}

// ParseSubjectKey parses "major/subject"; the subject name itself may contain slashes
func ParseSubjectKey(text string) (SubjectKey, error) {
	major, subject, ok := strings.Cut(text, "/")
	if !ok || major == "" || subject == "" {
		return SubjectKey{}, fmt.Errorf("subject %q is not of the form major/subject", text)
	}
	return SubjectKey{Major: major, Subject: subject}, nil
}

func compareSubjectKeys(a, b SubjectKey) int {
	return cmp.Or(cmp.Compare(a.Major, b.Major), cmp.Compare(a.Subject, b.Subject))
}

type SubjectSelection struct {
	Displayed     bool   `json:"displayed" mapstructure:"displayed"`
	ActiveSection string `json:"activeSection" mapstructure:"activeSection"`
}

// Selection is a snapshot of what the student picked: major -> subject -> selection state.
// Its methods never mutate the receiver; they copy only the maps they touch.
type Selection map[string]map[string]SubjectSelection

func (selection Selection) State(key SubjectKey) SubjectSelection {
	return selection[key.Major][key.Subject]
}

func (selection Selection) With(key SubjectKey, state SubjectSelection) Selection {
	updated := maps.Clone(selection)
	if updated == nil {
		updated = make(Selection, 1)
	}
	subjects := maps.Clone(selection[key.Major])
	if subjects == nil {
		subjects = make(map[string]SubjectSelection, 1)
	}
	subjects[key.Subject] = state
	updated[key.Major] = subjects
	return updated
}

// Apply marks every chosen section as displayed and active
func (selection Selection) Apply(chosen []ChosenSection) Selection {
	updated := maps.Clone(selection)
	if updated == nil {
		updated = make(Selection, len(chosen))
	}
	cloned := make(map[string]bool)
	for _, section := range chosen {
		if !cloned[section.Major] {
			updated[section.Major] = maps.Clone(selection[section.Major])
			if updated[section.Major] == nil {
				updated[section.Major] = make(map[string]SubjectSelection)
			}
			cloned[section.Major] = true
		}
		updated[section.Major][section.Subject] = SubjectSelection{Displayed: true, ActiveSection: section.Section}
	}
	return updated
}

// Displayed returns the keys of displayed subjects in ascending order
func (selection Selection) Displayed() []SubjectKey {
	keys := make([]SubjectKey, 0)
	for major, subjects := range selection {
		for subject, state := range subjects {
			if state.Displayed {
				keys = append(keys, SubjectKey{Major: major, Subject: subject})
			}
		}
	}
	slices.SortFunc(keys, compareSubjectKeys)
	return keys
}

// Cursor tracks which ranked alternative the caller asks for next.
// It is a plain value owned by the caller; the scheduler never stores it.
type Cursor struct {
	Mode    ShiftPreference
	Ordinal int
	started bool
}

// Next returns the cursor for another request in mode: the following alternative
// when the mode is unchanged, the best one otherwise
func (cursor Cursor) Next(mode ShiftPreference) Cursor {
	if cursor.started && cursor.Mode == mode {
		return Cursor{Mode: mode, Ordinal: cursor.Ordinal + 1, started: true}
	}
	return Cursor{Mode: mode, Ordinal: 0, started: true}
}

// Reset must be called whenever the selection criteria change
func (cursor Cursor) Reset() Cursor {
	return Cursor{}
}
