package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownSubject = errors.New("unknown subject")
	ErrUnknownSection = errors.New("unknown section")
)

var validate = validator.New()

// InvalidBlockError reports a malformed time block of a section
type InvalidBlockError struct {
	Major   string
	Subject string
	Section string
	Index   int // Position of the block within the section's schedules
	Reason  string
}

func (err InvalidBlockError) Error() string {
	return fmt.Sprintf("invalid block %d of %v/%v section %v: %v", err.Index, err.Major, err.Subject, err.Section, err.Reason)
}

func (err InvalidBlockError) Unwrap() error {
	return ErrInvalidInput
}

// Validate checks every block of the dataset against the day's period count
func (dataset Dataset) Validate(periods int) error {
	for _, major := range sortedKeys(dataset.Majors) {
		subjects := dataset.Majors[major]
		for _, name := range sortedKeys(subjects) {
			subject := subjects[name]
			for _, code := range subject.Codes() {
				for i, block := range subject.Sections[code].Blocks {
					if err := validateBlock(block, periods); err != nil {
						return InvalidBlockError{Major: major, Subject: name, Section: code, Index: i, Reason: err.Error()}
					}
				}
			}
		}
	}
	return nil
}

func validateBlock(block TimeBlock, periods int) error {
	if err := validate.Struct(block); err != nil {
		return err
	}
	if block.EndSession > periods {
		return fmt.Errorf("end session %d is past the last period %d", block.EndSession, periods)
	}
	return nil
}

// candidatesFor returns the sections each subject may take, in request order.
// A pinned subject may only keep the section currently active in the selection.
func candidatesFor(dataset Dataset, selection Selection, request SearchRequest) ([][]Section, error) {
	pinned := lo.SliceToMap(request.Pinned, func(key SubjectKey) (SubjectKey, bool) { return key, true })
	for _, key := range request.Pinned {
		if !lo.Contains(request.Subjects, key) {
			return nil, fmt.Errorf("%w: pinned subject %v is not among the requested subjects", ErrInvalidInput, key)
		}
	}

	candidates := make([][]Section, 0, len(request.Subjects))
	for _, key := range request.Subjects {
		subject, ok := dataset.Subject(key)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownSubject, key)
		}

		if !pinned[key] {
			candidates = append(candidates, lo.Map(subject.Codes(), func(code string, _ int) Section { return subject.Sections[code] }))
			continue
		}

		code := selection.State(key).ActiveSection
		if code == "" {
			return nil, fmt.Errorf("%w: pinned subject %v has no active section", ErrInvalidInput, key)
		}
		section, ok := subject.Sections[code]
		if !ok {
			return nil, fmt.Errorf("%w: %v has no section %q", ErrUnknownSection, key, code)
		}
		candidates = append(candidates, []Section{section})
	}
	return candidates, nil
}

// verify checks that every active section exists and the conflict table has no shared period
func verify(dataset Dataset, selection Selection, options Options) bool {
	result, err := BuildTable(dataset, selection, options)
	return err == nil && !result.IsConflict
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
