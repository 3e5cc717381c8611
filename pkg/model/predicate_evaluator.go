package model

type predicateEvaluator interface {
	// Checks whether the block recurs on the date (within its date range and on its weekday)
	MeetsOn(block TimeBlock, date Date) bool

	// Checks whether the block occupies the period on the date
	Occupies(block TimeBlock, date Date, period int) bool

	// Checks whether the subject offers a section with the given code
	Offers(key SubjectKey, code string) bool
}
