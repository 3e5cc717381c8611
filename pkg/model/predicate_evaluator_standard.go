package model

type predicateEvaluatorStandard struct {
	dataset Dataset
}

func newPredicateEvaluator(dataset Dataset) predicateEvaluator {
	return &predicateEvaluatorStandard{dataset: dataset}
}

func (evaluator *predicateEvaluatorStandard) MeetsOn(block TimeBlock, date Date) bool {
	return block.Active(date) && block.DayOfWeek == date.Weekday()
}

func (evaluator *predicateEvaluatorStandard) Occupies(block TimeBlock, date Date, period int) bool {
	return evaluator.MeetsOn(block, date) && block.Covers(period)
}

func (evaluator *predicateEvaluatorStandard) Offers(key SubjectKey, code string) bool {
	subject, ok := evaluator.dataset.Subject(key)
	if !ok {
		return false
	}
	_, ok = subject.Sections[code]
	return ok
}
