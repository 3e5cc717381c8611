package model

import (
	"math/bits"
)

// Mask encodes the block's periods as bits [periods-EndSession, periods-StartSession].
// A block outside 1..periods has an empty mask.
func (block TimeBlock) Mask(periods int) uint64 {
	if block.StartSession < 1 || block.EndSession < block.StartSession || block.EndSession > periods {
		return 0
	}
	width := block.EndSession - block.StartSession + 1
	return ((uint64(1) << width) - 1) << (periods - block.EndSession)
}

// Weeks returns how many weeks the block recurs over
func (block TimeBlock) Weeks() float64 {
	return weeksBetween(block.StartDate, block.EndDate)
}

func weeksBetween(start, end Date) float64 {
	if end < start {
		return 0
	}
	return float64(end-start+1) / daysPerWeek
}

// Active checks whether date falls within the block's date range
func (block TimeBlock) Active(date Date) bool {
	return block.StartDate <= date && date <= block.EndDate
}

// Covers checks whether the block occupies the period
func (block TimeBlock) Covers(period int) bool {
	return block.StartSession <= period && period <= block.EndSession
}

// BlockOverlap returns the number of shared period-occurrences of two blocks,
// weighted by the weeks during which both recur
func BlockOverlap(block1, block2 TimeBlock, periods int) float64 {
	return float64(blockOverlapDays(block1, block2, periods)) / daysPerWeek
}

// SectionOverlap sums BlockOverlap over every pair of blocks of the two sections
func SectionOverlap(section1, section2 Section, periods int) float64 {
	return float64(sectionOverlapDays(section1, section2, periods)) / daysPerWeek
}

// CombinationOverlap sums SectionOverlap over every pair of sections
func CombinationOverlap(sections []Section, periods int) float64 {
	overlap := 0
	for i := range len(sections) - 1 {
		for j := i + 1; j < len(sections); j++ {
			overlap += sectionOverlapDays(sections[i], sections[j], periods)
		}
	}
	return float64(overlap) / daysPerWeek
}

// ShiftSessions counts the section's period-occurrences falling within shift, weighted by weeks
func ShiftSessions(section Section, shift Shift) float64 {
	return float64(shiftSessionDays(section, shift)) / daysPerWeek
}

// Overlaps are accumulated in period-days (period-weeks times seven) so sums stay exact

func blockOverlapDays(block1, block2 TimeBlock, periods int) int {
	if block1.StartDate > block2.EndDate || block2.StartDate > block1.EndDate {
		return 0
	}
	if block1.DayOfWeek != block2.DayOfWeek {
		return 0
	}
	shared := block1.Mask(periods) & block2.Mask(periods)
	if shared == 0 {
		return 0
	}
	days := int(min(block1.EndDate, block2.EndDate) - max(block1.StartDate, block2.StartDate) + 1)
	return bits.OnesCount64(shared) * days
}

func sectionOverlapDays(section1, section2 Section, periods int) int {
	if len(section1.Blocks) == 0 || len(section2.Blocks) == 0 {
		return 0
	}
	start1, end1 := dateExtent(section1.Blocks)
	start2, end2 := dateExtent(section2.Blocks)
	if end1 < start2 || end2 < start1 {
		return 0
	}

	overlap := 0
	for _, block1 := range section1.Blocks {
		for _, block2 := range section2.Blocks {
			overlap += blockOverlapDays(block1, block2, periods)
		}
	}
	return overlap
}

func shiftSessionDays(section Section, shift Shift) int {
	total := 0
	for _, block := range section.Blocks {
		if block.StartSession > shift.End || block.EndSession < shift.Start {
			continue
		}
		total += (min(shift.End, block.EndSession) - max(shift.Start, block.StartSession) + 1) * int(block.EndDate-block.StartDate+1)
	}
	return total
}

func dateExtent(blocks []TimeBlock) (start, end Date) {
	start, end = blocks[0].StartDate, blocks[0].EndDate
	for _, block := range blocks[1:] {
		start = min(start, block.StartDate)
		end = max(end, block.EndDate)
	}
	return start, end
}
