package plan

import (
	"cmp"
	"fmt"
	"slices"
)

// AnalyzeOverlaps returns a diagnostic for every block that overlaps its
// neighbour when the scheduled blocks are sorted by start time.
//
// Only adjacent pairs in sorted order are compared, and each block keeps the
// first message it receives. A block nested inside a longer one is missed
// when a non-overlapping block sorts between them.
func AnalyzeOverlaps(blocks []TimeBlock) Conflicts {
	conflicts := make(Conflicts)

	scheduled := make([]TimeBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.IsScheduled() {
			scheduled = append(scheduled, b)
		}
	}
	slices.SortStableFunc(scheduled, func(a, b TimeBlock) int {
		return cmp.Compare(*a.StartMinutes, *b.StartMinutes)
	})

	for i := 1; i < len(scheduled); i++ {
		prev, curr := scheduled[i-1], scheduled[i]
		prevEnd, _ := prev.EndMinutes()
		if *curr.StartMinutes >= prevEnd {
			continue
		}
		if _, ok := conflicts[prev.ID]; !ok {
			conflicts[prev.ID] = overlapMessage(curr)
		}
		if _, ok := conflicts[curr.ID]; !ok {
			conflicts[curr.ID] = overlapMessage(prev)
		}
	}

	return conflicts
}

func overlapMessage(other TimeBlock) string {
	r, _ := other.Range()
	return fmt.Sprintf("overlaps with %s %s", other.Title, r)
}
