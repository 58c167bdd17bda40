package plan

// DayView is the derived data for one day bucket.
type DayView struct {
	Day          Day
	Blocks       []TimeBlock // day's blocks in planning order
	TotalMinutes int
	Conflicts    Conflicts
}

// Conflict returns the diagnostic for a block, if any.
func (v DayView) Conflict(id string) (string, bool) {
	msg, ok := v.Conflicts[id]
	return msg, ok
}

// BuildDayView filters blocks to day and computes totals and conflicts.
// It is recomputed on every call.
func BuildDayView(blocks []TimeBlock, day Day) DayView {
	v := DayView{Day: day, Blocks: []TimeBlock{}}
	for _, b := range blocks {
		if b.Day != day {
			continue
		}
		v.Blocks = append(v.Blocks, b.clone())
		v.TotalMinutes += b.DurationMinutes
	}
	v.Conflicts = AnalyzeOverlaps(v.Blocks)
	return v
}

// BuildBoard returns the views for Saturday and Sunday, in that order.
func BuildBoard(blocks []TimeBlock) []DayView {
	views := make([]DayView, 0, len(Days))
	for _, d := range Days {
		views = append(views, BuildDayView(blocks, d))
	}
	return views
}
