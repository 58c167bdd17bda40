package plan

import "fmt"

// Duration limits applied by editors before updating a block.
const (
	MinDurationMinutes  = 15
	MaxDurationMinutes  = 300
	DurationStepMinutes = 15
)

// MinutesToClock converts minutes since midnight to "HH:MM" format.
// Hours are not wrapped at 24.
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ClockToMinutes converts strict "HH:MM" to minutes since midnight.
// Returns false for any other shape.
func ClockToMinutes(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + mins, true
}

// ParseClock is ClockToMinutes with an error for callers at input boundaries.
func ParseClock(s string) (int, error) {
	m, ok := ClockToMinutes(s)
	if !ok {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidClock, s)
	}
	return m, nil
}

// FormatRange returns "HH:MM–HH:MM" for a start and duration.
// Returns false if either value is missing.
func FormatRange(start, duration *int) (string, bool) {
	if start == nil || duration == nil {
		return "", false
	}
	return MinutesToClock(*start) + "–" + MinutesToClock(*start+*duration), true
}

// ClampDuration rounds to the nearest 15 minutes and clamps to [15, 300].
func ClampDuration(n int) int {
	rounded := ((n + DurationStepMinutes/2) / DurationStepMinutes) * DurationStepMinutes
	if n < 0 {
		rounded = 0
	}
	return min(MaxDurationMinutes, max(MinDurationMinutes, rounded))
}

// FormatTotal renders a minute total as "1h30m", "2h" or "45m".
// Zero renders as an empty string.
func FormatTotal(m int) string {
	h, rest := m/60, m%60
	switch {
	case h > 0 && rest > 0:
		return fmt.Sprintf("%dh%dm", h, rest)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case rest > 0:
		return fmt.Sprintf("%dm", rest)
	default:
		return ""
	}
}
