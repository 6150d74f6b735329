// Package session tracks the interactive state of an open galaxy: the active
// year range, the current word selection and its orbiting books. All updates
// are synchronous state-then-recompute cycles; there is no history or undo.
package session

// Timeline bounds. Both ends of the range are clamped into this window.
const (
	MinYear = 1800
	MaxYear = 2023
)

// YearRange is the inclusive [Start, End] filter window. The zero value is
// not valid; use NewYearRange.
type YearRange struct {
	Start int
	End   int
}

// NewYearRange returns the full timeline window.
func NewYearRange() YearRange {
	return YearRange{Start: MinYear, End: MaxYear}
}

// SetStart updates the lower bound. The value is clamped into the timeline
// window; if the update leaves Start above End the two are swapped rather
// than rejected, so the range always heals itself.
func (r *YearRange) SetStart(year int) {
	r.Start = clampYear(year)
	r.normalize()
}

// SetEnd updates the upper bound, with the same clamping and self-healing
// swap as SetStart.
func (r *YearRange) SetEnd(year int) {
	r.End = clampYear(year)
	r.normalize()
}

// Contains reports whether the year falls inside the range, inclusive.
func (r YearRange) Contains(year int) bool {
	return year >= r.Start && year <= r.End
}

func (r *YearRange) normalize() {
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
}

func clampYear(year int) int {
	if year < MinYear {
		return MinYear
	}
	if year > MaxYear {
		return MaxYear
	}
	return year
}
