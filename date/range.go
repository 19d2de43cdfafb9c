package date

import "fmt"

// Range is a span of days, both ends included.
type Range struct{ From, To Date }

// NewRange returns the period containing d, like the year of a tax report.
func NewRange(d Date, p Period) Range { return Range{From: d.StartOf(p), To: d.EndOf(p)} }

// Contains reports whether d falls within the range.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Period returns the period the range spans exactly, if any.
func (r Range) Period() (Period, bool) {
	for _, p := range []Period{Monthly, Quarterly, Yearly} {
		if NewRange(r.From, p) == r {
			return p, true
		}
	}
	return Yearly, false
}

// Identifier is a short name of the range: "2024", "2024-Q1", "2024-03",
// or "<from>_<to>" for any other span.
func (r Range) Identifier() string {
	p, ok := r.Period()
	switch {
	case !ok:
		return fmt.Sprintf("%s_%s", r.From, r.To)
	case p == Monthly:
		return r.From.Format("2006-01")
	case p == Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), r.From.Quarter())
	default:
		return r.From.Format("2006")
	}
}
