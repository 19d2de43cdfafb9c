package lansky

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/lansky/date"
)

// Quarter is one of the four calendar buckets of a year.
type Quarter int

const (
	Q1 Quarter = iota + 1
	Q2
	Q3
	Q4
)

// QuarterOf returns the quarter of the date's calendar month.
//
// Dates are calendar dates without a time zone, so the same date string
// yields the same quarter on every machine.
func QuarterOf(on date.Date) Quarter { return Quarter(on.Quarter()) }

func (q Quarter) String() string {
	if q < Q1 || q > Q4 {
		return ""
	}
	return fmt.Sprintf("Q%d", int(q))
}

// ParseQuarter parses "Q1".."Q4".
func ParseQuarter(s string) (Quarter, error) {
	switch s {
	case "Q1":
		return Q1, nil
	case "Q2":
		return Q2, nil
	case "Q3":
		return Q3, nil
	case "Q4":
		return Q4, nil
	default:
		return 0, fmt.Errorf("unknown quarter %q", s)
	}
}

func (q Quarter) MarshalJSON() ([]byte, error) { return json.Marshal(q.String()) }

func (q *Quarter) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*q = 0
		return nil
	}
	v, err := ParseQuarter(s)
	if err != nil {
		return err
	}
	*q = v
	return nil
}
