package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar bucket used to filter reports.
type Period int

const (
	Monthly Period = iota
	Quarterly
	Yearly
)

// months is the length of each period in months.
var months = map[Period]time.Month{Monthly: 1, Quarterly: 3, Yearly: 12}

var periodNames = map[Period]string{Monthly: "monthly", Quarterly: "quarterly", Yearly: "yearly"}

func (p Period) String() string {
	if name, ok := periodNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

// ParsePeriod parses "month", "quarter" or "year", or their adjective form.
func ParsePeriod(s string) (Period, error) {
	switch strings.TrimSuffix(strings.ToLower(s), "ly") {
	case "month":
		return Monthly, nil
	case "quarter":
		return Quarterly, nil
	case "year":
		return Yearly, nil
	}
	return Yearly, fmt.Errorf("unknown period %q", s)
}

// StartOf returns the first day of the period containing d.
func (d Date) StartOf(p Period) Date {
	n := months[p]
	first := (d.m-1)/n*n + 1
	return New(d.y, first, 1)
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	start := d.StartOf(p)
	// day 0 of the month after the period is its last day.
	return New(start.y, start.m+months[p], 0)
}
