package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
)

const stampLayout = "20060102"

// ParseStamp parses the YYYYMMDD prefix of a date stamp.
// Characters after the eighth are ignored.
func ParseStamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(stampLayout) {
		return time.Time{}, fmt.Errorf("date stamp shorter than %d characters", len(stampLayout))
	}
	prefix := s[:len(stampLayout)]
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return time.Time{}, fmt.Errorf("date stamp prefix %q is not numeric", prefix)
		}
	}
	return time.Parse(stampLayout, prefix)
}

// DayOfYear returns the day offset of t from January 1 of baseYear, where
// January 1 itself is day 1. Dates past the base year keep counting.
func DayOfYear(baseYear int, t time.Time) int {
	jan1 := time.Date(baseYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(jan1).Hours()/24) + 1
}

// DayOfYearSeries derives the day-of-year sequence of dates.
// The base year is the year of the first date.
func DayOfYearSeries(dates []time.Time) models.DayOfYear {
	if len(dates) == 0 {
		return models.DayOfYear{Days: []int{}}
	}
	return DayOfYearFrom(dates[0].Year(), dates)
}

// DayOfYearFrom derives the day-of-year sequence of dates relative to baseYear.
func DayOfYearFrom(baseYear int, dates []time.Time) models.DayOfYear {
	doy := models.DayOfYear{BaseYear: baseYear, Days: make([]int, len(dates))}
	for i, d := range dates {
		doy.Days[i] = DayOfYear(baseYear, d)
	}
	return doy
}
