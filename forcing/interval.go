package forcing

import "fmt"

// Interval is the length of a timestep.
type Interval string

const (
	IntervalH1  Interval = "1h"
	IntervalM30 Interval = "30m"
	IntervalM15 Interval = "15m"
)

// ParseInterval converts s to an Interval.
func ParseInterval(s string) (Interval, error) {
	switch i := Interval(s); i {
	case IntervalH1, IntervalM30, IntervalM15:
		return i, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
}

// StepsPerHour returns the number of steps an hour is divided into.
//
// Notes:
//
//	1h: 1
//	30m: 2
//	15m: 4
func (i Interval) StepsPerHour() int {
	switch i {
	case IntervalH1:
		return 1
	case IntervalM30:
		return 2
	case IntervalM15:
		return 4
	default:
		panic("invalid interval")
	}
}

// Hours returns the length of the interval, h.
func (i Interval) Hours() float64 {
	switch i {
	case IntervalH1:
		return 1.0
	case IntervalM30:
		return 0.5
	case IntervalM15:
		return 0.25
	default:
		panic("invalid interval")
	}
}

// StepsPerDay returns the number of timesteps in a day.
func (i Interval) StepsPerDay() int {
	return 24 * i.StepsPerHour()
}

// HourOfDay converts a step index within the day to the hour of day.
//
// Notes:
//
//	1h: 0, 1.0, ... , 23.0
//	30m: 0, 0.5, 1.0, 1.5, ... , 23.5
//	15m: 0, 0.25, 0.5, 0.75, ... , 23.75
func (i Interval) HourOfDay(step int) float64 {
	return float64(step) * i.Hours()
}
