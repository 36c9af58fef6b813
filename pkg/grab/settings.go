package grab

import (
	"errors"
	"fmt"
	"image"
	"time"
)

var ErrValidation = errors.New("validation failed")

// Region is a rectangular sub-area of a display described by its
// top left and bottom right corners.
type Region struct {
	X1, Y1, X2, Y2 int
}

func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Settings is the full capture configuration for a single session.
// Immutable once built, always validated before use.
type Settings struct {
	OutputDir       string
	Output          string
	Delay           int
	Timestamp       bool
	TimestampFormat string
	Display         int
	Region          *Region
	Interval        float64
	TimeLimit       float64
	DateTimeLabel   bool
	DateTimeFormat  string
}

func (s Settings) IntervalCapture() bool {
	return s.Interval != 0 || s.TimeLimit != 0
}

func (s Settings) Validate() error {
	if s.Delay < 0 {
		return validationErrorf("delay must be non-negative, got %d", s.Delay)
	}

	if len(s.Output) == 0 {
		return validationErrorf("output file name must not be empty")
	}

	if s.Region != nil {
		if err := s.Region.validate(); err != nil {
			return err
		}
	}

	if s.IntervalCapture() {
		if s.Interval <= 0 {
			return validationErrorf("interval must be positive, got %g", s.Interval)
		}
		if s.TimeLimit <= 0 {
			return validationErrorf("time limit must be positive, got %g", s.TimeLimit)
		}
		if s.Interval > s.TimeLimit {
			return validationErrorf(
				"interval (%g) must not exceed time limit (%g)", s.Interval, s.TimeLimit,
			)
		}
	}

	return nil
}

func (r Region) validate() error {
	if r.X1 < 0 || r.Y1 < 0 || r.X2 < 0 || r.Y2 < 0 {
		return validationErrorf("region coordinates must be non-negative")
	}
	if r.X1 >= r.X2 {
		return validationErrorf("x1 (%d) must be less than x2 (%d)", r.X1, r.X2)
	}
	if r.Y1 >= r.Y2 {
		return validationErrorf("y1 (%d) must be less than y2 (%d)", r.Y1, r.Y2)
	}
	return nil
}

func validationErrorf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, a...))
}

func (s Settings) delayDuration() time.Duration {
	return time.Duration(s.Delay) * time.Second
}

func (s Settings) intervalDuration() time.Duration {
	return time.Duration(s.Interval * float64(time.Second))
}

func (s Settings) timeLimitDuration() time.Duration {
	return time.Duration(s.TimeLimit * float64(time.Second))
}
