package booking

import (
	"fmt"
	"time"

	"booking-engine/internal/pkg/errs"
)

// Interval is a half-open time range [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, errs.ErrInvalidInterval
	}

	return Interval{
		start: start,
		end:   end,
	}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching intervals (a.end == b.start) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && other.start.Before(iv.end)
}

func (iv Interval) Contains(inner Interval) bool {
	return !inner.start.Before(iv.start) && !inner.end.After(iv.end)
}

func (iv Interval) IsZero() bool {
	return iv.start.IsZero() && iv.end.IsZero()
}

func (iv Interval) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}
