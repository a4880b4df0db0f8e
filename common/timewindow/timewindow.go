// Package timewindow enumerates the bounded time ranges needed to satisfy
// remote endpoints that cap the span of a single history query.
package timewindow

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidStart is returned when the enumeration anchor is the zero time
	ErrInvalidStart = errors.New("start time unset")
	// ErrInvalidTotal is returned when the total lookback duration is not positive
	ErrInvalidTotal = errors.New("total duration must be positive")
	// ErrInvalidInterval is returned when the window interval is not positive
	ErrInvalidInterval = errors.New("interval duration must be positive")
)

// Window is a half-open time range [Start, End). Start precedes End.
type Window struct {
	Start time.Time
	End   time.Time
}

// String implements fmt.Stringer
func (w Window) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.UTC().Format(time.RFC3339), w.End.UTC().Format(time.RFC3339))
}

// EnumerateBackward returns the windows covering total, walking backward
// from startFrom in steps of interval. Windows are ordered newest first and
// do not overlap; the first window ends at startFrom.
//
// Enumeration continues while a window's end is after startFrom-total, so
// when interval does not evenly divide total the final window extends past
// the nominal cutoff rather than being clipped. Callers relying on an exact
// lower bound must filter records themselves.
func EnumerateBackward(startFrom time.Time, total, interval time.Duration) ([]Window, error) {
	if startFrom.IsZero() {
		return nil, ErrInvalidStart
	}
	if total <= 0 {
		return nil, ErrInvalidTotal
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	cutoff := startFrom.Add(-total)
	var windows []Window
	for end := startFrom; end.After(cutoff); end = end.Add(-interval) {
		windows = append(windows, Window{Start: end.Add(-interval), End: end})
	}
	return windows, nil
}
