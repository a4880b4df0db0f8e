// Package types holds wire-format scalar types shared by the endpoint
// payloads.
package types

import (
	"fmt"
	"strconv"
	"time"
)

// Time represents a time.Time that unmarshals from the epoch timestamps the
// exchange emits, either bare numbers or numbers wrapped in a JSON string.
// Seconds and milliseconds precision are detected by digit count.
// MarshalJSON serializes to epoch milliseconds, the format the exchange
// accepts on outbound parameters.
type Time time.Time

// UnmarshalJSON deserializes epoch timestamp information
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	switch s {
	case "null", "0", `""`, `"0"`:
		*t = Time(time.Time{})
		return nil
	}

	if s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	standard, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Time: %w", string(data), err)
	}

	switch len(s) {
	case 10:
		// Seconds
		*t = Time(time.Unix(standard, 0))
	case 13:
		// Milliseconds
		*t = Time(time.UnixMilli(standard))
	default:
		return fmt.Errorf("cannot unmarshal %s into Time", string(data))
	}
	return nil
}

// MarshalJSON serializes the time to epoch milliseconds
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Time().UnixMilli(), 10)), nil
}

// Time returns the underlying time.Time
func (t Time) Time() time.Time { return time.Time(t) }

// String returns a string representation of the time
func (t Time) String() string {
	return t.Time().String()
}
