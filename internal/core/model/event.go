package model

import "time"

// Event is one parsed log record.
type Event struct {
	Timestamp   time.Time
	HasFraction bool // source carried a sub-second part
	Object      string
	Message     string
	Line        int // 1-based source line
}

// TimeOfDay returns the wall-clock offset of the event from midnight.
func (e Event) TimeOfDay() time.Duration {
	return ClockOffset(e.Timestamp)
}

// SameAs reports whether two events describe the same record, ignoring the
// source line and the calendar date.
func (e Event) SameAs(other Event) bool {
	return e.TimeOfDay() == other.TimeOfDay() &&
		e.Object == other.Object &&
		e.Message == other.Message
}

// ClockOffset returns the time-of-day component of t as a duration.
func ClockOffset(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

// Payload is the data attached to a marker so that a click can be resolved
// back to its event.
type Payload struct {
	Timestamp string `json:"timestamp"`
	Object    string `json:"object"`
	Message   string `json:"message"`
}
