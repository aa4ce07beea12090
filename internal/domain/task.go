package domain

import "time"

// Date and clock layouts used for the stored and displayed task fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const secondsPerDay = 24 * 60 * 60

// Task represents a single to-do record in the domain model.
// Field order matches the order of the persisted JSON object.
type Task struct {
	Priority Priority `json:"priority"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Lines    []string `json:"tasks"`
}

// NewTask creates a new Task from already canonical field values.
func NewTask(priority Priority, date, clock string, lines []string) Task {
	return Task{
		Priority: priority,
		Date:     date,
		Time:     clock,
		Lines:    lines,
	}
}

// IsValid checks if the task carries a body and a recognised priority.
func (t Task) IsValid() bool {
	return len(t.Lines) > 0 && t.Priority.IsValid()
}

// DueDate parses the due date as a calendar day in UTC.
func (t Task) DueDate() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}

// DaysUntil returns the signed number of calendar days from today to the due date.
func (t Task) DaysUntil(today time.Time) (int, error) {
	due, err := t.DueDate()
	if err != nil {
		return 0, err
	}
	return DaysBetween(today, due), nil
}

// Urgency classifies the task against today.
func (t Task) Urgency(today time.Time) (Urgency, error) {
	days, err := t.DaysUntil(today)
	if err != nil {
		return UrgencyUnknown, err
	}
	return UrgencyFromDays(days), nil
}

// Clone returns a copy that shares no slice storage with t.
func (t Task) Clone() Task {
	c := t
	c.Lines = append([]string(nil), t.Lines...)
	return c
}

// String returns the first body line for display purposes.
func (t Task) String() string {
	if len(t.Lines) == 0 {
		return ""
	}
	return t.Lines[0]
}

// DaysBetween counts whole calendar days from a to b using each value's own
// wall-clock date, so a and b may be in different locations.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}
