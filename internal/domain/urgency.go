package domain

// Color is a presentation class for a table tag.
type Color int

const (
	ColorNone Color = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorBlue
)

// String returns the colour name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	default:
		return "none"
	}
}

// Urgency classifies a task's due date relative to today.
type Urgency int

const (
	UrgencyUnknown Urgency = iota
	UrgencyUpcoming
	UrgencyToday
	UrgencyOverdue
)

// UrgencyFromDays maps the signed day difference (due minus today) to an urgency.
func UrgencyFromDays(days int) Urgency {
	switch {
	case days > 0:
		return UrgencyUpcoming
	case days == 0:
		return UrgencyToday
	default:
		return UrgencyOverdue
	}
}

// String returns the urgency name.
func (u Urgency) String() string {
	switch u {
	case UrgencyUpcoming:
		return "upcoming"
	case UrgencyToday:
		return "today"
	case UrgencyOverdue:
		return "overdue"
	default:
		return "unknown"
	}
}

// Color returns the colour class used for the urgency tag.
func (u Urgency) Color() Color {
	switch u {
	case UrgencyUpcoming:
		return ColorGreen
	case UrgencyToday:
		return ColorYellow
	case UrgencyOverdue:
		return ColorRed
	default:
		return ColorNone
	}
}
