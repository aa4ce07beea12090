package domain

// Priority is the single-letter task priority code.
type Priority string

const (
	PriorityCritical Priority = "C"
	PriorityHigh     Priority = "H"
	PriorityNormal   Priority = "N"
	PriorityLow      Priority = "L"
)

// Priorities lists the recognised codes in prompt order.
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow}

// IsValid reports whether p is one of the four recognised codes.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// Name returns the long name of the priority.
func (p Priority) Name() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityNormal:
		return "Normal"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// Color returns the colour class used for the priority tag.
func (p Priority) Color() Color {
	switch p {
	case PriorityCritical:
		return ColorRed
	case PriorityHigh:
		return ColorYellow
	case PriorityNormal:
		return ColorGreen
	default:
		return ColorBlue
	}
}
