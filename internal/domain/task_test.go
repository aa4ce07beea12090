package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	lines := ChunkLine("Buy milk")
	task := NewTask(PriorityNormal, "2024-01-01", "09:00", lines)

	assert.Equal(t, Task{Priority: "N", Date: "2024-01-01", Time: "09:00", Lines: lines}, task)
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "valid task",
			task:     Task{Priority: PriorityHigh, Lines: []string{PadLine("x")}},
			expected: true,
		},
		{
			name:     "empty body",
			task:     Task{Priority: PriorityHigh},
			expected: false,
		},
		{
			name:     "unknown priority",
			task:     Task{Priority: "X", Lines: []string{PadLine("x")}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_Urgency(t *testing.T) {
	today := time.Date(2024, time.March, 10, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string
		days     int
		expected Urgency
	}{
		{"due tomorrow", "2024-03-11", 1, UrgencyUpcoming},
		{"due next year", "2025-03-10", 365, UrgencyUpcoming},
		{"due today", "2024-03-10", 0, UrgencyToday},
		{"due yesterday", "2024-03-09", -1, UrgencyOverdue},
		{"across leap day", "2024-02-28", -11, UrgencyOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Priority: PriorityLow, Date: tt.date, Time: "10:00", Lines: []string{PadLine("x")}}

			days, err := task.DaysUntil(today)
			require.NoError(t, err)
			assert.Equal(t, tt.days, days)

			urgency, err := task.Urgency(today)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, urgency)
		})
	}
}

func TestTask_UrgencyUsesWallClockDateOfToday(t *testing.T) {
	// 22:30 UTC on the 10th is already the 11th in Kyiv.
	kyiv := time.FixedZone("EET", 2*60*60)
	now := time.Date(2024, time.March, 10, 22, 30, 0, 0, time.UTC).In(kyiv)
	task := Task{Date: "2024-03-11"}

	urgency, err := task.Urgency(now)
	require.NoError(t, err)
	assert.Equal(t, UrgencyToday, urgency)
}

func TestTask_UrgencyFarDates(t *testing.T) {
	today := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	task := Task{Date: "9999-12-31"}

	urgency, err := task.Urgency(today)
	require.NoError(t, err)
	assert.Equal(t, UrgencyUpcoming, urgency)
}

func TestTask_UrgencyInvalidDate(t *testing.T) {
	task := Task{Date: "not-a-date"}

	urgency, err := task.Urgency(time.Now())
	assert.Error(t, err)
	assert.Equal(t, UrgencyUnknown, urgency)
}

func TestTask_Clone(t *testing.T) {
	original := Task{Priority: PriorityCritical, Lines: []string{PadLine("a")}}
	clone := original.Clone()
	clone.Lines[0] = PadLine("b")

	assert.Equal(t, PadLine("a"), original.Lines[0])
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "", Task{}.String())
	assert.Equal(t, "first", strings.TrimSpace(Task{Lines: []string{PadLine("first"), PadLine("second")}}.String()))
}

func TestPriority(t *testing.T) {
	tests := []struct {
		priority Priority
		valid    bool
		name     string
		color    Color
	}{
		{PriorityCritical, true, "Critical", ColorRed},
		{PriorityHigh, true, "High", ColorYellow},
		{PriorityNormal, true, "Normal", ColorGreen},
		{PriorityLow, true, "Low", ColorBlue},
		{Priority("c"), false, "Unknown", ColorBlue},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.priority.IsValid())
			assert.Equal(t, tt.name, tt.priority.Name())
			assert.Equal(t, tt.color, tt.priority.Color())
		})
	}
}

func TestUrgencyColor(t *testing.T) {
	assert.Equal(t, ColorGreen, UrgencyUpcoming.Color())
	assert.Equal(t, ColorYellow, UrgencyToday.Color())
	assert.Equal(t, ColorRed, UrgencyOverdue.Color())
	assert.Equal(t, ColorNone, UrgencyUnknown.Color())
	assert.Equal(t, "overdue", UrgencyOverdue.String())
}
