// Package render formats the task list as the fixed-width text table.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"tasklist/internal/config"
	"tasklist/internal/domain"
)

const (
	separator = "+----+------------+-------+---+---+--------------------------------------------+"
	header    = "| N  |    Date    | Time  | P | D |                   Task                     |"
)

// TableRenderer writes the task table. Rendering never changes the tasks.
type TableRenderer struct {
	profile  termenv.Profile
	location *time.Location
	now      func() time.Time
}

// NewTableRenderer creates a renderer that colours tag cells with profile and
// decides what "today" is by reading now in location.
func NewTableRenderer(profile termenv.Profile, location *time.Location, now func() time.Time) *TableRenderer {
	if location == nil {
		location = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &TableRenderer{
		profile:  profile,
		location: location,
		now:      now,
	}
}

// ProfileFor maps a configured colour mode to a termenv profile.
func ProfileFor(mode string, isTerminal bool) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAuto:
		if isTerminal {
			return termenv.ANSI
		}
		return termenv.Ascii
	default:
		return termenv.ANSI
	}
}

// Today returns the current date in the renderer's location.
func (r *TableRenderer) Today() time.Time {
	return r.now().In(r.location)
}

// Render writes the header and one row group per task.
func (r *TableRenderer) Render(w io.Writer, tasks []domain.Task) error {
	var b strings.Builder
	b.WriteString(separator + "\n")
	b.WriteString(header + "\n")
	b.WriteString(separator + "\n")

	today := r.Today()
	for i, task := range tasks {
		urgency, err := task.Urgency(today)
		if err != nil {
			urgency = domain.UrgencyUnknown
		}
		first := ""
		if len(task.Lines) > 0 {
			first = task.Lines[0]
		}
		fmt.Fprintf(&b, "| %-2d | %-10s | %-5s | %s | %s |%s|\n",
			i+1, task.Date, displayTime(task.Time), r.cell(task.Priority.Color()), r.cell(urgency.Color()), first)
		for _, line := range task.Lines[min(1, len(task.Lines)):] {
			fmt.Fprintf(&b, "|    |            |       |   |   |%s|\n", line)
		}
		b.WriteString(separator + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// cell renders a one-space tag cell with the colour's bright background.
func (r *TableRenderer) cell(c domain.Color) string {
	var bg termenv.Color
	switch c {
	case domain.ColorRed:
		bg = termenv.ANSIBrightRed
	case domain.ColorYellow:
		bg = termenv.ANSIBrightYellow
	case domain.ColorGreen:
		bg = termenv.ANSIBrightGreen
	case domain.ColorBlue:
		bg = termenv.ANSIBrightBlue
	default:
		return " "
	}
	return r.profile.String(" ").Background(bg).String()
}

// displayTime drops a stored seconds component so the value fits the column.
func displayTime(t string) string {
	if len(t) == len("15:04:05") {
		return t[:len("15:04")]
	}
	return t
}
