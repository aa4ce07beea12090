package domain

import (
	"strings"
	"unicode/utf8"
)

// LineWidth is the fixed width, in runes, of every stored body line.
const LineWidth = 44

// ChunkLine splits one line of free text into LineWidth-rune segments and
// pads the last segment with spaces.
func ChunkLine(input string) []string {
	runes := []rune(input)
	if len(runes) == 0 {
		return nil
	}
	chunks := make([]string, 0, (len(runes)+LineWidth-1)/LineWidth)
	for start := 0; start < len(runes); start += LineWidth {
		end := min(start+LineWidth, len(runes))
		chunks = append(chunks, PadLine(string(runes[start:end])))
	}
	return chunks
}

// PadLine right-pads s with spaces to LineWidth runes.
func PadLine(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= LineWidth {
		return s
	}
	return s + strings.Repeat(" ", LineWidth-n)
}

// IsBlank reports whether s contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
