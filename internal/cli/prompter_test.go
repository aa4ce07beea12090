package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/domain"
	apperrors "tasklist/internal/errors"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestPrompter_PromptPriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.Priority
		retries  int
	}{
		{"upper case", "C\n", domain.PriorityCritical, 0},
		{"lower case", "h\n", domain.PriorityHigh, 0},
		{"surrounding spaces", "  n \n", domain.PriorityNormal, 0},
		{"invalid then valid", "x\nlow\nL\n", domain.PriorityLow, 2},
		{"empty then valid", "\nN\n", domain.PriorityNormal, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)

			priority, err := p.PromptPriority()

			require.NoError(t, err)
			assert.Equal(t, tt.expected, priority)
			assert.Equal(t, tt.retries+1, strings.Count(out.String(), priorityPrompt))
			assert.Equal(t, tt.retries, strings.Count(out.String(), msgInvalidPriority))
		})
	}
}

func TestPrompter_PromptDate(t *testing.T) {
	p, out := newTestPrompter("2023-02-30\n2023-13-01\nyesterday\n2024-2-29\n")

	date, err := p.PromptDate()

	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", date)
	assert.Equal(t, 3, strings.Count(out.String(), msgInvalidDate))
}

func TestPrompter_PromptTime(t *testing.T) {
	p, out := newTestPrompter("24:00\n12:60\n9:5\n")

	clock, err := p.PromptTime()

	require.NoError(t, err)
	assert.Equal(t, "09:05", clock)
	assert.Equal(t, 2, strings.Count(out.String(), msgInvalidTime))
}

func TestPrompter_PromptTaskNumber(t *testing.T) {
	p, out := newTestPrompter("0\n4\nabc\n3\n")

	n, err := p.PromptTaskNumber(3)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Contains(t, out.String(), "Input the task number (1-3):")
	assert.Equal(t, 3, strings.Count(out.String(), msgInvalidNumber))
}

func TestPrompter_PromptField(t *testing.T) {
	p, out := newTestPrompter("body\nTASK\n")

	field, err := p.PromptField()

	require.NoError(t, err)
	assert.Equal(t, domain.FieldTask, field)
	assert.Equal(t, 1, strings.Count(out.String(), msgInvalidField))
}

func TestPrompter_PromptBody(t *testing.T) {
	t.Run("chunks every line", func(t *testing.T) {
		long := strings.Repeat("a", 50)
		p, out := newTestPrompter("Buy milk\n" + long + "\n\nnext action\n")

		lines, err := p.PromptBody()

		require.NoError(t, err)
		require.Len(t, lines, 3)
		assert.Equal(t, domain.PadLine("Buy milk"), lines[0])
		assert.Equal(t, strings.Repeat("a", 44), lines[1])
		assert.Equal(t, domain.PadLine(strings.Repeat("a", 6)), lines[2])
		assert.Equal(t, bodyPrompt+"\n", out.String())
	})

	t.Run("whitespace line ends input", func(t *testing.T) {
		p, _ := newTestPrompter("first\n   \t\nsecond\n")

		lines, err := p.PromptBody()

		require.NoError(t, err)
		assert.Equal(t, []string{domain.PadLine("first")}, lines)
	})

	t.Run("blank body", func(t *testing.T) {
		p, out := newTestPrompter("  \n")

		lines, err := p.PromptBody()

		require.NoError(t, err)
		assert.Empty(t, lines)
		assert.Contains(t, out.String(), msgBlankTask)
	})
}

func TestPrompter_PromptBodySkipsInvalidUTF8(t *testing.T) {
	p, out := newTestPrompter("ok\n\xff\xfebroken\n\n")

	lines, err := p.PromptBody()

	require.NoError(t, err)
	assert.Equal(t, []string{domain.PadLine("ok")}, lines)
	assert.Contains(t, out.String(), msgInvalidText)
}

func TestPrompter_ReadLineHasNoLengthLimit(t *testing.T) {
	long := strings.Repeat("x", 3*1024*1024)
	p, _ := newTestPrompter(long + "\nnext\n")

	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Len(t, line, len(long))

	line, err = p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "next", line)
}

func TestPrompter_ReadLineWithoutTrailingNewline(t *testing.T) {
	p, _ := newTestPrompter("end")

	line, err := p.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "end", line)

	_, err = p.ReadLine()
	assert.ErrorIs(t, err, apperrors.ErrInputClosed)
}

func TestPrompter_InputClosed(t *testing.T) {
	p, _ := newTestPrompter("x\n")

	_, err := p.PromptPriority()

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInputClosed)
}

func TestPrompter_ReadLineStripsCarriageReturn(t *testing.T) {
	p, _ := newTestPrompter("add\r\n")

	line, err := p.ReadLine()

	require.NoError(t, err)
	assert.Equal(t, "add", line)
}

func TestPromptUntilValid_CustomParser(t *testing.T) {
	p, out := newTestPrompter("no\nyes\n")

	value, err := PromptUntilValid(p, "Continue?", "Say yes", func(s string) (bool, error) {
		if s != "yes" {
			return false, apperrors.NewInvalidInputError("answer", s, "not yes")
		}
		return true, nil
	})

	require.NoError(t, err)
	assert.True(t, value)
	assert.Equal(t, "Continue?\nSay yes\nContinue?\n", out.String())
}
