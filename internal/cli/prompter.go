package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/validation"
)

// Prompt texts shown to the user.
const (
	actionPrompt   = "Input an action (add, print, edit, delete, end):"
	priorityPrompt = "Input the task priority (C, H, N, L):"
	datePrompt     = "Input the date (yyyy-mm-dd):"
	timePrompt     = "Input the time (hh:mm):"
	bodyPrompt     = "Input a new task (enter a blank line to end):"
	fieldPrompt    = "Input a field to edit (priority, date, time, task):"
)

// Messages printed in response to input.
const (
	msgInvalidAction   = "The input action is invalid"
	msgInvalidPriority = "The input priority is invalid"
	msgInvalidDate     = "The input date is invalid"
	msgInvalidTime     = "The input time is invalid"
	msgInvalidNumber   = "Invalid task number"
	msgInvalidField    = "Invalid field"
	msgBlankTask       = "The task is blank"
	msgInvalidText     = "The input line is not valid text and was skipped"
	msgNoTasks         = "No tasks have been input"
	msgTaskChanged     = "The task is changed"
	msgTaskDeleted     = "The task is deleted"
	msgNotCorrectJSON  = "Not correct JSON"
	msgExiting         = "Tasklist exiting!"
)

// Prompter reads one line per answer from the terminal and writes prompts back.
type Prompter struct {
	reader    *bufio.Reader
	out       io.Writer
	validator *validation.Validator
}

// NewPrompter creates a prompter over the given input and output
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader:    bufio.NewReader(in),
		out:       out,
		validator: validation.NewValidator(),
	}
}

// Out returns the writer prompts are printed to
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Println writes a line of output
func (p *Prompter) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

// ReadLine returns the next input line without its line ending, whatever its
// length. It returns errors.ErrInputClosed once the input is exhausted; a final
// line without a newline is still returned first.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.WrapError(err, errors.ErrorTypeInputClosed, "reading input failed")
		}
		if line == "" {
			return "", errors.ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// PromptUntilValid prints prompt and reads lines until parse accepts one,
// printing invalid after every rejected line.
func PromptUntilValid[T any](p *Prompter, prompt, invalid string, parse func(string) (T, error)) (T, error) {
	for {
		p.Println(prompt)
		line, err := p.ReadLine()
		if err != nil {
			var zero T
			return zero, err
		}
		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		p.Println(invalid)
	}
}

// PromptPriority asks for a priority code
func (p *Prompter) PromptPriority() (domain.Priority, error) {
	return PromptUntilValid(p, priorityPrompt, msgInvalidPriority, p.validator.ParsePriority)
}

// PromptDate asks for a due date
func (p *Prompter) PromptDate() (string, error) {
	return PromptUntilValid(p, datePrompt, msgInvalidDate, p.validator.ParseDate)
}

// PromptTime asks for a due time
func (p *Prompter) PromptTime() (string, error) {
	return PromptUntilValid(p, timePrompt, msgInvalidTime, p.validator.ParseTime)
}

// PromptField asks which field of a task to edit
func (p *Prompter) PromptField() (domain.Field, error) {
	return PromptUntilValid(p, fieldPrompt, msgInvalidField, p.validator.ParseField)
}

// PromptTaskNumber asks for a 1-based position in a list of size tasks.
// Callers must not call it with an empty list.
func (p *Prompter) PromptTaskNumber(size int) (int, error) {
	prompt := fmt.Sprintf("Input the task number (1-%d):", size)
	return PromptUntilValid(p, prompt, msgInvalidNumber, func(s string) (int, error) {
		return p.validator.ParseTaskNumber(s, size)
	})
}

// PromptBody reads task text until a blank line and returns the chunked body.
// Lines that are not valid UTF-8 are rejected and left out of the body.
// When no text was entered it prints the blank-task message and returns an
// empty slice.
func (p *Prompter) PromptBody() ([]string, error) {
	p.Println(bodyPrompt)
	var lines []string
	for {
		line, err := p.ReadLine()
		if err != nil {
			return nil, err
		}
		if domain.IsBlank(line) {
			break
		}
		if !utf8.ValidString(line) {
			p.Println(msgInvalidText)
			continue
		}
		lines = append(lines, domain.ChunkLine(line)...)
	}
	if len(lines) == 0 {
		p.Println(msgBlankTask)
	}
	return lines, nil
}
