package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/felixgeelhaar/rolodex/internal/directory/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		command string
		args    []string
	}{
		{"empty", "", "", nil},
		{"blank", "   ", "", nil},
		{"command only", "all", "all", []string{}},
		{"lowercases command", "ADD John", "add", []string{"John"}},
		{"keeps argument case", "add JOHN 0501234567", "add", []string{"JOHN", "0501234567"}},
		{"collapses whitespace", "  change   John  0501234567  0507654321 ", "change", []string{"John", "0501234567", "0507654321"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			command, args := parseInput(tc.line)
			assert.Equal(t, tc.command, command)
			assert.Equal(t, tc.args, args)
		})
	}
}

func runSession(t *testing.T, input string) string {
	t.Helper()
	testApp := &App{
		Directory:          domain.NewDirectory(),
		Prompt:             "",
		BirthdayWindowDays: 7,
	}
	var out bytes.Buffer
	RunShell(strings.NewReader(input), &out, testApp)
	return out.String()
}

func TestRunShell_Session(t *testing.T) {
	output := runSession(t,
		"hello\n"+
			"add John 0501234567\n"+
			"phone John\n"+
			"all\n"+
			"close\n")

	assert.Contains(t, output, "Welcome to the assistant bot!")
	assert.Contains(t, output, "How can I help you?")
	assert.Contains(t, output, `Contact "John" created with phone 0501234567.`)
	assert.Contains(t, output, "Phones of John: 0501234567")
	assert.Contains(t, output, "John: phones=[0501234567], birthday=—")
	assert.Contains(t, output, "Good bye!")
}

func TestRunShell_InvalidAndEmptyCommands(t *testing.T) {
	output := runSession(t,
		"\n"+
			"bogus\n"+
			"exit\n")

	assert.Contains(t, output, "Enter a command.")
	assert.Contains(t, output, "Invalid command.")
	assert.Contains(t, output, "Good bye!")
}

func TestRunShell_ValidationErrorDoesNotStopLoop(t *testing.T) {
	output := runSession(t,
		"add John 123\n"+
			"add Jane 0501234567\n"+
			"close\n")

	assert.Contains(t, output, "Error: phone must be exactly 10 digits")
	assert.Contains(t, output, `Contact "Jane" created with phone 0501234567.`)
}

func TestRunShell_EOFEndsSession(t *testing.T) {
	output := runSession(t, "add John\n")

	assert.Contains(t, output, `Contact "John" created without phone.`)
	assert.Contains(t, output, "Good bye!")
}
