package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// parseInput splits one input line into the lower-cased command name and
// its raw arguments. An empty or blank line yields an empty command.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// RunShell runs the interactive command loop: read a line, dispatch, print
// the handler's reply. It returns on close/exit or when input is exhausted.
func RunShell(in io.Reader, out io.Writer, app *App) {
	dispatch := newDispatch(app.BirthdayWindowDays)

	fmt.Fprintln(out, "Welcome to the assistant bot!")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, app.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out, "Good bye!")
			return
		}

		command, args := parseInput(scanner.Text())
		switch command {
		case "":
			fmt.Fprintln(out, "Enter a command.")
		case "close", "exit":
			fmt.Fprintln(out, "Good bye!")
			return
		case "hello":
			fmt.Fprintln(out, "How can I help you?")
		default:
			handler, ok := dispatch[command]
			if !ok {
				fmt.Fprintln(out, "Invalid command.")
				continue
			}
			fmt.Fprintln(out, handler(args, app.Directory))
		}
	}
}
