// Package output provides formatted terminal output utilities for the
// operator-facing command surface.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/relayops/relayctl/internal/constants"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	gray   = color.New(color.FgHiBlack)
	bold   = color.New(color.Bold)

	// Stdout is the output writer for normal output (can be overridden for testing).
	Stdout io.Writer = os.Stdout
	// Stderr is the output writer for error output (can be overridden for testing).
	Stderr io.Writer = os.Stderr

	// Disable colors if not a TTY or NO_COLOR is set
	_ = func() bool {
		disable := os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout)
		if disable {
			color.NoColor = true
		}
		return disable
	}()
)

// Successf prints a success message with a checkmark (to stderr)
// Example: ✓ Phase compute completed
func Successf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, green.Sprint("✓")+" "+format+"\n", a...)
}

// Infof prints an informational message with an arrow (to stderr)
// Example: → Reconciling network relay-dev-vpc...
func Infof(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, cyan.Sprint("→")+" "+format+"\n", a...)
}

// Warningf prints a warning message with a warning symbol (to stderr)
// Example: ⚠ 2 reserved external addresses found
func Warningf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, yellow.Sprint("⚠")+" "+format+"\n", a...)
}

// Errorf prints an error message with an X symbol (to stderr)
// Example: ✗ Failed to create instance: quota exceeded
func Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, red.Sprint("✗")+" "+format+"\n", a...)
}

// Step prints a step in a multi-step process (to stderr)
// Example: [2/6] identity
func Step(step, total int, message string) {
	_, _ = gray.Fprintf(Stderr, "[%d/%d] ", step, total)
	_, _ = fmt.Fprintln(Stderr, message)
}

// StepSuccess prints a successful step completion (to stderr)
func StepSuccess(step, total int, message string) {
	_, _ = gray.Fprintf(Stderr, "[%d/%d] ", step, total)
	_, _ = fmt.Fprintf(Stderr, "%s %s\n", green.Sprint("✓"), message)
}

// StepError prints a failed step (to stderr)
func StepError(step, total int, message string) {
	_, _ = gray.Fprintf(Stderr, "[%d/%d] ", step, total)
	_, _ = fmt.Fprintf(Stderr, "%s %s\n", red.Sprint("✗"), message)
}

// Header prints a section header with a separator line (to stderr)
func Header(text string) {
	_, _ = fmt.Fprintln(Stderr)
	_, _ = fmt.Fprintln(Stderr, bold.Sprint(text))
	_, _ = fmt.Fprintln(Stderr, gray.Sprint(strings.Repeat("━", constants.HeaderSeparatorLength)))
}

// KeyValue prints a key-value pair with indentation
// Example:   Region: us-east-1
func KeyValue(key, value string) {
	_, _ = fmt.Fprintf(Stdout, "  %s: %s\n", gray.Sprint(key), value)
}

// Blank prints a blank line
func Blank() {
	_, _ = fmt.Fprintln(Stdout)
}

// Println prints a plain line without any formatting
func Println(a ...any) {
	_, _ = fmt.Fprintln(Stdout, a...)
}

// Bold prints text in bold
func Bold(text string) string {
	return bold.Sprint(text)
}

// Green prints text in green
func Green(text string) string {
	return green.Sprint(text)
}

// Red prints text in red
func Red(text string) string {
	return red.Sprint(text)
}

// Yellow prints text in yellow
func Yellow(text string) string {
	return yellow.Sprint(text)
}

// Table prints a simple table with headers
func Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, h := range headers {
		_, _ = fmt.Fprint(Stdout, bold.Sprint(h), strings.Repeat(" ", widths[i]-len(h)), "  ")
	}
	_, _ = fmt.Fprintln(Stdout)

	for i := range headers {
		_, _ = fmt.Fprintf(Stdout, "%s  ", gray.Sprint(strings.Repeat("─", widths[i])))
	}
	_, _ = fmt.Fprintln(Stdout)

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			_, _ = fmt.Fprint(Stdout, cell, strings.Repeat(" ", widths[i]-len(cell)), "  ")
		}
		_, _ = fmt.Fprintln(Stdout)
	}
}

// Confirm prompts the user for yes/no confirmation
// Returns true if user confirms (y/Y), false otherwise
func Confirm(prompt string) bool {
	_, _ = fmt.Fprintf(Stdout, "%s [y/N]: ", yellow.Sprint("?")+" "+prompt)

	var response string
	_, _ = fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		fileInfo, _ := f.Stat()
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
