package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
// Without colour it falls back to plain decoration so meaning survives.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.apply(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.apply(fmt.Sprintf(format, a...))
}

func (f Formatter) apply(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// https://no-color.org/
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats runnable commands. Backticks without colour.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file or directory paths.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Success formats success markers and messages.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats failure markers and messages.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning formats warning markers.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info formats hints and directional arrows.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user values such as entry names and key ids.
	// 'Single quotes' without colour.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted formats secondary text. (Parentheses) without colour.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Done renders a "✓ message" status line.
func Done(msg string) string {
	return Success.Sprint("✓") + " " + msg
}

// Failed renders a "✗ message" status line.
func Failed(msg string) string {
	return Error.Sprint("✗") + " " + msg
}

// Hint renders a "→ message" follow-up line.
func Hint(msg string) string {
	return Info.Sprint("→") + " " + msg
}

// Caution renders a "⚠ message" line.
func Caution(msg string) string {
	return Warning.Sprint("⚠") + " " + msg
}
