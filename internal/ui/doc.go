// Package ui provides semantic text formatting for CLI output.
//
// Formatters are chosen by meaning, not colour:
//
//	ui.Code.Sprint("kauri init")     // runnable command
//	ui.Path.Sprint(storePath)        // file system path
//	ui.Highlight.Sprint(name)        // user-supplied value
//
// When NO_COLOR is set, or the terminal lacks colour, Code gains
// backticks, Highlight gains quotes and Muted gains parentheses so the
// output stays readable.
//
// Done, Failed, Hint and Caution build the ✓/✗/→/⚠ status lines used
// throughout the commands.
package ui
