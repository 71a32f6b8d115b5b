package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/kauri/internal/errors"
	"github.com/PolarWolf314/kauri/internal/configs"
	"github.com/PolarWolf314/kauri/internal/ui"
	"github.com/briandowns/spinner"
)

// reportedError marks an error whose message has already been printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// reported wraps err so Execute does not print it a second time.
func reported(err error) error {
	return &reportedError{err: err}
}

// startSpinner creates and starts a spinner on stderr when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
// The cleanup function may be called early, e.g. before printing a failure;
// later calls do nothing.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// prints the final message to stdout after the spinner line is cleared.
// Only success messages belong in FinalMSG; failures go through printFailure.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	quiet := !verbose && !debug
	if quiet {
		s.Start()
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	stopped := false
	cleanup := func() {
		if stopped {
			return
		}
		stopped = true

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(os.Stdout, finalMsg)
		}
	}

	return s, cleanup
}

// printFailure writes the formatted error to stderr and marks it reported.
func printFailure(err error) error {
	Logger.Errorf("%v", err)
	fmt.Fprint(os.Stderr, ui.EnsureNewline(formatError(err)))
	return reported(err)
}

// formatError turns a workflow error into the message shown to the user.
func formatError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrNotInitialized):
		return ui.Failed("Kauri has not been initialized") + "\n" +
			ui.Hint("Run "+ui.Code.Sprint("kauri init <key-id>")+" first")

	case errors.Is(err, kerrors.ErrConfigCorrupt):
		return ui.Failed(err.Error()) + "\n" +
			ui.Hint("Run "+ui.Code.Sprint("kauri init <key-id>")+" to rewrite it")

	case errors.Is(err, kerrors.ErrConfirmationMismatch):
		return ui.Failed("Secrets do not match, nothing was saved")

	case errors.Is(err, kerrors.ErrSecretExists):
		return ui.Failed(err.Error()) + "\n" +
			ui.Hint("Use "+ui.Code.Sprint("--force")+" to overwrite it")

	case errors.Is(err, kerrors.ErrSecretNotFound):
		return ui.Failed(err.Error()) + "\n" +
			ui.Hint("Run "+ui.Code.Sprint("kauri list")+" to see stored secrets")

	case errors.Is(err, kerrors.ErrToolNotFound):
		return ui.Failed(err.Error()) + "\n" +
			ui.Hint("Install GnuPG or set "+ui.Code.Sprint(configs.GPGBinaryEnvVar)+" to its path")

	case errors.Is(err, kerrors.ErrClipboardUnavailable):
		return ui.Failed(err.Error()) + "\n" +
			ui.Hint("Install xclip, xsel or wl-clipboard, or run without "+ui.Code.Sprint("--copy"))

	default:
		return ui.Failed(err.Error())
	}
}
