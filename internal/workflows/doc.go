// Package workflows provides high-level orchestration for kauri commands.
//
// Each command has one workflow that loads configuration, validates
// prerequisites, performs the operation and records an audit entry. The
// cmd package stays a thin layer that parses flags, prompts, calls a
// workflow and formats the result.
//
// # Available Workflows
//
//   - Init: creates the store directory and writes the configuration
//   - NewPreCheck / New: validates then writes a new entry
//   - Read: decrypts an entry, optionally copying it to the clipboard
//   - List: lists entry names
//   - ShowConfig: returns the active configuration
//   - Log: returns audit log entries
//
// # Dependencies
//
// Workflows never reach for process-wide state. Paths, the PGP tool, the
// clipboard and the logger arrive in a Deps value, so tests substitute
// pgptest fakes and temporary directories.
//
// # Error Handling
//
// Workflows return typed errors from internal/errors. Use errors.Is() to
// branch on them:
//
//	result, err := workflows.Read(ctx, deps, opts)
//	if errors.Is(err, kerrors.ErrNotInitialized) {
//	    // suggest `kauri init`
//	}
package workflows
