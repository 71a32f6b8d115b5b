// Package logger provides leveled logging for kauri commands.
//
// # Verbosity Levels
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only user-facing warnings are shown. Every level writes to
// stderr; stdout carries only command output.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Shown with --verbose or --debug
//	Logger.WarnfUser()      // Always shown, formatted for end users
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// The root command builds a Logger in its PersistentPreRunE and hands it
// to workflows through workflows.Deps.
package logger
