// Package audit records what happened to a store.
//
// Every init, new and read is appended to a JSON Lines file inside the
// store directory:
//
//	<store>/.audit.jsonl
//
// Each line carries a UUID, a UTC timestamp, the operation and, where it
// applies, the entry name and key id. Secret values are never logged.
//
// Logging is best-effort. If the file cannot be written the operation
// carries on. ReadEntries skips malformed lines so a torn final write
// does not hide earlier history.
package audit
