// Package utils provides terminal and input helpers for kauri.
//
// # Terminal Utilities
//
//   - SecretPrompter: prompts for a secret, hiding input on a terminal
//     and falling back to line-based reads when stdin is piped
//
// # I/O Utilities
//
//   - ReadLine: reads one line without its line ending
package utils
