// Package execshell wraps external command execution behind a typed
// executor so repository metadata lookups can shell out to git with
// consistent logging and error reporting.
package execshell
