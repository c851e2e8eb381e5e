// Package cli wires the readix root command: configuration loading,
// structured logging, and the assess, remediate, and validate subcommands.
package cli
