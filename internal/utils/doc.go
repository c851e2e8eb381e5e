// Package utils hosts shared infrastructure for the readix CLI: the viper
// backed configuration loader and the zap logger factory used by every
// command.
package utils
