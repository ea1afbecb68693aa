// Package emoji provides the status symbols printed by the command line and the shell.
package emoji

const (
	// Success marks a completed action.
	Success = "✓"

	// Error marks a failed action or a denied login.
	Error = "✗"

	// Warning marks a partial result, such as a checkout that stopped early.
	Warning = "!"

	// Info marks neutral notices like an empty cart.
	Info = "i"

	// Unknown marks a level the writer does not recognize.
	Unknown = "?"

	// Prompt precedes every line the shell reads.
	Prompt = ">"
)
