// Package emoji provides symbol constants for CLI output.
package emoji

const (
	// Success marks a completed change.
	Success = "✓"

	// Error marks a failed step.
	Error = "✗"

	// Warning marks a change that was skipped or only partly applied.
	Warning = "!"

	// Removed marks an entry dropped from the catalog.
	Removed = "-"

	// Added marks an entry added to the catalog.
	Added = "+"
)
