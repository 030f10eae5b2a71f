package ulox

import "io"

// Config holds configuration options for running ulox programs.
type Config struct {
	// Output is the writer for print statements.
	// If nil, output is captured and returned from Run.
	Output io.Writer

	// Stderr is the writer for diagnostic output such as the Debug dump.
	// If nil, diagnostics are discarded.
	Stderr io.Writer

	// Debug writes the canonical form of every parsed statement to Stderr
	// before execution starts.
	Debug bool

	// StrictConditions makes "if" branch only on boolean conditions.
	// A condition of any other kind runs neither branch.
	// By default conditions follow truthiness: nil and false are falsy,
	// everything else is truthy.
	StrictConditions bool
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Stderr == nil {
		c.Stderr = io.Discard
	}
}
