package ulox

import (
	"io"

	"github.com/kolkov/ulox/internal/interp"
)

// Session runs successive pieces of source against one global scope, so
// variables declared by one call are visible to the next. It backs the
// interactive prompt. A Session is not safe for concurrent use.
type Session struct {
	config *Config
	in     *interp.Interpreter
}

// NewSession creates a session. Output goes to config.Output, or is
// discarded when it is nil.
func NewSession(config *Config) *Session {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()
	out := config.Output
	if out == nil {
		out = io.Discard
	}
	return &Session{
		config: config,
		in:     newInterpreter(out, config),
	}
}

// Exec compiles and runs src in the session's scope. A failing line
// leaves the bindings made before the failure in place.
func (s *Session) Exec(src string) error {
	prog, err := Compile(src)
	if err != nil {
		return err
	}
	if s.config.Debug {
		if err := prog.Dump(s.config.Stderr); err != nil {
			return err
		}
	}
	return publicError(s.in.ExecuteAll(prog.stmts))
}

// Names returns the names defined in the session's global scope, sorted.
func (s *Session) Names() []string {
	return s.in.Env().Names()
}
