package job

import (
	"errors"
	"fmt"
)

// Exit codes, one per pipeline stage. Everything is fatal; nothing is
// retried.
const (
	ExitConfiguration = 2
	ExitImport        = 3
	ExitRender        = 4
	ExitIO            = 5

	// ExitInterrupted is the conventional code for death by SIGINT.
	ExitInterrupted = 130
)

// ErrInterrupted reports that the user stopped the run, as opposed to
// the backend failing.
var ErrInterrupted = errors.New("interrupted while rendering")

// ConfigurationError reports a missing or malformed command line option.
type ConfigurationError struct {
	Flag   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: --%s: %s", e.Flag, e.Reason)
}

// ImportError reports an input file the host could not possibly load:
// missing, unreadable or malformed.
type ImportError struct {
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import: %s: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// RenderError reports a failure of the host render backend.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// PathError reports an unwritable or otherwise unusable output path.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("output: %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// ExitCode maps a pipeline error to the process exit code for its stage.
func ExitCode(err error) int {
	if errors.Is(err, ErrInterrupted) {
		return ExitInterrupted
	}
	var (
		confErr   *ConfigurationError
		importErr *ImportError
		renderErr *RenderError
		pathErr   *PathError
	)
	switch {
	case errors.As(err, &confErr):
		return ExitConfiguration
	case errors.As(err, &importErr):
		return ExitImport
	case errors.As(err, &renderErr):
		return ExitRender
	case errors.As(err, &pathErr):
		return ExitIO
	}
	return 1
}
