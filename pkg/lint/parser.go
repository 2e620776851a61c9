package lint

import (
	"context"

	"github.com/yaklabco/gojscs/pkg/jsast"
)

// Parser turns JavaScript source into a jsast.Program.
//
// The lint package defines this interface in the consumer package.
// Implementations (e.g. parser/treesitter) provide the concrete parsing.
//
// Implementations must be:
//   - deterministic for a given (source, options) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Name identifies the parser in configuration.
	Name() string

	// Parse returns the token array (comments included, ordered by start
	// offset, Index fields set) and the node arena, or an error. Syntax
	// errors are reported as *jsast.SyntaxError.
	Parse(ctx context.Context, filename string, source []byte, opts jsast.ParseOptions) (*jsast.Program, error)
}
