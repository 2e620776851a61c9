// Package lint provides the rule engine for gojscs: the per-file token and
// node index, suppression pragmas, the error collector, the rule contract,
// configuration binding and the checker that ties them together.
package lint

// Rule is a single configurable style check.
//
// One Rule instance is shared by every file of a run, so Check must treat
// any state set by Configure as read-only and must not accumulate state
// across files.
type Rule interface {
	// Configure validates the option value and stores derived state.
	// It may be called more than once; the last call wins.
	Configure(value any) error

	// OptionName is the stable key of the rule. It is the configuration
	// key, the name used in suppression pragmas and the tag on errors.
	OptionName() string

	// Check reports violations in file through errs. It must not panic on
	// well-formed input.
	Check(file *File, errs *Errors)
}

// Fixer is implemented by rules that can repair their own errors.
//
// Fix runs only after every rule has finished checking the file. It
// mutates file through its edit methods.
type Fixer interface {
	Fix(file *File, err Error) error
}

// Describer is implemented by rules that carry a human-readable summary.
type Describer interface {
	Description() string
}

// Fixable reports whether rule implements Fixer.
func Fixable(rule Rule) bool {
	_, ok := rule.(Fixer)
	return ok
}
