package lint

import (
	"slices"
	"sync"
)

// Registry holds rules keyed by option name.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule. Registering a second rule under an option name
// that is already taken fails with a *DuplicateRuleError.
func (r *Registry) Register(rule Rule) error {
	name := rule.OptionName()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[name]; exists {
		return &DuplicateRuleError{Name: name}
	}
	r.rules[name] = rule
	return nil
}

// Get retrieves a rule by option name.
func (r *Registry) Get(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[name]
	return rule, ok
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Names returns all option names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Rules returns all registered rules sorted by option name.
func (r *Registry) Rules() []Rule {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Rule, 0, len(names))
	for _, name := range names {
		out = append(out, r.rules[name])
	}
	return out
}
