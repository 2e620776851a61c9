package lint

import (
	"maps"
	"regexp"
	"strings"

	"github.com/yaklabco/gojscs/pkg/jsast"
)

// AllRules is the pragma state key that applies to every rule.
const AllRules = "*"

// Directive kinds.
const (
	DirectiveEnable  = "enable"
	DirectiveDisable = "disable"
	DirectiveIgnore  = "ignore"
)

var directivePattern = regexp.MustCompile(`(?s)^\s*jscs\s*:\s*(enable|disable|ignore)\b(.*)$`)

// Directive is a parsed suppression comment.
type Directive struct {
	Kind  string
	Rules []string
}

// ParseDirective extracts a directive from a comment body.
func ParseDirective(comment string) (Directive, bool) {
	m := directivePattern.FindStringSubmatch(comment)
	if m == nil {
		return Directive{}, false
	}
	return Directive{Kind: m[1], Rules: parseRuleList(m[2])}, true
}

// parseRuleList splits "a, b,c" into names. Anything after the first
// whitespace-separated word of an item is ignored.
func parseRuleList(s string) []string {
	var rules []string
	for _, item := range strings.Split(s, ",") {
		fields := strings.Fields(item)
		if len(fields) == 0 {
			continue
		}
		rules = append(rules, fields[0])
	}
	return rules
}

// ruleState maps a rule name, or AllRules, to whether it is enabled.
// States are shared between tokens and must be copied before changing.
type ruleState map[string]bool

func (s ruleState) with(other ruleState) ruleState {
	out := make(ruleState, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

func directiveState(rules []string, enabled bool) ruleState {
	if len(rules) == 0 {
		return ruleState{AllRules: enabled}
	}
	st := make(ruleState, len(rules))
	for _, r := range rules {
		st[r] = enabled
	}
	return st
}

// PragmaIndex records, for every token of a file, which rules are
// enabled there.
type PragmaIndex struct {
	states []ruleState
}

// BuildPragmaIndex scans tokens once for jscs directives.
//
// Block directives (enable, disable) apply to the tokens after the comment
// until the next block directive. A line directive (ignore) applies to the
// tokens on either side of the comment up to the first line break in each
// direction.
func BuildPragmaIndex(tokens []jsast.Token) *PragmaIndex {
	states := make([]ruleState, len(tokens))
	block := ruleState{}
	var forward ruleState

	for i := range tokens {
		tok := &tokens[i]
		if i > 0 && !sameLine(&tokens[i-1], tok) {
			forward = nil
		}

		// The comment itself keeps the state in effect before it, so a
		// violation reported at a directive belongs to the code above.
		if forward != nil {
			states[i] = block.with(forward)
		} else {
			states[i] = block
		}

		if tok.IsComment {
			if d, ok := ParseDirective(tok.Value); ok {
				switch d.Kind {
				case DirectiveEnable, DirectiveDisable:
					block = applyBlockDirective(block, d)
				case DirectiveIgnore:
					ignore := directiveState(d.Rules, false)
					for j := i - 1; j >= 0 && sameLine(&tokens[j], &tokens[j+1]); j-- {
						states[j] = states[j].with(ignore)
					}
					forward = forward.with(ignore)
				}
			}
		}
	}

	return &PragmaIndex{states: states}
}

func applyBlockDirective(block ruleState, d Directive) ruleState {
	enabled := d.Kind == DirectiveEnable
	if len(d.Rules) == 0 {
		// A bare directive resets every rule-specific entry.
		return ruleState{AllRules: enabled}
	}
	return block.with(directiveState(d.Rules, enabled))
}

func sameLine(a, b *jsast.Token) bool {
	return a.Loc.End.Line == b.Loc.Start.Line
}

// IsRuleEnabled reports whether rule is enabled at the token with the
// given index. A rule-specific entry wins over the AllRules entry. Unknown
// indices are treated as enabled.
func (p *PragmaIndex) IsRuleEnabled(rule string, tokenIndex int) bool {
	if p == nil || tokenIndex < 0 || tokenIndex >= len(p.states) {
		return true
	}
	st := p.states[tokenIndex]
	if enabled, ok := st[rule]; ok {
		return enabled
	}
	if enabled, ok := st[AllRules]; ok {
		return enabled
	}
	return true
}
