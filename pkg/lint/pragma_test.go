package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		comment string
		want    Directive
		wantOK  bool
	}{
		{
			name:    "bare disable",
			comment: " jscs:disable",
			want:    Directive{Kind: DirectiveDisable},
			wantOK:  true,
		},
		{
			name:    "enable with rules",
			comment: " jscs:enable ruleA, ruleB",
			want:    Directive{Kind: DirectiveEnable, Rules: []string{"ruleA", "ruleB"}},
			wantOK:  true,
		},
		{
			name:    "ignore with spacing",
			comment: "jscs : ignore ruleA",
			want:    Directive{Kind: DirectiveIgnore, Rules: []string{"ruleA"}},
			wantOK:  true,
		},
		{
			name:    "rule with trailing note",
			comment: " jscs:disable ruleA because legacy",
			want:    Directive{Kind: DirectiveDisable, Rules: []string{"ruleA"}},
			wantOK:  true,
		},
		{
			name:    "not a directive",
			comment: " just a comment about jscs:disable",
			wantOK:  false,
		},
		{
			name:    "unknown verb",
			comment: " jscs:toggle ruleA",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseDirective(tt.comment)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want.Kind, got.Kind)
				assert.Equal(t, tt.want.Rules, got.Rules)
			}
		})
	}
}

func TestPragmaIndex_OutOfRangeFailsOpen(t *testing.T) {
	t.Parallel()

	idx := BuildPragmaIndex(nil)
	assert.True(t, idx.IsRuleEnabled("anyRule", -1))
	assert.True(t, idx.IsRuleEnabled("anyRule", 42))
}
