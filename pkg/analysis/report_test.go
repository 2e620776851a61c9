package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals_HasErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		totals Totals
		want   bool
	}{
		{name: "no errors", totals: Totals{Files: 3}, want: false},
		{name: "has errors", totals: Totals{Errors: 5}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.totals.HasErrors())
		})
	}
}

func TestTotals_HasFailures(t *testing.T) {
	t.Parallel()

	assert.False(t, Totals{Errors: 2}.HasFailures())
	assert.True(t, Totals{FilesFailed: 1}.HasFailures())
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.False(t, SortField("severity").IsValid())
}
