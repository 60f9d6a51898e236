package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
)

func TestSplitMergeCell(t *testing.T) {
	tests := []struct {
		input  string
		merged bool
		parts  [2]string
	}{
		{"24,458.43二、财政专户管理资金", true, [2]string{"24,458.43", "二、财政专户管理资金"}},
		{"24,458.43十二、财政专户管理资金", true, [2]string{"24,458.43", "十二、财政专户管理资金"}},
		{"二、财政专户管理资金", false, [2]string{}},
		{"24,458.43", false, [2]string{}},
		{"", false, [2]string{}},
	}

	for _, tt := range tests {
		merged, parts := SplitMergeCell(tt.input)
		assert.Equal(t, tt.merged, merged, "SplitMergeCell(%q)", tt.input)
		assert.Equal(t, tt.parts, parts, "SplitMergeCell(%q)", tt.input)
	}
}

func TestCorrectPrefersLeftNeighbour(t *testing.T) {
	g := models.Grid{
		{"", "24,458.43二、财政专户管理资金", ""},
	}

	got, repairs := Correct(g)

	assert.Equal(t, models.Grid{{"24,458.43", "二、财政专户管理资金", ""}}, got)
	require.Len(t, repairs, 1)
	assert.Equal(t, 0, repairs[0].Target)
	assert.False(t, repairs[0].Ambiguous())
}

func TestCorrectFallsBackToRightNeighbour(t *testing.T) {
	g := models.Grid{
		{"24,458.43二、财政专户管理资金", ""},
	}

	got, repairs := Correct(g)

	assert.Equal(t, models.Grid{{"24,458.43", "二、财政专户管理资金"}}, got)
	require.Len(t, repairs, 1)
	assert.Equal(t, 1, repairs[0].Target)
}

func TestCorrectLeavesAmbiguousCell(t *testing.T) {
	tests := []models.Grid{
		{{"a", "24,458.43二、财政专户管理资金", "b"}},
		{{"24,458.43二、财政专户管理资金"}},
		{{"a", "24,458.43二、财政专户管理资金"}},
	}

	for _, g := range tests {
		want := g.Clone()
		got, repairs := Correct(g)
		assert.Equal(t, want, got)
		require.Len(t, repairs, 1)
		assert.True(t, repairs[0].Ambiguous())
	}
}

func TestCorrectIsIdempotent(t *testing.T) {
	g := models.Grid{
		{"", "1,000.00三、事业收入", "支出", ""},
		{"24,458.43十二、财政专户管理资金", "", "x", "5.00四、其他"},
		{"1.项目A", "100.00", "", ""},
	}

	once, _ := Correct(g.Clone())
	twice, repairs := Correct(once.Clone())

	assert.Equal(t, once, twice)
	for _, r := range repairs {
		assert.True(t, r.Ambiguous(), "unexpected repair at [%d][%d]", r.Row, r.Col)
	}
}
