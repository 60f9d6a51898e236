package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
)

var (
	balanceHead = []string{"收入", "收入", "支出", "支出", "支出", "支出"}
	balanceSub1 = []string{"项目名称", "金额", "功能分类", "功能分类", "支出用途", "支出用途"}
	balanceSub2 = []string{"", "", "功能科目名称", "金额", "项目名称", "金额"}
	balanceTail = []string{"收入合计", "100.00", "支出合计", "100.00", "", ""}
	balanceData = []string{"1.项目A", "100.00", "", "", "", ""}
)

func TestLocateSingleGrid(t *testing.T) {
	grids := []models.Grid{
		{{"封面"}},
		{balanceHead, balanceSub1, balanceSub2, balanceData, balanceTail},
		{{"其他"}},
	}

	g, next, ok := Locate(grids, 1, BalanceSchema(), DefaultMaxFragments)

	require.True(t, ok)
	assert.Equal(t, 2, next)
	assert.Equal(t, 5, g.Rows())
}

func TestLocateSpanningGrids(t *testing.T) {
	grids := []models.Grid{
		{balanceHead, balanceSub1, balanceSub2},
		{balanceData},
		{{"2.项目B", "50.00"}},
		{balanceTail},
	}

	g, next, ok := Locate(grids, 0, BalanceSchema(), DefaultMaxFragments)

	require.True(t, ok)
	assert.Equal(t, 4, next)
	assert.Equal(t, 6, g.Rows())
	assert.Equal(t, 6, g.Cols())
	assert.Equal(t, []string{"2.项目B", "50.00", "", "", "", ""}, g[4])
}

func TestLocateDoesNotModifyRawGrids(t *testing.T) {
	grids := []models.Grid{
		{balanceHead, balanceSub1, balanceSub2, balanceTail},
	}

	g, _, ok := Locate(grids, 0, BalanceSchema(), DefaultMaxFragments)
	require.True(t, ok)
	g[0][0] = "changed"

	assert.Equal(t, "收入", grids[0][0][0])
}

func TestLocateNoTable(t *testing.T) {
	tail := models.Grid{balanceTail}
	body := models.Grid{balanceData}

	tests := []struct {
		name  string
		grids []models.Grid
		index int
	}{
		{"head mismatch", []models.Grid{{{"收入", "支出"}}, tail}, 0},
		{"empty grid", []models.Grid{{}}, 0},
		{"index out of range", []models.Grid{tail}, 3},
		{"negative index", []models.Grid{tail}, -1},
		{"tail beyond cap", []models.Grid{{balanceHead}, body, body, body, tail}, 0},
		{"input ends without tail", []models.Grid{{balanceHead}, body}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, next, ok := Locate(tt.grids, tt.index, BalanceSchema(), DefaultMaxFragments)
			assert.False(t, ok)
			assert.Nil(t, g)
			assert.Equal(t, tt.index, next)
		})
	}
}

func TestLocateRespectsCap(t *testing.T) {
	body := models.Grid{balanceData}
	grids := []models.Grid{{balanceHead}, body, body, body, {balanceTail}}

	for maxFragments := 1; maxFragments <= 6; maxFragments++ {
		g, next, ok := Locate(grids, 0, BalanceSchema(), maxFragments)
		if maxFragments < 5 {
			assert.False(t, ok, "cap %d", maxFragments)
			assert.Equal(t, 0, next)
			continue
		}
		require.True(t, ok, "cap %d", maxFragments)
		assert.Equal(t, 5, next)
		assert.Equal(t, 5, g.Rows())
	}
}
