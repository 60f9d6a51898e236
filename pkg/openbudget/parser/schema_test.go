package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/openbudget-go/pkg/openbudget/models"
)

func TestBalanceSchemaParse(t *testing.T) {
	g := models.Grid{balanceHead, balanceSub1, balanceSub2, balanceData, balanceTail}

	rec, repairs, err := BalanceSchema().Parse(g, 2019)

	require.NoError(t, err)
	assert.Empty(t, repairs)
	assert.Equal(t, 2019, rec.Year)
	v, ok := rec.Get("项目A")
	require.True(t, ok)
	assert.Equal(t, 100.0, v)
	assert.Equal(t, []string{"项目A", "收入合计", "支出合计"}, rec.Labels)
}

func TestBalanceSchemaParseRepairsAndPairs(t *testing.T) {
	g := models.Grid{
		balanceHead,
		balanceSub1,
		balanceSub2,
		{"一、一般公共预算", "1,200.00", "201一般公共服务支出", "800.00", "1.基本支出", "1,000.00"},
		{"1.一般公共预算", "", "205教育支出", "0.00", "工资福利支出", ""},
		{"1.财政拨款", "", "24,458.43二、教育支出", "300.00", "", ""},
		{"三、其他收入", "-", "", "", "2. 项目 支出", "200.00"},
		{"收入合计", "25,658.43", "支出合计", "1,100.00", "", ""},
	}

	rec, repairs, err := BalanceSchema().Parse(g, 2020)

	require.NoError(t, err)
	require.Len(t, repairs, 1)
	assert.Equal(t, 5, repairs[0].Row)
	assert.Equal(t, 2, repairs[0].Col)
	assert.Equal(t, 1, repairs[0].Target)

	want := map[string]float64{
		"一般公共预算":      1200,
		"财政拨款":        24458.43,
		"收入合计":        25658.43,
		"201一般公共服务支出": 800,
		"教育支出":        300,
		"支出合计":        1100,
		"基本支出":        1000,
		"项目支出":        200,
	}
	assert.Equal(t, want, rec.Values)
	assert.Equal(t, []string{"一般公共预算", "财政拨款", "收入合计", "201一般公共服务支出", "教育支出", "支出合计", "基本支出", "项目支出"}, rec.Labels)
}

func TestBalanceSchemaSubHeaderViolation(t *testing.T) {
	g := models.Grid{
		balanceHead,
		{"项目", "金额", "功能分类", "功能分类", "支出用途", "支出用途"},
		balanceSub2,
		balanceTail,
	}

	_, _, err := BalanceSchema().Parse(g, 2019)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaViolation))
	var sv *SchemaViolation
	require.True(t, errors.As(err, &sv))
	assert.Equal(t, 1, sv.Row)
	assert.Equal(t, BalanceTitle, sv.Schema)
}

func TestBalanceSchemaHeadAndTail(t *testing.T) {
	s := BalanceSchema()

	assert.True(t, s.HasHead(models.Grid{balanceHead}))
	assert.False(t, s.HasHead(models.Grid{balanceHead[:5]}))
	assert.False(t, s.HasHead(models.Grid{append(append([]string(nil), balanceHead...), "")}))
	assert.False(t, s.HasHead(nil))

	assert.True(t, s.HasTail(models.Grid{balanceHead, balanceTail}))
	assert.False(t, s.HasTail(models.Grid{balanceTail, balanceData}))
	assert.False(t, s.HasTail(models.Grid{{"收入合计", ""}}))
	assert.False(t, s.HasTail(nil))
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()

	s, ok := reg.Lookup(BalanceTitle)
	require.True(t, ok)
	assert.Equal(t, BalanceTitle, s.Name())
	assert.Len(t, reg.Schemas(), 1)

	err := reg.Register(BalanceSchema())
	assert.Error(t, err)

	_, err = NewRegistry(BalanceSchema(), BalanceSchema())
	assert.Error(t, err)
}
