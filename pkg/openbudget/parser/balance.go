package parser

// BalanceTitle is the name of the revenue/expenditure summary table.
const BalanceTitle = "收支预算总表"

// BalanceSchema describes the revenue/expenditure summary table: revenue
// items on the left, expenditure by function and by usage on the right.
func BalanceSchema() *TableSchema {
	return &TableSchema{
		Title: BalanceTitle,
		Head:  []string{"收入", "收入", "支出", "支出", "支出", "支出"},
		Tail: []TailCell{
			{Col: 0, Value: "收入合计"},
			{Col: 2, Value: "支出合计"},
		},
		SubHeaders: []SubHeader{
			{Row: 1, Cells: []string{"项目名称", "金额", "功能分类", "功能分类", "支出用途", "支出用途"}},
			{Row: 2, Cells: []string{"", "", "功能科目名称", "金额", "项目名称", "金额"}},
		},
		Pairs: []ColumnPair{
			{Label: 0, Value: 1},
			{Label: 2, Value: 3},
			{Label: 4, Value: 5},
		},
	}
}
