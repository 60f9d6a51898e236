package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1.一般公共预算", "一般公共预算"},
		{"2. 政 府 性基金预算", "政府性基金预算"},
		{"二、财政专户管理资金", "财政专户管理资金"},
		{"十七、国土海洋气象等支出", "国土海洋气象等支出"},
		{"13,649.07", "13,649.07"},
		{"工资福利\n支出", "工资福利支出"},
		{"１．基本支出", "基本支出"},
		{"1.其他收入（含利息）", "其他收入（含利息）"},
		{"三、增长率％～", "增长率％～"},
		{"（一）项目支出", "（一）项目支出"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeLabel(tt.input), "NormalizeLabel(%q)", tt.input)
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"", 0, false},
		{"   ", 0, false},
		{"项目名称", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1,234.5", 1234.5, true},
		{"13,649.07", 13649.07, true},
		{" 100.00 ", 100, true},
		{"-5", -5, true},
		{"１２３", 123, true},
		{"0.00", 0, true},
	}

	for _, tt := range tests {
		got, ok := ParseFloat(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseFloat(%q) ok", tt.input)
		assert.InDelta(t, tt.want, got, 1e-9, "ParseFloat(%q)", tt.input)
	}
}
