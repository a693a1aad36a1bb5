package common

import (
	"testing"
)

func TestSanitizeMilvusString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "正常字符串",
			input:    "Nasi Lemak",
			expected: "Nasi Lemak",
		},
		{
			name:     "包含双引号",
			input:    `test"value`,
			expected: `test\"value`,
		},
		{
			name:     "包含反斜杠",
			input:    `test\value`,
			expected: `test\\value`,
		},
		{
			name:     "表达式注入尝试 - 双引号",
			input:    `Malay" or 1==1 or "`,
			expected: `Malay\" or 1==1 or \"`,
		},
		{
			name:     "复杂注入尝试",
			input:    `test\"; DROP TABLE dishes; --`,
			expected: `test\\\"; DROP TABLE dishes; --`,
		},
		{
			name:     "空字符串",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeMilvusString(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeMilvusString(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidateCollectionName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "有效 - 字母开头",
			input:    "malaysianFood",
			expected: true,
		},
		{
			name:     "有效 - 包含下划线",
			input:    "malaysian_food_v1",
			expected: true,
		},
		{
			name:     "有效 - 大写字母",
			input:    "MalaysianFood",
			expected: true,
		},
		{
			name:     "无效 - 数字开头",
			input:    "1food",
			expected: false,
		},
		{
			name:     "无效 - 包含特殊字符",
			input:    "malaysian-food",
			expected: false,
		},
		{
			name:     "无效 - 包含空格",
			input:    "malaysian food",
			expected: false,
		},
		{
			name:     "无效 - 空字符串",
			input:    "",
			expected: false,
		},
		{
			name:     "无效 - 太长（超过255字符）",
			input:    string(make([]byte, 256)),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCollectionName(tt.input)
			if result != tt.expected {
				t.Errorf("ValidateCollectionName(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeDishName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "小写化",
			input:    "Nasi Lemak",
			expected: "nasi lemak",
		},
		{
			name:     "压缩中间空白",
			input:    "Nasi   Lemak",
			expected: "nasi lemak",
		},
		{
			name:     "去除首尾空白",
			input:    "  Char Koay Teow  ",
			expected: "char koay teow",
		},
		{
			name:     "制表符与换行视为空白",
			input:    "Teh\tTarik\n",
			expected: "teh tarik",
		},
		{
			name:     "已归一化的输入不变",
			input:    "roti canai",
			expected: "roti canai",
		},
		{
			name:     "空字符串",
			input:    "",
			expected: "",
		},
		{
			name:     "纯空白",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeDishName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeDishName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// Benchmark 性能测试
func BenchmarkSanitizeMilvusString(b *testing.B) {
	input := `test"value\with"special\chars`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SanitizeMilvusString(input)
	}
}

func BenchmarkNormalizeDishName(b *testing.B) {
	input := "  Char   Koay Teow  "
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NormalizeDishName(input)
	}
}
