package transpiler

import "testing"

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"simple", "simple"},
		{"myCount", "my_count"},
		{"getValue", "get_value"},
		{"parseURL", "parse_url"},
		{"HTTPServer", "http_server"},
		{"XMLHttpRequest", "xml_http_request"},
		{"already_snake", "already_snake"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		got := toSnakeCase(tt.input)
		if got != tt.expected {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}

	// 转换是幂等的
	for _, tt := range tests {
		once := toSnakeCase(tt.input)
		twice := toSnakeCase(once)
		if once != twice {
			t.Errorf("toSnakeCase not idempotent for %q: %q != %q", tt.input, once, twice)
		}
	}
}

func TestConvertName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MAX_SIZE", "MAX_SIZE"},
		{"X1", "X1"},
		{"myVar", "my_var"},
		{"File", "file"},
		{"lower", "lower"},
	}

	for _, tt := range tests {
		got := convertName(tt.input)
		if got != tt.expected {
			t.Errorf("convertName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
