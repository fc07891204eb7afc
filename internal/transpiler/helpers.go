package transpiler

import (
	"strings"
	"unicode"
)

// toSnakeCase 把驼峰命名转换为蛇形命名
// 连续的大写字母按缩写处理: parseURL -> parse_url, HTTPServer -> http_server
func toSnakeCase(name string) string {
	var result []rune
	runes := []rune(name)
	prevIsLower := false

	for i, ch := range runes {
		if unicode.IsUpper(ch) {
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if (prevIsLower || (len(result) > 0 && nextIsLower)) && len(result) > 0 {
				result = append(result, '_')
			}
			result = append(result, unicode.ToLower(ch))
			prevIsLower = false
		} else {
			result = append(result, ch)
			prevIsLower = unicode.IsLower(ch)
		}
	}

	return string(result)
}

// convertName 转换标识符命名
// 全大写的名字 (常量风格) 保持全大写, 其余转为蛇形
func convertName(name string) string {
	allUpper := true
	for _, c := range name {
		if !unicode.IsUpper(c) && c != '_' && !unicode.IsDigit(c) {
			allUpper = false
			break
		}
	}
	if allUpper {
		return strings.ToUpper(name)
	}
	return toSnakeCase(name)
}
