package util

import (
	"strings"

	"github.com/goccy/go-json"
)

// ExtractPlainText 从编辑器的富文本 JSON 中抽取纯文本，供全文检索使用。
// 结构未知时返回空串，不视为错误。
func ExtractPlainText(body string) string {
	if body == "" {
		return ""
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return ""
	}

	var sb strings.Builder
	collectText(doc, &sb)
	return strings.TrimSpace(sb.String())
}

func collectText(node interface{}, sb *strings.Builder) {
	switch v := node.(type) {
	case map[string]interface{}:
		if text, ok := v["text"].(string); ok {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(text)
		}
		for _, key := range []string{"content", "children", "blocks"} {
			if child, ok := v[key]; ok {
				collectText(child, sb)
			}
		}
	case []interface{}:
		for _, child := range v {
			collectText(child, sb)
		}
	}
}
