package converter

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var lineEndingReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Preprocess 统一换行符为 \n，normalize 为 true 时再做 NFC 规范化。
// 组合字符（e + U+0301）会合并为单个码点，偏移量因此按规范化后的文本计算。
func Preprocess(text string, normalize bool) string {
	if strings.ContainsRune(text, '\r') {
		text = lineEndingReplacer.Replace(text)
	}
	if normalize && !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}
	return text
}
