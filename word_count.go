package simplemarkdown

// CountText 计算纯文本的长度（UTF-16 code units）
//
// 用于按 UTF-16 限制拆分时预估消息长度。
//
// 参数：
//   - text: ToStyled 或 ToText 返回的纯文本
//
// 返回：
//   - int: UTF-16 code units 数量
func CountText(text string) int {
	return UTF16Len(text)
}
