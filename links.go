package simplemarkdown

// LinkArea is the clean-text byte range [Start, End) of a link.
type LinkArea struct {
	Start int
	End   int
	URL   string
}

// Links returns the link areas of the styled text in offset order.
func (s StyledText) Links() []LinkArea {
	var areas []LinkArea
	for _, tag := range s.Tags {
		if tag.Kind == TagLink {
			areas = append(areas, LinkArea{Start: tag.Start, End: tag.End, URL: linkTarget(tag.Link)})
		}
	}
	return areas
}

// FindLink 查找 offset 处的链接
//
// 优先返回包含 offset 的链接；否则在 tolerance 字节范围内返回距离最近的链接。
//
// 参数:
//   - areas: StyledText.Links 的结果
//   - offset: 纯文本中的字节偏移
//   - tolerance: 允许的最大距离，0 表示只接受精确命中
//
// 返回:
//   - LinkArea: 命中的链接
//   - bool: 是否找到
func FindLink(areas []LinkArea, offset, tolerance int) (LinkArea, bool) {
	for _, area := range areas {
		if offset >= area.Start && offset < area.End {
			return area, true
		}
	}
	if tolerance <= 0 {
		return LinkArea{}, false
	}

	var closest LinkArea
	closestDistance := tolerance + 1
	for _, area := range areas {
		distance := area.Start - offset
		if offset >= area.End {
			distance = offset - area.End + 1
		}
		if distance < closestDistance {
			closest = area
			closestDistance = distance
		}
	}
	return closest, closestDistance <= tolerance
}
