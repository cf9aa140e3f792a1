// Package htmlgen wraps clean text in HTML elements derived from processed tags.
package htmlgen

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var textStyleTags = [...][2]string{
	{"<i>", "</i>"},
	{"<b>", "</b>"},
	{"<b><i>", "</i></b>"},
}

// element is an HTML element spanning [start, end) of the clean text.
type element struct {
	start, end  int
	open, close string
	counter     int
	// cancelsBreak drops a line break at the element's end
	cancelsBreak bool
}

type lineBreak struct {
	pos  int
	keep bool
}

type generator struct {
	elements []element
	breaks   []lineBreak
}

func (g *generator) add(start, end int, open, close string, cancelsBreak bool) {
	g.elements = append(g.elements, element{
		start:        start,
		end:          end,
		open:         open,
		close:        close,
		counter:      len(g.elements),
		cancelsBreak: cancelsBreak,
	})
}

// Render converts clean text and its processed tags to HTML. Text outside
// sections (the separator between them) is not emitted.
//
// Elements are written as their ranges dictate and are not repaired. A text
// style that starts in one list item and ends in another crosses the </li>
// and yields unbalanced HTML, e.g. "- bb**x y\n* 1. )\\ * " gives
// <li>bb<i>*x y</li>...</i>.
func Render(text string, tags []types.ProcessedTag) string {
	var sb strings.Builder
	sb.Grow(len(text) * 2)
	for _, section := range tags {
		if !section.Kind.IsSection() {
			continue
		}
		g := &generator{}
		g.addSection(section, tags)
		g.write(&sb, text, section)
	}
	return sb.String()
}

func (g *generator) addSection(section types.ProcessedTag, tags []types.ProcessedTag) {
	switch section.Kind {
	case types.TagParagraph:
		g.add(section.Start, section.End, "<p>", "</p>", true)
	case types.TagHeader:
		level := strconv.Itoa(clamp(section.Weight, 1, 6))
		g.add(section.Start, section.End, "<h"+level+">", "</h"+level+">", true)
	}

	var inner, items []types.ProcessedTag
	for _, tag := range tags {
		if tag.Kind.IsSection() || tag.Start < section.Start || tag.End > section.End {
			continue
		}
		inner = append(inner, tag)
		if tag.Kind.IsListItem() {
			items = append(items, tag)
		}
	}
	if len(items) > 0 {
		g.addLists(items, 0, len(items), 1)
	}

	for _, tag := range inner {
		switch tag.Kind {
		case types.TagTextStyle:
			style := textStyleTags[clamp(tag.Weight, 1, 3)-1]
			g.add(tag.Start, tag.End, style[0], style[1], false)
		case types.TagAlternativeTextStyle:
			g.add(tag.Start, tag.End, "<del>", "</del>", false)
		case types.TagLink:
			g.add(tag.Start, tag.End, `<a href="`+href(tag.Link)+`">`, "</a>", false)
		case types.TagOrderedItem, types.TagUnorderedItem:
			g.add(tag.Start, tag.End, "<li>", "</li>", true)
		case types.TagLine:
			g.breaks = append(g.breaks, lineBreak{
				pos:  tag.End,
				keep: section.Kind == types.TagList && tag.End == section.End,
			})
		}
	}
}

// addLists groups a run of list items of at least weight into one list
// element and recurses into deeper items and into the rest of the run.
func (g *generator) addLists(items []types.ProcessedTag, index, until, weight int) {
	startIndex := -1
	for i := index; i < until; i++ {
		if max(1, items[i].Weight) >= weight {
			startIndex = i
			break
		}
	}
	if startIndex < 0 {
		return
	}

	// types.TagList stands for "not decided yet"
	checkKind := types.TagList
	if items[startIndex].Weight == weight {
		checkKind = items[startIndex].Kind
	}
	endIndex := startIndex + 1
	for i := startIndex + 1; i < until; i++ {
		itemWeight := max(1, items[i].Weight)
		if checkKind == types.TagList && itemWeight == weight {
			checkKind = items[i].Kind
		}
		if itemWeight < weight || (itemWeight == weight && items[i].Kind != checkKind) {
			break
		}
		endIndex++
	}

	open, close := "<ul>", "</ul>"
	if checkKind == types.TagOrderedItem {
		open, close = "<ol>", "</ol>"
	}
	g.add(items[startIndex].Start, items[endIndex-1].End, open, close, true)

	g.addLists(items, startIndex, endIndex, weight+1)
	if endIndex < until {
		g.addLists(items, endIndex, until, weight)
	}
}

// Event classes in output order at one offset.
const (
	eventClose = iota
	eventBreak
	eventEmpty
	eventOpen
)

type event struct {
	pos   int
	class int
	el    element
}

func (g *generator) events(section types.ProcessedTag) []event {
	var events []event
	for _, el := range g.elements {
		start := clamp(el.start, section.Start, section.End)
		end := clamp(el.end, start, section.End)
		el.start, el.end = start, end
		if start == end {
			events = append(events, event{pos: start, class: eventEmpty, el: el})
			continue
		}
		events = append(events,
			event{pos: start, class: eventOpen, el: el},
			event{pos: end, class: eventClose, el: el})
	}

	for _, br := range g.breaks {
		if !br.keep && g.cancelled(br.pos) {
			continue
		}
		events = append(events, event{
			pos:   clamp(br.pos, section.Start, section.End),
			class: eventBreak,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.pos != b.pos {
			return a.pos < b.pos
		}
		if a.class != b.class {
			return a.class < b.class
		}
		switch a.class {
		case eventClose:
			// Innermost first
			if a.el.start != b.el.start {
				return a.el.start > b.el.start
			}
			return a.el.counter > b.el.counter
		case eventOpen:
			// Outermost first
			if a.el.end != b.el.end {
				return a.el.end > b.el.end
			}
			return a.el.counter < b.el.counter
		}
		return a.el.counter < b.el.counter
	})
	return events
}

func (g *generator) cancelled(pos int) bool {
	for _, el := range g.elements {
		if el.cancelsBreak && el.end == pos {
			return true
		}
	}
	return false
}

func (g *generator) write(sb *strings.Builder, text string, section types.ProcessedTag) {
	start := clamp(section.Start, 0, len(text))
	end := clamp(section.End, start, len(text))
	cursor := start
	for _, ev := range g.events(section) {
		pos := clamp(ev.pos, cursor, end)
		textEscaper.WriteString(sb, text[cursor:pos])
		cursor = pos
		switch ev.class {
		case eventOpen:
			sb.WriteString(ev.el.open)
		case eventClose:
			sb.WriteString(ev.el.close)
		case eventEmpty:
			sb.WriteString(ev.el.open)
			sb.WriteString(ev.el.close)
		case eventBreak:
			sb.WriteString("<br/>")
		}
	}
	textEscaper.WriteString(sb, text[cursor:end])
}

// href takes the first field of a link value, dropping a trailing title.
func href(link string) string {
	fields := strings.Fields(link)
	if len(fields) == 0 {
		return ""
	}
	return html.EscapeString(fields[0])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
