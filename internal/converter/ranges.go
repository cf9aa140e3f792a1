package converter

import (
	"sort"

	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

type rangeOp int

const (
	opCopy rangeOp = iota
	opDelete
	opInsert
	opInsertListToken
)

func (o rangeOp) isInsert() bool {
	return o == opInsert || o == opInsertListToken
}

// processRange is an edit over the original text of one section.
// Inserts are zero-width anchors carrying text.
type processRange struct {
	start int
	end   int
	op    rangeOp
	text  string
}

func (r *processRange) valid() bool {
	return r.start < r.end
}

// markRemoval cuts [start, end) out of a copy range. A cut strictly inside
// splits the range and returns the tail; cuts over an edge truncate in place.
func (r *processRange) markRemoval(start, end int) (processRange, bool) {
	if r.op != opCopy || !r.valid() {
		return processRange{}, false
	}
	switch {
	case start > r.start && end < r.end:
		tail := processRange{start: end, end: r.end, op: opCopy}
		r.end = start
		return tail, true
	case start <= r.start && end > r.start:
		r.start = end
		r.end = max(r.start, r.end)
	case start < r.end && end >= r.end:
		r.end = start
		r.start = min(r.start, r.end)
	}
	return processRange{}, false
}

// rangeSet collects the edits of a section.
type rangeSet struct {
	ranges []processRange
}

func (s *rangeSet) remove(start, end int) {
	for i := range s.ranges {
		if tail, ok := s.ranges[i].markRemoval(start, end); ok {
			s.ranges = append(s.ranges, tail)
			return
		}
	}
}

func (s *rangeSet) insert(at int, op rangeOp, text string) {
	s.ranges = append(s.ranges, processRange{start: at, end: at, op: op, text: text})
}

// sorted orders edits by start, inserts before copies at the same offset.
func (s *rangeSet) sorted() []processRange {
	sort.SliceStable(s.ranges, func(i, j int) bool {
		a, b := s.ranges[i], s.ranges[j]
		if a.start != b.start {
			return a.start < b.start
		}
		return a.op.isInsert() && !b.op.isInsert()
	})
	return s.ranges
}

// copyRanges strips escapes and markup from a section and adds newline and
// list token inserts. Tokens are only inserted when tokens is non-nil.
func copyRanges(section types.Tag, inner []types.Tag, tokens TokenFunc) []processRange {
	set := &rangeSet{ranges: []processRange{{start: section.TextStart, end: section.TextEnd, op: opCopy}}}
	for _, esc := range section.Escapes {
		set.remove(esc.Start, esc.End)
	}

	var counter listCounter
	for _, tag := range inner {
		if tag.TextStart > tag.Start {
			set.remove(tag.Start, tag.TextStart)
		}
		if tag.TextEnd < tag.End {
			set.remove(tag.TextEnd, tag.End)
		}

		switch {
		case tag.Kind == types.TagLine:
			if section.Kind == types.TagList && tokens != nil && !startsListItem(inner, tag.TextStart) {
				set.insert(tag.TextStart, opInsertListToken, tokens(types.TagLine, 0, 0))
			}
			if tag.End < section.End {
				set.insert(tag.TextEnd, opInsert, "\n")
			}
		case tag.Kind.IsListItem() && tokens != nil:
			index := counter.next(tag.Kind, tag.Weight)
			set.insert(tag.TextStart, opInsertListToken, tokens(tag.Kind, tag.Weight, index))
		}
	}
	return set.sorted()
}

func startsListItem(tags []types.Tag, offset int) bool {
	for _, tag := range tags {
		if tag.Kind.IsListItem() && tag.Start == offset {
			return true
		}
	}
	return false
}

// deleteRanges turns the gaps between copy ranges into deletes and passes inserts through.
func deleteRanges(section types.Tag, ranges []processRange) []processRange {
	var result []processRange
	previousEnd := section.Start
	for _, r := range ranges {
		if r.op != opCopy {
			result = append(result, r)
			continue
		}
		if r.start > previousEnd {
			result = append(result, processRange{start: previousEnd, end: r.start, op: opDelete})
		}
		previousEnd = r.end
	}
	if previousEnd < section.End {
		result = append(result, processRange{start: previousEnd, end: section.End, op: opDelete})
	}
	return result
}

// listCounter numbers list items per nesting level. Positive counts are
// ordered runs, negative ones unordered; switching kind restarts the level.
type listCounter []int

func (c *listCounter) next(kind types.TagKind, weight int) int {
	counts := *c
	level := max(0, weight-1)
	ordered := kind == types.TagOrderedItem
	switch {
	case level >= len(counts):
		for len(counts) <= level {
			counts = append(counts, 0)
		}
	case level+1 < len(counts):
		counts = counts[:level+1]
	case (counts[level] > 0) != ordered:
		counts[level] = 0
	}
	index := abs(counts[level]) + 1
	if ordered {
		counts[level]++
	} else {
		counts[level]--
	}
	*c = counts
	return index
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
