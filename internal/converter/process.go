// Package converter turns the source text and its tags into clean text with
// tags remapped onto it.
package converter

import (
	"github.com/riverfjs/simplemarkdown-go/internal/buffer"
	"github.com/riverfjs/simplemarkdown-go/internal/types"
)

// TokenFunc supplies the text inserted in front of list items and list
// continuation lines. A nil TokenFunc produces plain text without tokens or
// section spacers.
type TokenFunc func(kind types.TagKind, weight, index int) string

// Result is the output of Process.
type Result struct {
	Text string
	Tags []types.ProcessedTag
}

// Sections returns the section tags of the result in order.
func (r Result) Sections() []types.ProcessedTag {
	var sections []types.ProcessedTag
	for _, tag := range r.Tags {
		if tag.Kind.IsSection() {
			sections = append(sections, tag)
		}
	}
	return sections
}

// Process builds the clean text section by section. Tags outside any section
// (leading empty lines) are dropped.
func Process(text string, tags []types.Tag, tokens TokenFunc) Result {
	buf := buffer.New()
	var result []types.ProcessedTag

	sections := make([]types.Tag, 0)
	for _, tag := range tags {
		if tag.Kind.IsSection() {
			sections = append(sections, tag)
		}
	}

	for i, section := range sections {
		inner := innerTags(tags, section)
		ranges := copyRanges(section, inner, tokens)

		sectionStart := buf.Len()
		for _, r := range ranges {
			switch {
			case r.op == opCopy && r.valid():
				buf.Write(slice(text, r.start, r.end))
			case r.op.isInsert():
				buf.Write(r.text)
			}
		}
		sectionEnd := buf.Len()
		result = append(result, types.ProcessedTag{
			Kind:   section.Kind,
			Weight: section.Weight,
			Start:  sectionStart,
			End:    sectionEnd,
		})

		deletes := deleteRanges(section, ranges)
		var counter listCounter
		for _, tag := range inner {
			processed := remap(tag, deletes, section.Start-sectionStart)
			processed.Start = clamp(processed.Start, sectionStart, sectionEnd)
			processed.End = clamp(processed.End, processed.Start, sectionEnd)
			switch {
			case tag.Kind == types.TagLink:
				processed.Link = linkValue(text, tag)
			case tag.Kind.IsListItem():
				processed.Index = counter.next(tag.Kind, tag.Weight)
			}
			result = append(result, processed)
		}

		if i == len(sections)-1 {
			break
		}
		if tokens == nil {
			buf.Write("\n")
			continue
		}
		buf.Write("\n\n")
		result = append(result, types.ProcessedTag{
			Kind:  types.TagSectionSpacer,
			Start: buf.Len() - 1,
			End:   buf.Len(),
		})
	}

	return Result{Text: buf.String(), Tags: result}
}

// innerTags returns the non-section tags contained in section.
func innerTags(tags []types.Tag, section types.Tag) []types.Tag {
	var inner []types.Tag
	for _, tag := range tags {
		if tag.Kind.IsSection() {
			continue
		}
		if tag.Start >= section.Start && tag.End <= section.End {
			inner = append(inner, tag)
		}
	}
	return inner
}

// remap moves a tag's text range from source offsets to clean-text offsets.
// adjust is the distance between the section start in the source and in the clean text.
func remap(tag types.Tag, edits []processRange, adjust int) types.ProcessedTag {
	startOffset, endOffset := -adjust, -adjust
	tagLen := tag.TextEnd - tag.TextStart
	for _, r := range edits {
		if r.start >= tag.TextEnd {
			continue
		}
		switch {
		case r.op == opDelete:
			rangeLen := r.end - r.start
			startAdjust := max(0, min(rangeLen, tag.TextStart-r.start))
			overlap := max(0, min(tag.TextEnd-r.start, r.end-tag.TextStart))
			startOffset -= startAdjust
			endOffset -= startAdjust + min(tagLen, min(rangeLen, overlap))
		case r.op.isInsert():
			// A list token at the tag's own start belongs to the tag
			include := r.op == opInsertListToken &&
				(tag.Kind.IsListItem() || tag.Kind == types.TagLine) &&
				r.start == tag.TextStart
			if r.end <= tag.TextStart && !include {
				startOffset += len(r.text)
			}
			endOffset += len(r.text)
		}
	}
	return types.ProcessedTag{
		Kind:   tag.Kind,
		Weight: tag.Weight,
		Start:  tag.TextStart + startOffset,
		End:    tag.TextEnd + endOffset,
	}
}

func linkValue(text string, tag types.Tag) string {
	if tag.HasExtra() {
		return slice(text, tag.ExtraStart, tag.ExtraEnd)
	}
	return slice(text, tag.TextStart, tag.TextEnd)
}

func slice(text string, start, end int) string {
	start = clamp(start, 0, len(text))
	end = clamp(end, start, len(text))
	return text[start:end]
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
