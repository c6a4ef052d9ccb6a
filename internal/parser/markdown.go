// Package parser turns markdown source into the flat header records the
// section tree is built from. Only ATX headings at document level count as
// structure; setext headings and headings nested inside quotes, lists, or
// fenced code stay part of the surrounding body text.
package parser

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// HeaderRecord describes one document-level ATX heading. All offsets are
// byte positions into the source it was parsed from.
type HeaderRecord struct {
	Level      int
	LineStart  int // start of the heading line
	LineEnd    int // end of the heading line, excluding its terminator
	BodyStart  int // just past the heading line's terminator
	BodyEnd    int // start of the next heading's line, or len(src)
	LineNumber int // 1-based line number of the heading
}

// Line returns the raw heading line without its terminator.
func (h HeaderRecord) Line(src []byte) []byte {
	return src[h.LineStart:h.LineEnd]
}

// Body returns the raw body bytes between this heading and the next.
func (h HeaderRecord) Body(src []byte) []byte {
	return src[h.BodyStart:h.BodyEnd]
}

// ParseHeaders scans src and returns its header records in document order.
// A document with no headings returns nil; that is a valid document whose
// content is all preamble.
func ParseHeaders(src []byte) []HeaderRecord {
	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var records []HeaderRecord
	searchFrom := 0

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			start := -1
			if h.Lines().Len() > 0 {
				start = lineStartBefore(src, h.Lines().At(0).Start)
			} else {
				// Bare heading like "##" carries no text segment, so
				// locate its line by scanning from the last known offset.
				start = findBareHeading(src, searchFrom, h.Level)
			}
			if start >= 0 {
				end := lineEndAfter(src, start)
				if markerCount(src[start:end]) == h.Level {
					rec := HeaderRecord{
						Level:     h.Level,
						LineStart: start,
						LineEnd:   end,
						BodyStart: pastTerminator(src, end),
					}
					records = append(records, rec)
				}
			}
		}

		// Advance past this block's known lines so bare-heading scans
		// never match text inside earlier blocks.
		if lines := n.Lines(); lines != nil && lines.Len() > 0 {
			if stop := lines.At(lines.Len() - 1).Stop; stop > searchFrom {
				searchFrom = stop
			}
		}
		if len(records) > 0 {
			if bs := records[len(records)-1].BodyStart; bs > searchFrom {
				searchFrom = bs
			}
		}
	}

	for i := range records {
		if i+1 < len(records) {
			records[i].BodyEnd = records[i+1].LineStart
		} else {
			records[i].BodyEnd = len(src)
		}
		records[i].LineNumber = LineNumber(src, records[i].LineStart)
	}

	return records
}

// LineNumber returns the 1-based line number of a byte offset.
func LineNumber(src []byte, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	return 1 + bytes.Count(src[:offset], []byte{'\n'})
}

// DetectLineBreak returns the dominant line terminator of the source,
// defaulting to LF for empty input.
func DetectLineBreak(source []byte) []byte {
	crlfCount := bytes.Count(source, []byte{'\r', '\n'})
	lfCount := bytes.Count(source, []byte{'\n'})
	if lfCount > 0 && crlfCount == lfCount {
		return []byte{'\r', '\n'}
	}
	return []byte{'\n'}
}

// markerCount returns the ATX marker run length of a heading line, or 0
// when the line is not an ATX heading. Up to three leading spaces are
// allowed, and the markers must be followed by whitespace or end of line.
func markerCount(line []byte) int {
	i := 0
	for i < len(line) && i < 3 && line[i] == ' ' {
		i++
	}
	start := i
	for i < len(line) && line[i] == '#' {
		i++
	}
	count := i - start
	if count < 1 || count > 6 {
		return 0
	}
	if i < len(line) && line[i] != ' ' && line[i] != '\t' && line[i] != '\r' {
		return 0
	}
	return count
}

// lineStartBefore walks back from offset to the start of its line.
func lineStartBefore(src []byte, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	i := bytes.LastIndexByte(src[:offset], '\n')
	return i + 1
}

// lineEndAfter returns the offset of the line terminator (or EOF)
// following start.
func lineEndAfter(src []byte, start int) int {
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return len(src)
	}
	end := start + i
	if end > start && src[end-1] == '\r' {
		end--
	}
	return end
}

// pastTerminator returns the offset just past the line terminator at end.
func pastTerminator(src []byte, end int) int {
	if end < len(src) && src[end] == '\r' {
		end++
	}
	if end < len(src) && src[end] == '\n' {
		end++
	}
	return end
}

// findBareHeading scans forward line by line for an ATX heading of the
// given level, starting at from.
func findBareHeading(src []byte, from, level int) int {
	start := from
	if start > 0 && start <= len(src) && src[start-1] != '\n' {
		// Align to the next line boundary.
		i := bytes.IndexByte(src[start:], '\n')
		if i < 0 {
			return -1
		}
		start += i + 1
	}
	for start < len(src) {
		end := lineEndAfter(src, start)
		if markerCount(src[start:end]) == level {
			return start
		}
		start = pastTerminator(src, end)
	}
	return -1
}
