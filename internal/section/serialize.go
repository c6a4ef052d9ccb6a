package section

import (
	"bytes"
	"strings"
)

// Serialize renders the tree back to document bytes: the preamble
// verbatim, then each section in pre-order as its heading line, the
// line break, and its raw body. Untouched sections reproduce their original
// bytes; only sections whose level changed get their marker run
// rewritten. A document with sections always ends with exactly two
// trailing line breaks.
func (t *Tree) Serialize(preamble, lineBreak []byte) []byte {
	if len(lineBreak) == 0 {
		lineBreak = []byte{'\n'}
	}

	var buf bytes.Buffer
	buf.Write(preamble)
	secs := t.Flatten()
	for i, s := range secs {
		buf.WriteString(s.headingLine())
		buf.Write(lineBreak)
		buf.WriteString(s.body)
		// A body loaded from end-of-file may carry no terminator; when a
		// move puts a heading after it, the heading must start on its own
		// line.
		if i+1 < len(secs) && len(s.body) > 0 && !strings.HasSuffix(s.body, string(lineBreak)) {
			buf.Write(lineBreak)
		}
	}

	result := buf.Bytes()
	if t.Empty() {
		// Nothing but preamble; leave it untouched.
		return result
	}

	// Trim or pad to exactly two trailing line breaks.
	desired := 2
	actual := countTrailingLineBreaks(result, lineBreak)
	delta := desired - actual
	if delta < 0 {
		end := len(result) + delta*len(lineBreak)
		if end < 0 {
			end = 0
		}
		result = result[:end]
	} else if delta > 0 {
		result = append(result, bytes.Repeat(lineBreak, delta)...)
	}

	return result
}

// headingLine returns the line to emit for this section. When the
// stored level still matches the marker run, the original line is used
// byte-for-byte; otherwise only the marker run is rewritten and the
// indent and everything after the markers are preserved.
func (s *Section) headingLine() string {
	indent, markers, rest := splitHeading(s.line)
	if markers == s.level {
		return s.line
	}
	return indent + strings.Repeat("#", s.level) + rest
}

// splitHeading splits a heading line into its leading indent (up to
// three spaces), the marker run length, and the remainder.
func splitHeading(line string) (string, int, string) {
	i := 0
	for i < len(line) && i < 3 && line[i] == ' ' {
		i++
	}
	j := i
	for j < len(line) && line[j] == '#' {
		j++
	}
	return line[:i], j - i, line[j:]
}

func countTrailingLineBreaks(source []byte, lineBreak []byte) int {
	i := len(source) - len(lineBreak)
	numBreaks := 0

	for i >= 0 && bytes.Equal(source[i:i+len(lineBreak)], lineBreak) {
		i -= len(lineBreak)
		numBreaks++
	}

	return numBreaks
}
