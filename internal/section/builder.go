package section

import "github.com/google/uuid"

// Header is one flat input record for Build: a heading level, the raw
// heading line, and the raw body up to the next heading.
type Header struct {
	Level int
	Line  string
	Body  string
}

// Build assembles the section tree from header records in document
// order. The parent of each section is the closest preceding header
// with a strictly smaller level; the synthetic level-0 root adopts
// whatever has no such header. Skipped levels and documents that start
// below level 1 are legal and kept as-is.
func Build(headers []Header) (*Tree, error) {
	root := &Section{id: uuid.NewString(), level: 0}
	t := &Tree{root: root}

	stack := []*Section{root}
	for _, h := range headers {
		if h.Level < 1 || h.Level > 6 {
			return nil, ErrLevelRange
		}

		sec := &Section{
			id:    uuid.NewString(),
			level: h.Level,
			line:  h.Line,
			body:  h.Body,
		}

		// Pop until the nearest enclosing smaller level; the root is
		// never popped.
		for len(stack) > 1 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}

		top := stack[len(stack)-1]
		sec.parent = top
		top.children = append(top.children, sec)
		stack = append(stack, sec)
	}

	return t, nil
}
