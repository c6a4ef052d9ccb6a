package section

// Command is a navigation command over the tree.
type Command int

const (
	// CmdNext moves to the pre-order successor.
	CmdNext Command = iota
	// CmdPrev moves to the pre-order predecessor.
	CmdPrev
	// CmdNextSameLevel moves to the next section with the same level
	// anywhere in the document.
	CmdNextSameLevel
	// CmdPrevSameLevel moves to the previous section with the same level
	// anywhere in the document.
	CmdPrevSameLevel
	// CmdParent moves to the parent section.
	CmdParent
	// CmdChild moves to the first child, or the pre-order successor when
	// there are no children.
	CmdChild
	// CmdFirst moves to the first section of the document.
	CmdFirst
	// CmdLast moves to the last section of the document.
	CmdLast
	// CmdFirstSameLevel moves to the first section with the current level.
	CmdFirstSameLevel
	// CmdLastSameLevel moves to the last section with the current level.
	CmdLastSameLevel
)

// Navigate resolves a command against the current selection. It never
// mutates the tree. A nil result with a nil error means the command has
// nowhere to go and the selection stays put; errors indicate caller
// bugs (root or foreign selection, unknown command).
func (t *Tree) Navigate(current *Section, cmd Command) (*Section, error) {
	if t.Empty() {
		return nil, nil
	}
	if current == nil || current == t.root {
		return nil, ErrRootSection
	}
	if !t.contains(current) {
		return nil, ErrNotInTree
	}

	switch cmd {
	case CmdNext:
		return t.Next(current), nil
	case CmdPrev:
		return t.Prev(current), nil
	case CmdNextSameLevel:
		return t.NextSameLevel(current), nil
	case CmdPrevSameLevel:
		return t.PrevSameLevel(current), nil
	case CmdParent:
		if current.parent == t.root {
			return nil, nil
		}
		return current.parent, nil
	case CmdChild:
		if len(current.children) > 0 {
			return current.children[0], nil
		}
		return t.Next(current), nil
	case CmdFirst:
		return t.First(), nil
	case CmdLast:
		return t.Last(), nil
	case CmdFirstSameLevel:
		return t.FirstAtLevel(current.level), nil
	case CmdLastSameLevel:
		return t.LastAtLevel(current.level), nil
	default:
		return nil, ErrUnknownCommand
	}
}

// Next returns the pre-order successor, or nil at the end.
func (t *Tree) Next(s *Section) *Section {
	if len(s.children) > 0 {
		return s.children[0]
	}
	for cur := s; cur != t.root && cur != nil; cur = cur.parent {
		if sib := cur.nextSibling(); sib != nil {
			return sib
		}
	}
	return nil
}

// Prev returns the pre-order predecessor, or nil at the start. It never
// returns the root.
func (t *Tree) Prev(s *Section) *Section {
	sib := s.prevSibling()
	if sib == nil {
		if s.parent == t.root {
			return nil
		}
		return s.parent
	}
	return deepLast(sib)
}

// NextSameLevel returns the next section with the same level anywhere
// after s in document order.
func (t *Tree) NextSameLevel(s *Section) *Section {
	for n := t.Next(s); n != nil; n = t.Next(n) {
		if n.level == s.level {
			return n
		}
	}
	return nil
}

// PrevSameLevel returns the previous section with the same level
// anywhere before s in document order.
func (t *Tree) PrevSameLevel(s *Section) *Section {
	for n := t.Prev(s); n != nil; n = t.Prev(n) {
		if n.level == s.level {
			return n
		}
	}
	return nil
}

// First returns the first section in document order, or nil.
func (t *Tree) First() *Section {
	if t.Empty() {
		return nil
	}
	return t.root.children[0]
}

// Last returns the last section in document order, or nil.
func (t *Tree) Last() *Section {
	if t.Empty() {
		return nil
	}
	return deepLast(t.root.children[len(t.root.children)-1])
}

// FirstAtLevel returns the first section with the given level, or nil.
func (t *Tree) FirstAtLevel(level int) *Section {
	for n := t.First(); n != nil; n = t.Next(n) {
		if n.level == level {
			return n
		}
	}
	return nil
}

// LastAtLevel returns the last section with the given level, or nil.
func (t *Tree) LastAtLevel(level int) *Section {
	for n := t.Last(); n != nil; n = t.Prev(n) {
		if n.level == level {
			return n
		}
	}
	return nil
}

// deepLast descends along last children to the deepest trailing section.
func deepLast(s *Section) *Section {
	for len(s.children) > 0 {
		s = s.children[len(s.children)-1]
	}
	return s
}
