package section

// flatEntry pairs a section with its level in the flat pre-order view.
// Reorder operations work on this view and relink the tree afterwards,
// so the parent invariant can never drift from what a serialize and
// re-parse would produce.
type flatEntry struct {
	sec   *Section
	level int
}

// Move is the single in-flight structural move of a tree. BeginMove
// creates it, its methods mutate the tree, and Commit or Cancel ends
// it. A Move must not be used after Commit or Cancel.
type Move struct {
	tree    *Tree
	target  *Section
	saved   []flatEntry
	changed bool
}

// BeginMove starts moving a section and snapshots the document order so
// Cancel can restore it exactly. Only one move may be active per tree.
func (t *Tree) BeginMove(target *Section) (*Move, error) {
	if t.active != nil {
		return nil, ErrMoveActive
	}
	if target == nil || target == t.root {
		return nil, ErrRootSection
	}
	if !t.contains(target) {
		return nil, ErrNotInTree
	}

	m := &Move{
		tree:   t,
		target: target,
		saved:  t.flatEntries(),
	}
	target.marker = MarkerSelected
	t.active = m
	return m, nil
}

// ActiveMove returns the move in flight, or nil.
func (t *Tree) ActiveMove() *Move { return t.active }

// Target returns the section being moved.
func (m *Move) Target() *Section { return m.target }

// Changed reports whether any operation has altered the tree since
// BeginMove.
func (m *Move) Changed() bool { return m.changed }

// Up swaps the target subtree with its previous sibling subtree.
// Returns false at the first sibling.
func (m *Move) Up() bool {
	prev := m.target.prevSibling()
	if prev == nil {
		return false
	}

	entries := m.tree.flatEntries()
	pi := entryIndex(entries, prev)
	ti := entryIndex(entries, m.target)
	tj := ti + subtreeSize(m.target)

	out := make([]flatEntry, 0, len(entries))
	out = append(out, entries[:pi]...)
	out = append(out, entries[ti:tj]...)
	out = append(out, entries[pi:ti]...)
	out = append(out, entries[tj:]...)

	m.tree.relink(out)
	m.changed = true
	return true
}

// Down swaps the target subtree with its next sibling subtree. Returns
// false at the last sibling.
func (m *Move) Down() bool {
	next := m.target.nextSibling()
	if next == nil {
		return false
	}

	entries := m.tree.flatEntries()
	ti := entryIndex(entries, m.target)
	tj := ti + subtreeSize(m.target)
	nk := tj + subtreeSize(next)

	out := make([]flatEntry, 0, len(entries))
	out = append(out, entries[:ti]...)
	out = append(out, entries[tj:nk]...)
	out = append(out, entries[ti:tj]...)
	out = append(out, entries[nk:]...)

	m.tree.relink(out)
	m.changed = true
	return true
}

// Dedent shallows the target by one level. Returns false at level 1.
// Descendants shift with it and the tree re-parents to match the new
// levels, which can adopt following siblings under the target exactly
// as a save and re-parse would.
func (m *Move) Dedent() bool {
	if m.target.level <= 1 {
		return false
	}
	m.shiftLevels(-1)
	return true
}

// Indent deepens the target by one level. Returns false at level 6.
func (m *Move) Indent() bool {
	if m.target.level >= 6 {
		return false
	}
	m.shiftLevels(1)
	return true
}

func (m *Move) shiftLevels(delta int) {
	entries := m.tree.flatEntries()
	ti := entryIndex(entries, m.target)
	tj := ti + subtreeSize(m.target)

	for i := ti; i < tj; i++ {
		lv := entries[i].level + delta
		if lv < 1 {
			lv = 1
		}
		if lv > 6 {
			lv = 6
		}
		entries[i].level = lv
	}

	m.tree.relink(entries)
	m.changed = true
}

// ToTop moves the target subtree to the front of the document. Its
// level is unchanged.
func (m *Move) ToTop() bool {
	entries := m.tree.flatEntries()
	ti := entryIndex(entries, m.target)
	if ti == 0 {
		return false
	}
	tj := ti + subtreeSize(m.target)

	out := make([]flatEntry, 0, len(entries))
	out = append(out, entries[ti:tj]...)
	out = append(out, entries[:ti]...)
	out = append(out, entries[tj:]...)

	m.tree.relink(out)
	m.changed = true
	return true
}

// ToBottom moves the target subtree to the end of the document. Its
// level is unchanged.
func (m *Move) ToBottom() bool {
	entries := m.tree.flatEntries()
	ti := entryIndex(entries, m.target)
	tj := ti + subtreeSize(m.target)
	if tj == len(entries) {
		return false
	}

	out := make([]flatEntry, 0, len(entries))
	out = append(out, entries[:ti]...)
	out = append(out, entries[tj:]...)
	out = append(out, entries[ti:tj]...)

	m.tree.relink(out)
	m.changed = true
	return true
}

// Commit ends the move keeping the new order. A move that actually
// changed the tree is marked unsaved-red and dirty; a move with no
// effect just drops the selection marker.
func (m *Move) Commit() {
	if m.changed {
		m.target.marker = MarkerMoved
		m.target.dirty = true
	} else {
		m.target.marker = MarkerNone
	}
	m.tree.active = nil
	m.saved = nil
}

// Cancel ends the move and restores the snapshot exactly: parent,
// sibling position, and level of every section, including any siblings
// adopted during the move.
func (m *Move) Cancel() {
	m.tree.relink(m.saved)
	m.target.marker = MarkerNone
	m.tree.active = nil
	m.saved = nil
}

// flatEntries captures the current pre-order with levels.
func (t *Tree) flatEntries() []flatEntry {
	secs := t.Flatten()
	entries := make([]flatEntry, len(secs))
	for i, s := range secs {
		entries[i] = flatEntry{sec: s, level: s.level}
	}
	return entries
}

// relink rebuilds parent and child links from a flat order, applying
// the same rule the builder uses. Section values are reused, never
// recreated.
func (t *Tree) relink(entries []flatEntry) {
	t.root.children = t.root.children[:0]
	stack := []*Section{t.root}

	for _, e := range entries {
		sec := e.sec
		sec.level = e.level
		// Keep the stored heading line's marker run in step with the
		// level, so lookups by raw line keep matching after a re-level.
		sec.line = sec.headingLine()
		sec.children = sec.children[:0]

		for len(stack) > 1 && stack[len(stack)-1].level >= sec.level {
			stack = stack[:len(stack)-1]
		}

		top := stack[len(stack)-1]
		sec.parent = top
		top.children = append(top.children, sec)
		stack = append(stack, sec)
	}
}

func entryIndex(entries []flatEntry, s *Section) int {
	for i, e := range entries {
		if e.sec == s {
			return i
		}
	}
	return -1
}
