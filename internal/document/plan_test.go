package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerunddev/noteshift/internal/editplan"
	"github.com/gerunddev/noteshift/internal/logger"
)

func TestExportPlanEmptySession(t *testing.T) {
	paths := writeSessionFiles(t, "a", "b")
	s, err := NewSession(paths, ModeMulti, logger.Discard())
	require.NoError(t, err)

	p := s.ExportPlan()
	assert.NotEmpty(t, p.ID)
	assert.Empty(t, p.Edits)
}

func TestExportPlanCollectsTouchedSections(t *testing.T) {
	paths := writeSessionFiles(t, "a", "b")
	s, err := NewSession(paths, ModeMulti, logger.Discard())
	require.NoError(t, err)

	// Edit a body in the first file
	a := s.Documents()[0]
	sel := a.Selection()
	_, err = a.CheckoutBody(sel)
	require.NoError(t, err)
	_, err = a.CheckinBody(sel, "new body")
	require.NoError(t, err)

	// Commit a structural move in the second file
	b := s.Documents()[1]
	sub := b.Tree().FindTitle("Sub", 2)
	require.NotNil(t, sub)
	mv, err := b.BeginMove(sub)
	require.NoError(t, err)
	require.True(t, mv.Dedent())
	_, changed := b.CommitMove()
	require.True(t, changed)

	p := s.ExportPlan()
	require.Len(t, p.Edits, 2)
	require.NoError(t, p.Validate())

	assert.Equal(t, a.Path(), p.Edits[0].FileName)
	assert.Equal(t, "a", p.Edits[0].ItemName)
	assert.Equal(t, 1, p.Edits[0].Level)
	assert.Equal(t, 1, p.Edits[0].LineStart)
	assert.Equal(t, 4, p.Edits[0].LineEnd)

	assert.Equal(t, b.Path(), p.Edits[1].FileName)
	assert.Equal(t, "Sub", p.Edits[1].ItemName)
	assert.Equal(t, 1, p.Edits[1].Level)
	assert.Equal(t, 5, p.Edits[1].LineStart)
	assert.Equal(t, 8, p.Edits[1].LineEnd)

	// Saving keeps the section in the plan
	_, err = a.Save()
	require.NoError(t, err)
	assert.Len(t, s.ExportPlan().Edits, 2)
}

func TestExportPlanIgnoresCanceledMove(t *testing.T) {
	paths := writeSessionFiles(t, "a")
	s, err := NewSession(paths, ModeSingle, logger.Discard())
	require.NoError(t, err)

	doc := s.Current()
	sub := doc.Tree().FindTitle("Sub", 2)
	mv, err := doc.BeginMove(sub)
	require.NoError(t, err)
	require.True(t, mv.Dedent())
	assert.NotNil(t, doc.CancelMove())

	assert.Empty(t, s.ExportPlan().Edits)
	assert.False(t, doc.Dirty())
}

func TestApplyPlan(t *testing.T) {
	paths := writeSessionFiles(t, "a", "b")
	s, err := NewSession(paths, ModeMulti, logger.Discard())
	require.NoError(t, err)

	p := editplan.New()
	p.Add(editplan.Edit{FileName: "b.md", ItemName: "Sub", Level: 2})

	assert.Equal(t, 1, s.ApplyPlan(p))
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, "Sub", s.Current().Selection().Title())
}

func TestApplyPlanUnknownSection(t *testing.T) {
	paths := writeSessionFiles(t, "a")
	s, err := NewSession(paths, ModeSingle, logger.Discard())
	require.NoError(t, err)
	before := s.Current().Selection()

	p := editplan.New()
	p.Add(editplan.Edit{FileName: "a.md", ItemName: "Nope", Level: 3})

	assert.Equal(t, 0, s.ApplyPlan(p))
	assert.Same(t, before, s.Current().Selection())
}
