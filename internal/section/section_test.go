package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"# Hello", "Hello"},
		{"## Two words", "Two words"},
		{"  ### Indented", "Indented"},
		{"## Title ##", "Title"},
		{"# Trailing # #", "Trailing #"},
		{"# C# rocks ##", "C# rocks"},
		{"## Hash#tag", "Hash#tag"},
		{"# ###", ""},
		{"#", ""},
		{"##", ""},
		{"# ", ""},
		{"#\tTabbed", "Tabbed"},
	}

	for _, tt := range tests {
		s := &Section{line: tt.line, level: 1}
		assert.Equal(t, tt.want, s.Title(), "line %q", tt.line)
	}
}

func TestEditableBody(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"", ""},
		{"\n\n", ""},
		{"\nsome text\n\n", "some text"},
		{"\npara one\n\npara two\n\n", "para one\n\npara two"},
		{"no leading break", "no leading break"},
	}

	for _, tt := range tests {
		s := &Section{body: tt.body}
		assert.Equal(t, tt.want, s.EditableBody(), "body %q", tt.body)
	}
}

func TestReplaceBody(t *testing.T) {
	s := &Section{level: 1, line: "# A", body: "\nold\n\n"}

	assert.True(t, s.ReplaceBody("new text", "\n"))
	assert.Equal(t, "\nnew text\n\n", s.Body())
	assert.True(t, s.Dirty())
	assert.Equal(t, "new text", s.EditableBody())

	// Same content again is a no-op
	assert.False(t, s.ReplaceBody("new text", "\n"))

	// Surrounding whitespace normalizes away
	assert.False(t, s.ReplaceBody("  new text \n", "\n"))
	assert.Equal(t, "\nnew text\n\n", s.Body())

	// Clearing the text keeps the blank line between headings
	assert.True(t, s.ReplaceBody("", "\n"))
	assert.Equal(t, "\n\n", s.Body())
	assert.Equal(t, "", s.EditableBody())
}

func TestReplaceBodyNormalizesLooseSpacing(t *testing.T) {
	// A body that never had the canonical padding gains it on checkin,
	// even when the visible text is unchanged.
	s := &Section{level: 1, line: "# A", body: "\ntext\n"}

	assert.True(t, s.ReplaceBody(s.EditableBody(), "\n"))
	assert.Equal(t, "\ntext\n\n", s.Body())
	assert.True(t, s.Dirty())
}

func TestReplaceBodyCRLF(t *testing.T) {
	s := &Section{level: 1, line: "# A", body: "\r\nold\r\n\r\n"}

	assert.True(t, s.ReplaceBody("new text", "\r\n"))
	assert.Equal(t, "\r\nnew text\r\n\r\n", s.Body())

	assert.True(t, s.ReplaceBody("", "\r\n"))
	assert.Equal(t, "\r\n\r\n", s.Body())
}

func TestDirtyPropagation(t *testing.T) {
	tree, sec := navFixture(t)
	assert.False(t, tree.Dirty())

	sec["A.1.1"].ReplaceBody("edited", "\n")
	assert.True(t, tree.Dirty())
	assert.False(t, sec["A"].Dirty())

	tree.MarkClean()
	assert.False(t, tree.Dirty())
	assert.False(t, sec["A.1.1"].Dirty())
}
