package parser

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the YAML metadata block of a note. It is display-only:
// the raw block stays part of the document preamble and round-trips
// untouched.
type Frontmatter struct {
	Title   string   `yaml:"title"`
	Aliases []string `yaml:"aliases"`
	Tags    []string `yaml:"tags"`
}

// ExtractFrontmatter parses a leading YAML front matter block delimited by
// "---" lines. Returns false when the block is absent or not valid YAML.
func ExtractFrontmatter(src []byte) (Frontmatter, bool) {
	var fm Frontmatter

	lines := strings.Split(string(src), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return fm, false
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "---" || trimmed == "..." {
			end = i
			break
		}
	}
	if end == -1 {
		return fm, false
	}

	content := strings.Join(lines[1:end], "\n")
	if err := yaml.Unmarshal([]byte(content), &fm); err != nil {
		// Not valid YAML; treat as plain preamble text
		return Frontmatter{}, false
	}

	return fm, true
}
