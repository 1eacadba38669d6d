// Package schema parses the YAML frontmatter carried by curated
// Markdown artifacts (prompts, instructions, chat modes).
package schema

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the fields curio understands across artifact kinds.
// Unknown keys are ignored.
type Frontmatter struct {
	Title       string   `yaml:"title,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Mode        string   `yaml:"mode,omitempty"`    // prompt files: agent mode
	Model       string   `yaml:"model,omitempty"`   // prompt/chat-mode files
	Tools       []string `yaml:"tools,omitempty"`   // chat-mode files
	ApplyTo     string   `yaml:"applyTo,omitempty"` // instruction files: glob scope
}

// Parse extracts YAML frontmatter from artifact content.
// Returns the parsed frontmatter, the body content, and any error.
// Content without a frontmatter block yields a zero Frontmatter and the
// full content as body, not an error.
func Parse(content []byte) (Frontmatter, string, error) {
	var fm Frontmatter
	text := string(content)

	// Check for frontmatter delimiter
	if !strings.HasPrefix(text, "---") {
		return fm, text, nil
	}

	// Find the closing delimiter
	rest := strings.TrimPrefix(text[3:], "\n")

	idx := strings.Index(rest, "\n---")
	if idx == -1 {
		return fm, text, nil
	}

	// Extract and parse YAML
	yamlContent := rest[:idx]
	body := strings.TrimPrefix(rest[idx+4:], "\n")

	if err := yaml.Unmarshal([]byte(yamlContent), &fm); err != nil {
		return Frontmatter{}, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return fm, body, nil
}
