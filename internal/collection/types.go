package collection

import "strings"

// Kind classifies a curated artifact.
type Kind string

const (
	KindPrompt      Kind = "prompt"
	KindInstruction Kind = "instruction"
	KindChatMode    Kind = "chat-mode"
)

// Item is one curated entry in a collection manifest.
type Item struct {
	Path string `yaml:"path"`
	Kind Kind   `yaml:"kind,omitempty"`
}

// EffectiveKind returns the declared kind, falling back to the kind
// implied by the path's filename convention.
func (i Item) EffectiveKind() Kind {
	if i.Kind != "" {
		return i.Kind
	}
	return KindForPath(i.Path)
}

// Collection models a collection manifest (collections/*.yml): a
// curated, named set of artifact paths.
type Collection struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Items       []Item   `yaml:"items"`

	// FilePath records where the manifest was loaded from.
	FilePath string `yaml:"-"`
}

// CountByKind tallies the collection's items per effective kind.
func (c *Collection) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, item := range c.Items {
		counts[item.EffectiveKind()]++
	}
	return counts
}

// KindForPath infers an artifact kind from its filename convention:
// *.prompt.md, *.instructions.md, *.chatmode.md.
func KindForPath(path string) Kind {
	switch {
	case strings.HasSuffix(path, ".prompt.md"):
		return KindPrompt
	case strings.HasSuffix(path, ".instructions.md"):
		return KindInstruction
	case strings.HasSuffix(path, ".chatmode.md"):
		return KindChatMode
	default:
		return ""
	}
}
