package models

import (
	"fmt"
	"time"
)

// Tag classifies a note. The set is closed; anything else is rejected
// at the tool boundary.
type Tag string

const (
	TagIdea      Tag = "idea"
	TagTodo      Tag = "todo"
	TagReference Tag = "reference"
	TagImportant Tag = "important"
)

// UntaggedLabel is the reserved stats bucket for notes without a tag.
const UntaggedLabel = "untagged"

// Tags lists every valid tag value, in declaration order.
func Tags() []Tag {
	return []Tag{TagIdea, TagTodo, TagReference, TagImportant}
}

// ParseTag validates a raw tag string. An empty string means "no tag"
// and returns nil.
func ParseTag(s string) (*Tag, error) {
	if s == "" {
		return nil, nil
	}
	for _, t := range Tags() {
		if Tag(s) == t {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid tag %q (must be one of: idea, todo, reference, important)", s)
}

// Note is a single note record. IDs are assigned by the store at
// creation, are unique for the lifetime of the store, and are never
// reused after deletion.
type Note struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tag       *Tag      `json:"tag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TagLabel returns the tag value, or the reserved untagged label.
func (n Note) TagLabel() string {
	if n.Tag == nil {
		return UntaggedLabel
	}
	return string(*n.Tag)
}

// Stats summarizes the store contents. The ByTag counts always sum to
// Total; untagged notes are counted under UntaggedLabel.
type Stats struct {
	Total int            `json:"total"`
	ByTag map[string]int `json:"by_tag"`
}
