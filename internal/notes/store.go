// Package notes holds the in-memory note store. The store is plain
// data: it never persists anything and dies with the process.
package notes

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/notedeckhq/notedeck-cli/internal/models"
)

// ErrNotFound is returned when a note id does not exist in the store.
var ErrNotFound = errors.New("note not found")

// Store is an insertion-ordered collection of notes with a monotonic
// id counter. Construct it with NewStore and pass the handle around;
// there is no package-level instance.
//
// The transports in this repo serialize tool calls, but the store
// still guards itself so a future transport cannot corrupt it.
type Store struct {
	mu       sync.RWMutex
	notes    []models.Note
	nextID   int
	onChange []func()

	// now is swappable for tests
	now func() time.Time
}

// NewStore creates an empty store. IDs start at 1.
func NewStore() *Store {
	return &Store{
		nextID: 1,
		now:    time.Now,
	}
}

// OnChange registers a hook fired after every successful mutation.
// This is where a UI refresh would hang off.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

func (s *Store) notifyChange() {
	for _, fn := range s.onChange {
		fn()
	}
}

// Add creates a note with the next id and appends it. The id counter
// advances on every Add and never rewinds, so ids are strictly
// increasing even after interleaved deletes.
func (s *Store) Add(title, content string, tag *models.Tag) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := models.Note{
		ID:        s.nextID,
		Title:     title,
		Content:   content,
		Tag:       tag,
		CreatedAt: s.now(),
	}
	s.nextID++
	s.notes = append(s.notes, note)
	s.notifyChange()
	return note
}

// Delete removes the note with the given id and returns it. Returns
// ErrNotFound if no note matches. The id is not reassigned afterwards.
func (s *Store) Delete(id int) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, note := range s.notes {
		if note.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			s.notifyChange()
			return note, nil
		}
	}
	return models.Note{}, ErrNotFound
}

// Get returns the note with the given id, or ErrNotFound.
func (s *Store) Get(id int) (models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, note := range s.notes {
		if note.ID == id {
			return note, nil
		}
	}
	return models.Note{}, ErrNotFound
}

// List returns all notes in insertion order.
func (s *Store) List() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Search returns every note whose title, content, or tag contains the
// query, case-insensitively, in insertion order. The empty query
// matches every note (strings.Contains treats "" as universal), which
// doubles as "list everything".
func (s *Store) Search(query string) []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []models.Note
	for _, note := range s.notes {
		if strings.Contains(strings.ToLower(note.Title), q) ||
			strings.Contains(strings.ToLower(note.Content), q) ||
			(note.Tag != nil && strings.Contains(strings.ToLower(string(*note.Tag)), q)) {
			out = append(out, note)
		}
	}
	return out
}

// Stats counts notes overall and per tag. Notes without a tag are
// grouped under models.UntaggedLabel.
func (s *Store) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.Stats{
		Total: len(s.notes),
		ByTag: map[string]int{},
	}
	for _, note := range s.notes {
		stats.ByTag[note.TagLabel()]++
	}
	return stats
}

// Len returns the current note count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}
