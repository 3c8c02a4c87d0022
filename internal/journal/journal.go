// Package journal records tool invocations, most recent first.
package journal

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity bounds the journal when no capacity is configured.
// The original demo grew without bound; a cap keeps long sessions sane.
const DefaultCapacity = 256

// Entry is one recorded invocation. Exactly one entry exists per tool
// call, written after the call resolved or failed. Result and Err are
// mutually exclusive.
type Entry struct {
	ID        uuid.UUID      `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Tool      string         `json:"tool"`
	Input     map[string]any `json:"input,omitempty"`
	Result    string         `json:"result,omitempty"`
	Err       string         `json:"error,omitempty"`
}

// Failed reports whether the entry records a failure.
func (e Entry) Failed() bool { return e.Err != "" }

// Journal is a bounded most-recent-first invocation log.
type Journal struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int

	now func() time.Time
}

// New creates a journal holding at most capacity entries. A capacity
// of zero or less falls back to DefaultCapacity.
func New(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Journal{
		capacity: capacity,
		now:      time.Now,
	}
}

// RecordSuccess prepends a success entry and returns it.
func (j *Journal) RecordSuccess(tool string, input map[string]any, result string) Entry {
	return j.record(Entry{Tool: tool, Input: input, Result: result})
}

// RecordFailure prepends a failure entry and returns it.
func (j *Journal) RecordFailure(tool string, input map[string]any, err error) Entry {
	return j.record(Entry{Tool: tool, Input: input, Err: err.Error()})
}

func (j *Journal) record(e Entry) Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	e.ID = uuid.New()
	e.Timestamp = j.now()

	j.entries = append([]Entry{e}, j.entries...)
	if len(j.entries) > j.capacity {
		j.entries = j.entries[:j.capacity]
	}
	return e
}

// Recent returns up to n entries, newest first. n <= 0 returns all.
func (j *Journal) Recent(n int) []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if n <= 0 || n > len(j.entries) {
		n = len(j.entries)
	}
	out := make([]Entry, n)
	copy(out, j.entries[:n])
	return out
}

// Len returns the number of retained entries.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Clear drops all entries.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = nil
}
