package memoryfs

import (
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/simpleos/simpleos-cli/internal/fs"
)

// Table is an append-only log of entries with an index of the live ones by path. Deleted rows
// keep their slot, so they count against the capacity until the table is dropped.
type Table struct {
	rows     []*Entry
	live     map[string]*Entry
	capacity int
}

// NewTable returns an empty table holding at most capacity rows. Zero means unbounded.
func NewTable(capacity int) *Table {
	return &Table{
		live:     make(map[string]*Entry),
		capacity: capacity,
	}
}

func (t *Table) FindLive(path string) (*Entry, bool) {
	e, ok := t.live[path]
	return e, ok
}

func (t *Table) Full() bool {
	return t.capacity > 0 && len(t.rows) >= t.capacity
}

// Insert appends e as a new live row with a fresh identity.
func (t *Table) Insert(e *Entry) (Slot, error) {
	if t.Full() {
		return 0, fs.ErrCapacityExceeded
	}
	if _, ok := t.live[e.Path]; ok {
		return 0, fs.ErrExist
	}

	e.ID = uuid.New()
	e.Slot = Slot(len(t.rows))
	e.Exists = true
	if e.ModTime.IsZero() {
		e.ModTime = time.Now()
	}

	t.rows = append(t.rows, e)
	t.live[e.Path] = e
	return e.Slot, nil
}

// MarkDeleted soft-deletes the live row at path.
func (t *Table) MarkDeleted(path string) bool {
	e, ok := t.live[path]
	if !ok {
		return false
	}

	e.Exists = false
	delete(t.live, path)
	return true
}

// Rekey changes the path of a live row in place.
func (t *Table) Rekey(oldPath, newPath string) error {
	e, ok := t.live[oldPath]
	if !ok {
		return fs.ErrNotExist
	}
	if oldPath == newPath {
		return nil
	}
	if _, ok := t.live[newPath]; ok {
		return fs.ErrExist
	}

	delete(t.live, oldPath)
	e.Path = newPath
	t.live[newPath] = e
	return nil
}

// AllLive yields live rows in slot order. The table must not be mutated while iterating.
func (t *Table) AllLive() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range t.rows {
			if e.Exists && !yield(e) {
				return
			}
		}
	}
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) LiveCount() int {
	return len(t.live)
}

func (t *Table) Capacity() int {
	return t.capacity
}
