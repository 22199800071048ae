package entity

import "iter"

// Table holds one component type for every entity that has it.
// Iteration follows insertion order.
type Table[T any] struct {
	rows  map[ID]*T
	order []ID
}

func newTable[T any]() *Table[T] {
	return &Table[T]{
		rows:  make(map[ID]*T),
		order: make([]ID, 0, 16),
	}
}

func (t *Table[T]) set(id ID, val T) {
	if row, exists := t.rows[id]; exists {
		*row = val
		return
	}
	v := val
	t.rows[id] = &v
	t.order = append(t.order, id)
}

func (t *Table[T]) remove(id ID) {
	if _, exists := t.rows[id]; !exists {
		return
	}
	delete(t.rows, id)
	for i, e := range t.order {
		if e == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Get returns a pointer to the component of id. Writes through the pointer
// update the stored component.
func (t *Table[T]) Get(id ID) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// Has reports whether id has this component
func (t *Table[T]) Has(id ID) bool {
	_, ok := t.rows[id]
	return ok
}

// Len returns the number of entities with this component
func (t *Table[T]) Len() int {
	return len(t.order)
}

// IDs returns a copy of the entities holding this component
func (t *Table[T]) IDs() []ID {
	ids := make([]ID, len(t.order))
	copy(ids, t.order)
	return ids
}

// All iterates over a snapshot of the table. Rows removed during iteration
// are skipped; rows added during iteration are not visited.
func (t *Table[T]) All() iter.Seq2[ID, *T] {
	return func(yield func(ID, *T) bool) {
		for _, id := range t.IDs() {
			row, ok := t.rows[id]
			if !ok {
				continue
			}
			if !yield(id, row) {
				return
			}
		}
	}
}
