package memory

// table keeps rows by id and remembers insertion order, which is the
// order every scan in this package walks.
type table[T any] struct {
	rows  map[int64]*T
	order []int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]*T)}
}

func (t *table[T]) get(id int64) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) put(id int64, row *T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

// each walks rows in insertion order until fn returns false.
func (t *table[T]) each(fn func(row *T) bool) {
	for _, id := range t.order {
		row, ok := t.rows[id]
		if !ok {
			continue
		}
		if !fn(row) {
			return
		}
	}
}

func (t *table[T]) len() int {
	return len(t.rows)
}
