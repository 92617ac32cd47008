// Package slots implements a fixed-size slot table whose free slots are
// threaded into a singly linked list through the table itself.
package slots

// end terminates the free list.
const end = -1

// Table hands out indices in [0, Len()). Every index is either allocated or
// linked into the free list, never both.
//
// Table is not safe for concurrent use.
type Table struct {
	next      []int
	allocated []bool
	head      int
	inUse     int
}

// New creates a table of n slots. The free list starts in index order, so
// the first Alloc returns 0.
func New(n int) *Table {
	t := &Table{
		next:      make([]int, n),
		allocated: make([]bool, n),
		head:      end,
	}
	for i := range n {
		t.next[i] = i + 1
	}
	if n > 0 {
		t.next[n-1] = end
		t.head = 0
	}
	return t
}

// Alloc unlinks the head of the free list. It returns false when the table
// is exhausted.
func (t *Table) Alloc() (int, bool) {
	if t.head == end {
		return end, false
	}
	i := t.head
	t.head = t.next[i]
	t.next[i] = end
	t.allocated[i] = true
	t.inUse++
	return i, true
}

// Release links i back in as the new head. Out-of-range or already free
// indices are rejected so a double release cannot corrupt the list.
func (t *Table) Release(i int) bool {
	if !t.Allocated(i) {
		return false
	}
	t.allocated[i] = false
	t.next[i] = t.head
	t.head = i
	t.inUse--
	return true
}

// Allocated reports whether i is currently handed out.
func (t *Table) Allocated(i int) bool {
	return i >= 0 && i < len(t.allocated) && t.allocated[i]
}

// Len returns the table size.
func (t *Table) Len() int {
	return len(t.next)
}

// InUse returns the number of allocated slots.
func (t *Table) InUse() int {
	return t.inUse
}

// Free walks the free list from its head.
func (t *Table) Free() []int {
	free := make([]int, 0, len(t.next)-t.inUse)
	for i := t.head; i != end; i = t.next[i] {
		free = append(free, i)
	}
	return free
}
