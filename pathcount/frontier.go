package pathcount

// entry is one candidate route in the frontier: the edge from→to reached with
// cumulative weight dist. seq records insertion order and breaks ties so runs
// are reproducible; correctness does not depend on it.
type entry struct {
	from string
	to   string
	dist int64
	seq  uint64
}

// frontier is a min-heap of *entry ordered by dist, then seq.
// Duplicates for the same destination are allowed (lazy decrease-key); stale
// ones are recognised when popped.
type frontier []*entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by cumulative weight, then by insertion order.
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop removes and returns the last element; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
