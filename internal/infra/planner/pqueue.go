package planner

import "container/heap"

// MinQueue pops items in ascending priority order.
type MinQueue[T any] interface {
	Push(item T, priority float64)
	PopMin() (T, float64, bool)
	IsEmpty() bool
	Len() int
}

// NewMinQueue returns a binary-heap MinQueue. Items with equal priority
// pop in insertion order.
func NewMinQueue[T any]() MinQueue[T] {
	return &heapQueue[T]{}
}

type queueEntry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entryHeap implements heap.Interface
type entryHeap[T any] []queueEntry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) {
	*h = append(*h, x.(queueEntry[T]))
}

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = queueEntry[T]{}
	*h = old[0 : n-1]

	return entry
}

type heapQueue[T any] struct {
	entries entryHeap[T]
	nextSeq uint64
}

func (q *heapQueue[T]) Push(item T, priority float64) {
	heap.Push(&q.entries, queueEntry[T]{item: item, priority: priority, seq: q.nextSeq})
	q.nextSeq++
}

func (q *heapQueue[T]) PopMin() (T, float64, bool) {
	if q.entries.Len() == 0 {
		var zero T
		return zero, 0, false
	}
	entry := heap.Pop(&q.entries).(queueEntry[T])

	return entry.item, entry.priority, true
}

func (q *heapQueue[T]) IsEmpty() bool {
	return q.entries.Len() == 0
}

func (q *heapQueue[T]) Len() int {
	return q.entries.Len()
}
