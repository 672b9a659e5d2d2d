package schedule

import (
	"container/heap"
	"time"
)

// timerHeap orders intervals by next due time, then by creation order.
type timerHeap []*Interval

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	iv := x.(*Interval)
	iv.index = len(*h)
	*h = append(*h, iv)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	iv := old[n-1]
	old[n-1] = nil
	iv.index = -1
	*h = old[:n-1]
	return iv
}

func (h *timerHeap) insert(iv *Interval) {
	heap.Push(h, iv)
}

func (h *timerHeap) remove(iv *Interval) {
	if iv.index < 0 {
		return
	}
	heap.Remove(h, iv.index)
}

// peek returns the next interval to fire, or nil.
func (h timerHeap) peek() *Interval {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}

// popDue removes and returns the next interval due at or before limit.
func (h *timerHeap) popDue(limit time.Time) *Interval {
	next := h.peek()
	if next == nil || next.due.After(limit) {
		return nil
	}
	return heap.Pop(h).(*Interval)
}
