package blocks

// QueueSize is the number of upcoming pieces kept in the preview queue.
const QueueSize = 10

// Queue is a fixed-capacity FIFO ring buffer of upcoming piece types.
type Queue struct {
	items [QueueSize]PieceType
	head  int
	size  int
}

// Len returns the number of queued pieces.
func (q *Queue) Len() int {
	return q.size
}

// Cap returns the fixed capacity.
func (q *Queue) Cap() int {
	return QueueSize
}

// Full reports whether the queue is at capacity.
func (q *Queue) Full() bool {
	return q.size == QueueSize
}

// Push appends t at the back. Returns false if the queue is full.
func (q *Queue) Push(t PieceType) bool {
	if q.size == QueueSize {
		return false
	}
	q.items[(q.head+q.size)%QueueSize] = t
	q.size++
	return true
}

// Front returns the next piece without removing it.
func (q *Queue) Front() (PieceType, bool) {
	if q.size == 0 {
		return PieceNone, false
	}
	return q.items[q.head], true
}

// Pop removes and returns the front piece.
func (q *Queue) Pop() (PieceType, bool) {
	t, ok := q.Front()
	if !ok {
		return PieceNone, false
	}
	q.head = (q.head + 1) % QueueSize
	q.size--
	return t, true
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.head = 0
	q.size = 0
}

// Items returns a front-first copy of the queued pieces.
func (q *Queue) Items() []PieceType {
	out := make([]PieceType, q.size)
	for i := range out {
		out[i] = q.items[(q.head+i)%QueueSize]
	}
	return out
}
