package sim

// Trail is a fixed-capacity ring buffer of past projected positions, oldest
// evicted on insert. It backs the fading streak behind each star.
type Trail struct {
	pts   []ScreenPoint
	start int
	count int
}

// NewTrail allocates a trail holding at most capacity points.
func NewTrail(capacity int) Trail {
	if capacity < 1 {
		capacity = 1
	}
	return Trail{pts: make([]ScreenPoint, capacity)}
}

// Push appends p, evicting the oldest point when full.
func (t *Trail) Push(p ScreenPoint) {
	if t.count < len(t.pts) {
		t.pts[(t.start+t.count)%len(t.pts)] = p
		t.count++
		return
	}
	t.pts[t.start] = p
	t.start = (t.start + 1) % len(t.pts)
}

// Len reports the number of stored points.
func (t *Trail) Len() int { return t.count }

// Cap reports the trail capacity.
func (t *Trail) Cap() int { return len(t.pts) }

// At returns the i-th stored point, oldest first.
func (t *Trail) At(i int) ScreenPoint {
	return t.pts[(t.start+i)%len(t.pts)]
}

// Clear drops all stored points without releasing the backing array.
func (t *Trail) Clear() {
	t.start = 0
	t.count = 0
}
