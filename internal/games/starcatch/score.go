package starcatch

// ScoreTracker is a monotonic star counter with change detection.
type ScoreTracker struct {
	value   int
	changed bool
	frozen  bool
}

// Increment adds one point unless the score is frozen.
func (s *ScoreTracker) Increment() {
	if s.frozen {
		return
	}
	s.value++
	s.changed = true
}

// Value returns the current score.
func (s *ScoreTracker) Value() int {
	return s.value
}

// Freeze stops all further changes (game over).
func (s *ScoreTracker) Freeze() {
	s.frozen = true
}

// TakeChanged reports whether the score moved since the last call.
func (s *ScoreTracker) TakeChanged() bool {
	c := s.changed
	s.changed = false
	return c
}
