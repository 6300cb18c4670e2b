package study

// phase is the lifecycle of one asynchronous operation.
type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseSucceeded
	phaseFailed
)

// slot tracks one independently-running operation. Slots never touch
// each other: a failure or pending request in one has no effect on the
// rest.
type slot[T any] struct {
	phase phase
	value T
	err   error
}

func (s *slot[T]) idle() bool      { return s.phase == phaseIdle }
func (s *slot[T]) loading() bool   { return s.phase == phaseLoading }
func (s *slot[T]) succeeded() bool { return s.phase == phaseSucceeded }
func (s *slot[T]) failed() bool    { return s.phase == phaseFailed }

// start moves the slot to loading. It reports false while a request is
// already in flight, which is how duplicate triggers become no-ops.
func (s *slot[T]) start() bool {
	if s.phase == phaseLoading {
		return false
	}

	s.phase = phaseLoading
	s.err = nil
	return true
}

// finish applies a response. On failure the previous value is kept, so a
// failed refresh leaves the last-known-good result visible.
func (s *slot[T]) finish(value T, err error) {
	if err != nil {
		s.phase = phaseFailed
		s.err = err
		return
	}

	s.phase = phaseSucceeded
	s.value = value
	s.err = nil
}
