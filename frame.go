package zlayer

// FrameScheduler defers work to the host's next display refresh.
//
// The engine uses it to requeue unfinished incremental paint passes:
// conceptually "run this closure before the next frame". Implementations
// must invoke callbacks on the same goroutine that drives the Painter; the
// engine has no internal locking.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// ImmediateScheduler runs frame callbacks synchronously. Useful for hosts
// that want a refresh to run to completion in one call; time-sliced passes
// still make bounded progress per callback, so draining terminates.
type ImmediateScheduler struct{}

// RequestFrame calls fn immediately.
func (ImmediateScheduler) RequestFrame(fn func()) { fn() }

// ManualScheduler queues frame callbacks for explicit pumping. Headless
// hosts and tests drive it one frame at a time.
type ManualScheduler struct {
	queue []func()
}

// RequestFrame queues fn for the next Pump.
func (s *ManualScheduler) RequestFrame(fn func()) {
	s.queue = append(s.queue, fn)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.queue)
}

// Pump runs the callbacks queued so far as one frame and reports whether
// any ran. Callbacks queued during the pump run on the next Pump.
func (s *ManualScheduler) Pump() bool {
	if len(s.queue) == 0 {
		return false
	}
	frame := s.queue
	s.queue = nil
	for _, fn := range frame {
		fn()
	}
	return true
}
