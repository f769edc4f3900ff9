// Package overlay manages native capture-excluded, click-through windows.
package overlay

// request is one native call marshaled to a window's owning thread.
type request struct {
	fn    func() bool
	reply chan bool
	stop  bool
}

// service serializes native calls onto the single OS thread that owns a
// window. The owning thread alternates between servicing marshaled calls
// and pumping its native run loop in bounded slices, so a call made while
// the loop is alive always completes and returns to the caller.
type service struct {
	reqs chan request
	done chan struct{}
}

func newService() *service {
	return &service{
		reqs: make(chan request),
		done: make(chan struct{}),
	}
}

// run services marshaled calls on the calling goroutine until a stop
// request arrives. pump yields the thread to the native run loop for one
// bounded slice between calls.
func (s *service) run(pump func()) {
	defer close(s.done)
	for {
		select {
		case req := <-s.reqs:
			req.reply <- req.fn()
			if req.stop {
				return
			}
		default:
			pump()
		}
	}
}

// call runs fn on the owning thread and waits for its result. The second
// return is false when the loop has already shut down and fn never ran.
func (s *service) call(fn func() bool, stop bool) (bool, bool) {
	req := request{fn: fn, reply: make(chan bool, 1), stop: stop}
	select {
	case s.reqs <- req:
	case <-s.done:
		return false, false
	}
	select {
	case v := <-req.reply:
		return v, true
	case <-s.done:
		// The loop may shut down right after replying; prefer the reply.
		select {
		case v := <-req.reply:
			return v, true
		default:
			return false, false
		}
	}
}
