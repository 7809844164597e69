package render

import "sync/atomic"

// errSlot is a single-assignment error cell. The first trySet wins; every
// later write is discarded, so a run surfaces at most one error no matter
// how many workers fail concurrently.
type errSlot struct {
	p atomic.Pointer[error]
}

// trySet records err if the slot is still empty. It reports whether this
// call was the winning write.
func (s *errSlot) trySet(err error) bool {
	if err == nil {
		return false
	}
	return s.p.CompareAndSwap(nil, &err)
}

// get returns the recorded error, or nil if no task has failed.
func (s *errSlot) get() error {
	if p := s.p.Load(); p != nil {
		return *p
	}
	return nil
}
