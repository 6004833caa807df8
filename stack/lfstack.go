package stack

import (
	"sync/atomic"
)

// LFStack a lock-free concurrent FILO array stack.
//
// All state transitions go through one atomic control word:
//
//	ctrl = count<<1 | writer flag
//
// Push acquires the writer flag by CAS, so concurrent pushes
// serialize on the flag without a lock object. Pop is a plain CAS
// retry loop and does NOT honor the flag: a Pop overlapping an
// in-flight Push may read a slot the push has not yet published.
// 已知缺陷,保留原设计,Pop不参与写权限协议。
type LFStack struct {
	ctrl uint32 // count<<1 | writer flag
	size uint32
	data []interface{}
}

// cleanCtrl retrieves the word without the writer flag.
func cleanCtrl(c uint32) uint32 {
	return c &^ 1
}

// flagCtrl sets the writer flag.
func flagCtrl(c uint32) uint32 {
	return c | 1
}

// ctrlCount gets the element count part.
func ctrlCount(c uint32) uint32 {
	return c >> 1
}

func casUint32(addr *uint32, old, new uint32) bool {
	return atomic.CompareAndSwapUint32(addr, old, new)
}

// Resize allocates storage for n values and zeroes ctrl. It must be
// called once, before the stack is shared, never concurrently.
func (s *LFStack) Resize(n int) {
	s.data = make([]interface{}, n)
	s.size = uint32(n)
	atomic.StoreUint32(&s.ctrl, 0)
}

// Cap returns the usable capacity, size-headroom.
func (s *LFStack) Cap() int {
	if s.size < headroom {
		return 0
	}
	return int(s.size - headroom)
}

func (s *LFStack) Empty() bool {
	return s.Size() == 0
}

func (s *LFStack) Full() bool {
	return s.Size() == s.Cap()
}

// Size stack element's number. A snapshot only: the count may change
// before the caller acts on it.
func (s *LFStack) Size() int {
	return int(ctrlCount(atomic.LoadUint32(&s.ctrl)))
}

// acquireWriteRights spins until it CASes ctrl from an unflagged
// observed value to the same value with the writer flag set. While
// another Push holds the flag no stale unflagged value can succeed,
// so writers exclude each other on this bit alone.
func (s *LFStack) acquireWriteRights() {
	for {
		ctrl := atomic.LoadUint32(&s.ctrl)
		if ctrl&1 != 0 {
			// another Push holds write rights
			continue
		}
		if casUint32(&s.ctrl, ctrl, flagCtrl(ctrl)) {
			return
		}
	}
}

// Push puts the given value at the top of the stack.
// Panics like Stack.Push on unsized or full stacks. It never blocks
// on a lock; contention is absorbed by CAS retries.
func (s *LFStack) Push(val interface{}) {
	if s.data == nil {
		panic("stack: push on unsized stack")
	}
	s.acquireWriteRights()
	// write role: only one Push here ~
	for {
		ctrl := atomic.LoadUint32(&s.ctrl)
		count := ctrlCount(ctrl)
		if count+headroom >= s.size {
			panic("stack: push past capacity")
		}
		s.data[count] = val
		// publish: count+1 with writer flag cleared
		if casUint32(&s.ctrl, ctrl, cleanCtrl(ctrl)+2) {
			return
		}
		// a concurrent Pop moved ctrl, rewrite and republish
	}
}

// Pop removes and returns the value at the top of the stack.
// It returns ok=false if the stack is observed empty. The CAS
// compares the raw observed word, flag bit included, and forces the
// flag to zero on success.
func (s *LFStack) Pop() (val interface{}, ok bool) {
	for {
		ctrl := atomic.LoadUint32(&s.ctrl)
		count := ctrlCount(ctrl)
		if count == 0 {
			return nil, false
		}
		val = s.data[count-1]
		if casUint32(&s.ctrl, ctrl, (count-1)<<1) {
			return val, true
		}
	}
}
