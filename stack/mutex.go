package stack

import (
	"sync"
)

// mutex stack
// 单锁有限数组栈

// MutexStack wraps a Stack with one mutex per instance, making the
// whole contract safe for concurrent use. Operations are totally
// ordered by lock acquisition.
type MutexStack struct {
	mu      sync.Mutex
	wrapped Stack
}

// Resize allocates storage for n values. Call it once before the
// stack is shared; it must not run concurrently with Push or Pop.
func (s *MutexStack) Resize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wrapped.Resize(n)
}

func (s *MutexStack) Cap() int {
	return s.wrapped.Cap()
}

func (s *MutexStack) Empty() bool {
	return s.Size() == 0
}

func (s *MutexStack) Full() bool {
	return s.Size() == s.Cap()
}

// Size stack element's number.
func (s *MutexStack) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wrapped.Size()
}

// Push puts the given value at the top of the stack.
// Panics like Stack.Push on unsized or full stacks.
func (s *MutexStack) Push(val interface{}) {
	// only one goroutine executes this block at one time (per stack)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wrapped.Push(val)
}

// Pop removes and returns the value at the top of the stack.
// It returns ok=false if the stack is empty.
func (s *MutexStack) Pop() (val interface{}, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wrapped.Pop()
}
