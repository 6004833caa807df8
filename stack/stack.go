package stack

// headroom is the number of top slots Resize keeps reserved: a stack
// resized to n holds at most n-headroom values and Push never writes
// the reserved slots. Set to 0 for the tighter index < size bound.
const headroom = 1

// Stack is a fixed-capacity LIFO array stack.
// 单协程有限数组栈,不提供并发保证。
type Stack struct {
	index uint32 // 栈数量，也指栈顶指向
	size  uint32
	data  []interface{}
}

// Resize allocates storage for n values. It must be called once,
// before any Push or Pop, and never concurrently with them.
func (s *Stack) Resize(n int) {
	s.data = make([]interface{}, n)
	s.size = uint32(n)
	s.index = 0
}

// Cap returns the usable capacity, size-headroom.
func (s *Stack) Cap() int {
	if s.size < headroom {
		return 0
	}
	return int(s.size - headroom)
}

func (s *Stack) Empty() bool {
	return s.index == 0
}

func (s *Stack) Full() bool {
	return s.Size() == s.Cap()
}

// Size stack element's number.
func (s *Stack) Size() int {
	return int(s.index)
}

// Push puts the given value at the top of the stack.
// It panics if called before Resize or with the stack full;
// both are contract breaches at the call site, not runtime errors.
func (s *Stack) Push(val interface{}) {
	if s.data == nil {
		panic("stack: push on unsized stack")
	}
	if s.index+headroom >= s.size {
		panic("stack: push past capacity")
	}
	s.data[s.index] = val
	s.index++
}

// Pop removes and returns the value at the top of the stack.
// It returns ok=false if the stack is empty.
func (s *Stack) Pop() (val interface{}, ok bool) {
	if s.index == 0 {
		return
	}
	s.index--
	val = s.data[s.index]
	s.data[s.index] = nil // free slot
	return val, true
}
