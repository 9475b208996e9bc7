package focus

// Stack tracks which element currently owns keyboard input as a stack of
// element IDs. The top of the stack is the active element; an empty stack
// means focus is wherever the host left it.
//
// A single Stack may be shared by sibling controllers created by the same
// host so that they agree on the active element.
type Stack struct {
	ids []string
}

// NewStack creates a new empty focus stack.
func NewStack() *Stack {
	return &Stack{
		ids: make([]string, 0, 4),
	}
}

// Push makes id the active element.
// Does nothing if the id is already at the top (prevents duplicate pushes)
// or is empty.
func (s *Stack) Push(id string) {
	if id == "" {
		return
	}
	if len(s.ids) > 0 && s.ids[len(s.ids)-1] == id {
		return // Already active, no-op
	}
	s.ids = append(s.ids, id)
}

// Pop removes and returns the active element ID, handing focus back to
// whatever held it before. Returns "" if the stack is empty.
func (s *Stack) Pop() string {
	if len(s.ids) == 0 {
		return ""
	}
	top := s.ids[len(s.ids)-1]
	s.ids = s.ids[:len(s.ids)-1]
	return top
}

// Current returns the active element ID without removing it.
// Returns "" if the stack is empty.
func (s *Stack) Current() string {
	if len(s.ids) == 0 {
		return ""
	}
	return s.ids[len(s.ids)-1]
}

// Has returns true if the given id is anywhere in the stack.
func (s *Stack) Has(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Remove removes a specific id from anywhere in the stack.
// This is useful when an element is unmounted by some external event.
func (s *Stack) Remove(id string) {
	kept := s.ids[:0]
	for _, v := range s.ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	s.ids = kept
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.ids)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.ids = s.ids[:0]
}
