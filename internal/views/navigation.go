package views

import "sync"

// Route exposes the parameters of the current navigation target.
type Route interface {
	Param(name string) string
}

// Params is a Route backed by a map.
type Params map[string]string

// Param returns the named parameter or "".
func (p Params) Param(name string) string {
	return p[name]
}

// Location navigates back to the previous view.
type Location interface {
	Back()
}

// History is a Location over a stack of visited paths.
type History struct {
	mu    sync.Mutex
	stack []string
}

// NewHistory starts a history at path.
func NewHistory(path string) *History {
	return &History{stack: []string{path}}
}

// Push records a navigation to path.
func (h *History) Push(path string) {
	h.mu.Lock()
	h.stack = append(h.stack, path)
	h.mu.Unlock()
}

// Back pops the current path. The first entry is never popped.
func (h *History) Back() {
	h.mu.Lock()
	if len(h.stack) > 1 {
		h.stack = h.stack[:len(h.stack)-1]
	}
	h.mu.Unlock()
}

// Current returns the path on top of the stack.
func (h *History) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.stack) == 0 {
		return ""
	}
	return h.stack[len(h.stack)-1]
}
