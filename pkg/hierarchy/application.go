package hierarchy

import (
	"fmt"
	"sync"
)

// Application tracks the connected windows of a process.
//
// Window bookkeeping is safe for concurrent use. Hierarchy mutation and
// environment changes on the windows still belong to the UI goroutine.
type Application struct {
	mu      sync.RWMutex
	windows []*Window
}

// NewApplication creates an application with no windows.
func NewApplication() *Application {
	return &Application{}
}

// AddWindow connects w. Adding a connected window does nothing.
func (a *Application) AddWindow(w *Window) error {
	if w == nil {
		return fmt.Errorf("add window: %w", ErrNilNode)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, existing := range a.windows {
		if existing == w {
			return nil
		}
	}
	a.windows = append(a.windows, w)
	return nil
}

// RemoveWindow disconnects w and reports whether it was connected.
func (a *Application) RemoveWindow(w *Window) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, existing := range a.windows {
		if existing == w {
			a.windows = append(a.windows[:i], a.windows[i+1:]...)
			return true
		}
	}
	return false
}

// Windows returns the connected windows in connection order.
func (a *Application) Windows() []*Window {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]*Window(nil), a.windows...)
}

// ForEachWindow calls fn for each connected window. fn may add or remove
// windows; the windows connected when ForEachWindow was called are visited.
func (a *Application) ForEachWindow(fn func(*Window)) {
	for _, w := range a.Windows() {
		fn(w)
	}
}
