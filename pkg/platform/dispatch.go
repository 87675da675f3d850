package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the function that schedules callbacks on the UI
// goroutine. Pass nil to run callbacks inline.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch runs callback on the UI goroutine. With no dispatcher registered
// the callback runs inline before Dispatch returns. Dispatch reports whether
// the callback was handed to a dispatcher.
func Dispatch(callback func()) bool {
	if callback == nil {
		return false
	}
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil {
		callback()
		return false
	}
	fn(callback)
	return true
}
