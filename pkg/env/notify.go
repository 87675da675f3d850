package env

// Notify calls UpdateEnvironment on n and on every node below it that
// implements [Updater], once each, in [Walk] order.
//
// Hooks run synchronously on the caller's goroutine. A panicking hook stops
// the walk and the panic propagates to the caller.
func Notify(n Node) {
	Walk(n, func(visited Node) {
		if u, ok := visited.(Updater); ok {
			u.UpdateEnvironment()
		}
	})
}
