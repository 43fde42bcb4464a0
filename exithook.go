package pgelog

import "sync"

// The exit-hook registry holds every logger built with the hook
// enabled so that a process ending without an explicit Close still
// gets its logs summarized and persisted. The host wires RunExitHooks
// into its shutdown path (a deferred call in main, a signal handler,
// or both); Close's once-guard makes it safe for several of those
// paths to fire.
var (
	hooksMu sync.Mutex
	hooks   []*Logger
)

func registerExitHook(l *Logger) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	hooks = append(hooks, l)
}

// RunExitHooks finalizes every registered logger that is still open.
// The first error encountered is returned after all loggers have been
// attempted.
func RunExitHooks() error {
	hooksMu.Lock()
	registered := make([]*Logger, len(hooks))
	copy(registered, hooks)
	hooks = hooks[:0]
	hooksMu.Unlock()

	var firstErr error
	for _, l := range registered {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
