package autofill

import "sync/atomic"

var current atomic.Pointer[Resolver]

// Current returns process-wide resolver set with SetCurrent.
// The slot is intentionally global for call sites that cannot take an injected *Resolver;
// set it once at startup.
func Current() *Resolver {
	return current.Load()
}

// SetCurrent sets process-wide resolver
func SetCurrent(resolver *Resolver) {
	current.Store(resolver)
}
