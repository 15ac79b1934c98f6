//go:build !baremetal

// Package critical runs short register sequences with interrupts masked.
package critical

import "sync"

// There are no interrupts on a host; one process-wide lock gives the same
// exclusion between goroutines.
var mu sync.Mutex

// Do runs fn while holding the process-wide critical section.
func Do(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	fn()
}
