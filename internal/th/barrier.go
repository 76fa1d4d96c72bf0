package th

import "sync"

// Barrier holds goroutines calling Wait until n of them have arrived, then releases all of them at once.
// It is used to make concurrent producers start at the same moment and maximize interleaving.
// A Barrier is single use.
type Barrier struct {
	cond    *sync.Cond
	n       int
	arrived int
}

func NewBarrier(n int) *Barrier {
	return &Barrier{
		cond: sync.NewCond(&sync.Mutex{}),
		n:    n,
	}
}

func (b *Barrier) Wait() {
	b.cond.L.Lock()
	defer b.cond.L.Unlock()

	b.arrived++
	if b.arrived >= b.n {
		b.cond.Broadcast()
		return
	}

	for b.arrived < b.n {
		b.cond.Wait()
	}
}
