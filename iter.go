//go:build go1.23
// +build go1.23

package mpsc

import (
	"iter"
)

// All returns an iterator over the values received from the channel.
// Iteration blocks the same way [Receiver.Recv] does and ends when the channel is closed.
//
// Breaking out of the loop early leaves the remaining values in the channel,
// so they can be received later by another loop or by Recv:
//
//	for v := range rx.All() {
//		// process v
//	}
func (r *Receiver[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := r.Recv()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
