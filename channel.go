package mpsc

import (
	"sync"
	"sync/atomic"

	"github.com/destel/mpsc/internal/ringbuffer"
)

// shared is the state jointly owned by all senders and the receiver of one channel.
// queue and senders are guarded by mu. The receiver waits on available.
type shared[T any] struct {
	mu        sync.Mutex
	available *sync.Cond

	queue   ringbuffer.Buffer[T]
	senders int
}

// New creates an unbounded channel and returns its first sender and its only receiver.
//
// More senders can be obtained with [Sender.Clone]. The channel becomes closed once every sender
// has been closed and all queued values have been received.
func New[T any]() (*Sender[T], *Receiver[T]) {
	s := &shared[T]{senders: 1}
	s.available = sync.NewCond(&s.mu)

	return &Sender[T]{shared: s}, &Receiver[T]{shared: s}
}

// Sender is a producer handle of a channel. Send never blocks.
//
// A single Sender may be used from multiple goroutines, but it's more common to give each producer
// its own clone and close it when the producer is done.
type Sender[T any] struct {
	shared *shared[T]
	closed atomic.Bool
}

// Send appends v to the channel queue and wakes the receiver if it's waiting.
// Send does not detect that the receiver is gone: in that case v simply stays queued.
//
// Send panics if this handle was closed.
func (s *Sender[T]) Send(v T) {
	if s.closed.Load() {
		panic("mpsc: send on closed sender")
	}

	sh := s.shared
	sh.mu.Lock()
	sh.queue.Write(v)
	sh.mu.Unlock()

	sh.available.Signal()
}

// Clone returns a new independent sender for the same channel.
// The channel stays open until both the original and the clone are closed.
//
// Clone panics if this handle was closed.
func (s *Sender[T]) Clone() *Sender[T] {
	if s.closed.Load() {
		panic("mpsc: clone of closed sender")
	}

	sh := s.shared
	sh.mu.Lock()
	sh.senders++
	sh.mu.Unlock()

	return &Sender[T]{shared: sh}
}

// Close releases this sender. When the last sender of a channel is closed, the receiver
// observes closure after draining the values that are still queued.
//
// Closing an already closed handle is a no-op.
func (s *Sender[T]) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}

	sh := s.shared
	sh.mu.Lock()
	sh.senders--
	last := sh.senders == 0
	sh.mu.Unlock()

	if last {
		sh.available.Signal()
	}
}

// Receiver is the only consumer handle of a channel.
// Its methods must not be called concurrently.
type Receiver[T any] struct {
	shared *shared[T]

	// values moved out of the shared queue in bulk, owned by the consumer goroutine
	buf ringbuffer.Buffer[T]
}

// Recv returns the next value from the channel, blocking while the channel is empty and
// at least one sender is open. The boolean is false if the channel is closed:
// all senders are closed and no values remain. After that Recv keeps returning false without blocking.
//
// When Recv takes a value from the shared queue, it also moves everything queued behind it into
// a private buffer, so that the following calls don't need to acquire the lock.
func (r *Receiver[T]) Recv() (T, bool) {
	if v, ok := r.buf.Read(); ok {
		return v, true
	}

	sh := r.shared
	sh.mu.Lock()
	defer sh.mu.Unlock()

	for {
		if v, ok := sh.queue.Read(); ok {
			if sh.queue.Len() > 0 {
				// r.buf is empty here, so the shared queue gets a ready to use allocation back
				sh.queue.Swap(&r.buf)
			}
			return v, true
		}

		if sh.senders == 0 {
			var zero T
			return zero, false
		}

		sh.available.Wait()
	}
}

// Buffered returns the number of values the receiver has already taken from the shared queue
// but not yet returned from [Receiver.Recv]. It does not acquire the lock.
func (r *Receiver[T]) Buffered() int {
	return r.buf.Len()
}
