package mpsc

// ToChan starts a goroutine that moves every value received by r into the returned channel,
// and closes that channel once r is closed. The returned channel is unbuffered.
//
// The receiver must not be used directly after calling ToChan.
// The returned channel must be drained to completion, otherwise the goroutine is leaked.
func ToChan[T any](r *Receiver[T]) <-chan T {
	if r == nil {
		return nil
	}

	out := make(chan T)
	go func() {
		defer close(out)
		for {
			v, ok := r.Recv()
			if !ok {
				return
			}
			out <- v
		}
	}()

	return out
}

// Forward sends every value read from in via s and closes s when in is closed.
// This is a blocking function. A nil in channel closes s immediately.
//
// Forward takes ownership of s: a typical call passes a fresh clone
//
//	go mpsc.Forward(events, tx.Clone())
func Forward[T any](in <-chan T, s *Sender[T]) {
	defer s.Close()

	if in == nil {
		return
	}

	for v := range in {
		s.Send(v)
	}
}
