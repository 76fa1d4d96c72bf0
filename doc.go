// Package mpsc provides an unbounded multi-producer, single-consumer channel.
//
// Unlike a native Go channel, sending never blocks and the channel has no fixed capacity.
// It's closed implicitly: once every sender has been closed and all queued values have been received,
// the receiver reports closure. There is no need to coordinate which producer closes the channel.
//
//	tx, rx := mpsc.New[Event]()
//
//	for _, src := range sources {
//		ptx := tx.Clone()
//		go func() {
//			defer ptx.Close()
//			for ev := range src.Events() {
//				ptx.Send(ev)
//			}
//		}()
//	}
//	tx.Close()
//
//	for {
//		ev, ok := rx.Recv()
//		if !ok {
//			break // all producers are done
//		}
//		// process ev
//	}
//
// # Senders
//
// [New] returns the first [Sender]. More can be created with [Sender.Clone], usually one per producer goroutine.
// Every sender must be closed with [Sender.Close] when its producer is done, otherwise the receiver
// keeps waiting for more values. Sending or cloning through a closed handle panics.
//
// Sends are never rejected. If the receiver is no longer used, sent values simply stay queued until
// the channel itself is garbage collected.
//
// # Receiver
//
// There is exactly one [Receiver] per channel, and its methods must not be called concurrently.
// [Receiver.Recv] blocks while the channel is empty and any sender is open.
// Values from a single sender are received in the order they were sent. Values from different senders
// are interleaved in the order their Send calls completed.
//
// To reduce lock contention, Recv takes everything queued so far in one step and serves the following calls
// from a private buffer, without locking. This makes the channel well suited for many busy producers.
//
// The receiver can also be consumed with a for-range loop using [Receiver.All],
// or converted to a native channel using [ToChan]. Native channels can be fed into a sender using [Forward].
package mpsc
