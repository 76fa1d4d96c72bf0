package mpsc_test

import (
	"fmt"
	"sort"
	"sync"

	"github.com/destel/mpsc"
)

// This example sends a few values, closes the only sender and drains the receiver.
// Values queued before the close are still delivered.
func Example() {
	tx, rx := mpsc.New[string]()

	tx.Send("hello")
	tx.Send("world")
	tx.Close()

	for {
		msg, ok := rx.Recv()
		if !ok {
			break
		}
		fmt.Println(msg)
	}

	// Output:
	// hello
	// world
}

// This example gives each producer goroutine its own clone of the sender.
// The receiver observes closure once every clone and the original are closed.
func Example_producers() {
	tx, rx := mpsc.New[int]()

	var wg sync.WaitGroup
	for p := 0; p < 3; p++ {
		p := p
		ptx := tx.Clone()

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer ptx.Close()

			for i := 0; i < 2; i++ {
				ptx.Send(p*10 + i)
			}
		}()
	}
	tx.Close()

	var res []int
	for {
		v, ok := rx.Recv()
		if !ok {
			break
		}
		res = append(res, v)
	}
	wg.Wait()

	sort.Ints(res)
	fmt.Println(res)

	// Output:
	// [0 1 10 11 20 21]
}

func ExampleToChan() {
	tx, rx := mpsc.New[int]()
	go func() {
		defer tx.Close()
		for i := 1; i <= 3; i++ {
			tx.Send(i * i)
		}
	}()

	for v := range mpsc.ToChan(rx) {
		fmt.Println(v)
	}

	// Output:
	// 1
	// 4
	// 9
}

func ExampleForward() {
	tx, rx := mpsc.New[string]()

	events := make(chan string)
	go mpsc.Forward(events, tx)

	go func() {
		defer close(events)
		events <- "started"
		events <- "stopped"
	}()

	for {
		ev, ok := rx.Recv()
		if !ok {
			break
		}
		fmt.Println(ev)
	}

	// Output:
	// started
	// stopped
}
