//go:build go1.23
// +build go1.23

package mpsc

import (
	"testing"
	"time"

	"github.com/destel/mpsc/internal/th"
)

func TestAll(t *testing.T) {
	t.Run("until closed", func(t *testing.T) {
		tx, rx := New[int]()
		go func() {
			defer tx.Close()
			for i := 0; i < 20; i++ {
				tx.Send(i)
			}
		}()

		var out []int
		th.ExpectNotHang(t, 1*time.Second, func() {
			for v := range rx.All() {
				out = append(out, v)
			}
		})

		th.ExpectSlice(t, out, th.Range(0, 20))
	})

	t.Run("break", func(t *testing.T) {
		tx, rx := New[int]()
		for i := 0; i < 10; i++ {
			tx.Send(i)
		}
		tx.Close()

		var out []int
		for v := range rx.All() {
			if v == 4 {
				break
			}
			out = append(out, v)
		}
		th.ExpectSlice(t, out, th.Range(0, 4))

		// values after the break point stay in the channel
		out = out[:0]
		for v := range rx.All() {
			out = append(out, v)
		}
		th.ExpectSlice(t, out, th.Range(5, 10))
	})

	t.Run("closed", func(t *testing.T) {
		tx, rx := New[int]()
		tx.Close()

		cnt := 0
		for range rx.All() {
			cnt++
		}
		th.ExpectValue(t, cnt, 0)
	})
}
