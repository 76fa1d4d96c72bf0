// Package ringbuffer provides a growable FIFO queue backed by a circular slice.
package ringbuffer

const minCap = 16

// Buffer is a FIFO queue. The zero value is an empty buffer ready to use.
// It is not safe for concurrent use.
type Buffer[T any] struct {
	data         []T
	offset, size int
}

func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

func (b *Buffer[T]) Len() int {
	return b.size
}

// write to end
func (b *Buffer[T]) Write(v T) {
	b.Grow(1)

	pos := (b.offset + b.size) % len(b.data)
	b.data[pos] = v
	b.size++
}

// read from start
func (b *Buffer[T]) Read() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}

	v := b.data[b.offset]

	var zero T
	b.data[b.offset] = zero // let GC do its work

	b.offset = (b.offset + 1) % len(b.data)
	b.size--
	if b.size == 0 {
		b.offset = 0
	}
	return v, true
}

// Swap exchanges the contents of two buffers in O(1), without copying elements.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	*b, *other = *other, *b
}

// change the capacity and defragment the buffer
// panics if newCap is less than buf.size
func (b *Buffer[T]) setCap(newCap int) {
	newData := make([]T, newCap)

	end := b.offset + b.size
	if end <= len(b.data) {
		copy(newData, b.data[b.offset:end])
	} else {
		copied := copy(newData, b.data[b.offset:])
		copy(newData[copied:], b.data[:b.size-copied])
	}

	b.data = newData
	b.offset = 0
}

func (b *Buffer[T]) Grow(n int) {
	targetSize := b.size + n
	targetCap := cap(b.data)

	if targetCap >= targetSize {
		return // enough
	}

	if targetCap < minCap {
		targetCap = minCap
	}
	for targetCap < targetSize {
		targetCap <<= 1 // double the capacity
	}

	b.setCap(targetCap)
}
