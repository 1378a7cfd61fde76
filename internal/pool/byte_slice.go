// Package pool provides small object pools shared across the module.
package pool

import "sync"

const defaultCapacity = 64

// ByteSlicePool hands out zero-length byte slices for reuse. Slices
// returned through Put are reset before they are handed out again.
type ByteSlicePool struct {
	p *sync.Pool
}

var byteSlice = &ByteSlicePool{
	p: &sync.Pool{
		New: func() interface{} {
			return make([]byte, 0, defaultCapacity)
		},
	},
}

// ByteSlice returns the shared byte slice pool.
func ByteSlice() *ByteSlicePool {
	return byteSlice
}

// Get returns a zero-length slice with at least the default capacity.
func (b *ByteSlicePool) Get() []byte {
	return b.p.Get().([]byte)
}

// GetCapacity returns a zero-length slice with at least n bytes of
// capacity.
func (b *ByteSlicePool) GetCapacity(n int) []byte {
	buf := b.p.Get().([]byte)
	if cap(buf) < n {
		buf = make([]byte, 0, n)
	}
	return buf
}

// Put returns a slice to the pool. The caller must not use buf after
// the call.
func (b *ByteSlicePool) Put(buf []byte) {
	b.p.Put(buf[:0]) //nolint:staticcheck
}
