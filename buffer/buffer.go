// Package buffer provides fixed-capacity byte arenas used by the Wayland
// wire codec and socket layer.
//
// A Buffer never grows past the capacity it was created with: every
// mutating operation either succeeds or panics. Capacity exhaustion is a
// protocol desync, not a recoverable condition, the same discipline the
// connection applies to short sends and truncated receives.
package buffer

// Buffer is a contiguous byte region of fixed capacity with a used-length
// counter. It backs outbound/inbound payload buffers (large, for message
// bytes) and outbound/inbound ancillary buffers (small, for control
// messages carrying file descriptors).
type Buffer struct {
	data []byte
	len  int
}

// New allocates a Buffer with the given fixed capacity.
func New(capacity int) *Buffer {
	return &Buffer{data: make([]byte, capacity)}
}

// Len returns the number of used bytes.
func (b *Buffer) Len() int { return b.len }

// Cap returns the buffer's fixed capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Push appends a single byte.
func (b *Buffer) Push(v byte) {
	if b.len >= len(b.data) {
		panic("buffer: capacity exceeded")
	}
	b.data[b.len] = v
	b.len++
}

// Extend appends a slice of bytes.
func (b *Buffer) Extend(p []byte) {
	if b.len+len(p) > len(b.data) {
		panic("buffer: capacity exceeded")
	}
	copy(b.data[b.len:], p)
	b.len += len(p)
}

// SetLen sets the used-length directly. Used after writing into the raw
// storage view (e.g. reserving a header slot, or recording bytes read from
// a socket).
func (b *Buffer) SetLen(l int) {
	if l < 0 || l > len(b.data) {
		panic("buffer: length exceeds capacity")
	}
	b.len = l
}

// Clear resets the used-length to zero without touching storage.
func (b *Buffer) Clear() { b.len = 0 }

// Bytes returns a read-only view of the used region.
func (b *Buffer) Bytes() []byte { return b.data[:b.len] }

// Storage returns a read-write view of the entire backing array,
// regardless of used-length. Used for patching a reserved header and for
// receiving into the buffer from a socket.
func (b *Buffer) Storage() []byte { return b.data }

// SendView returns the slice the socket layer should write out: the used
// region, or nil if empty so the OS sees a null scatter/gather pointer
// instead of a zero-length non-nil slice.
func (b *Buffer) SendView() []byte {
	if b.len == 0 {
		return nil
	}
	return b.data[:b.len]
}

// RecvView returns the full-capacity slice the socket layer should read
// into.
func (b *Buffer) RecvView() []byte {
	return b.data
}
