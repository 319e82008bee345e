// Package wire implements the Wayland wire format: message headers,
// fixed-width integers, fixed-point numbers, length-prefixed strings and
// byte arrays, and the out-of-band file-descriptor channel.
//
// Everything here is little-endian, 32-bit aligned, matching every
// platform this library targets. A Writer appends to an outbound
// buffer.Buffer; a Reader consumes from an inbound one at an advancing
// cursor. Both enforce the word-padding invariant from spec section 4.2:
// strings and arrays round their declared length up to a multiple of 4
// for on-wire storage, and the reader advances its cursor by the same
// padded amount.
package wire

import (
	"encoding/binary"
	"math"

	"golang.org/x/sys/unix"

	"github.com/bnema/wlcore/buffer"
)

// Header is a Wayland message header: sender object id, opcode, and total
// message length including the 8-byte header itself.
type Header struct {
	ObjID  uint32
	Opcode uint16
	Len    uint16
}

// MaxMessageLen is the largest value a Wayland message header can encode.
const MaxMessageLen = 65532

// HeaderFromWords decodes a header from its two wire words.
func HeaderFromWords(word1, word2 uint32) Header {
	return Header{
		ObjID:  word1,
		Opcode: uint16(word2 & 0xffff),
		Len:    uint16(word2 >> 16),
	}
}

// Bytes encodes the header into its 8-byte wire form.
func (h Header) Bytes() [8]byte {
	var out [8]byte
	binary.LittleEndian.PutUint32(out[0:4], h.ObjID)
	binary.LittleEndian.PutUint32(out[4:8], uint32(h.Len)<<16|uint32(h.Opcode))
	return out
}

// Fixed is a signed 24.8 fixed-point number, carried on the wire as a u32
// word and reinterpreted at the API layer.
type Fixed int32

// Float64 converts a Fixed to a float64.
func (f Fixed) Float64() float64 { return float64(f) / 256.0 }

// FixedFromFloat64 converts a float64 to the nearest Fixed.
func FixedFromFloat64(v float64) Fixed { return Fixed(math.Round(v * 256.0)) }

func align4(n int) int { return (n + 3) &^ 3 }

// Writer appends request payload bytes to an outbound buffer and,
// separately, file-descriptor control messages to an outbound ancillary
// buffer.
type Writer struct {
	payload   *buffer.Buffer
	ancillary *buffer.Buffer
}

// NewWriter wraps the outbound payload and ancillary buffers.
func NewWriter(payload, ancillary *buffer.Buffer) *Writer {
	return &Writer{payload: payload, ancillary: ancillary}
}

// ReserveHeader reserves 8 bytes for a message header and returns the
// position to later pass to PatchHeader.
func (w *Writer) ReserveHeader() int {
	pos := w.payload.Len()
	w.payload.SetLen(pos + 8)
	return pos
}

// PatchHeader fills in the header reserved at pos now that every field
// has been written: the length covers everything written since pos,
// including the header itself.
func (w *Writer) PatchHeader(pos int, objID uint32, opcode uint16) {
	length := w.payload.Len() - pos
	hdr := Header{ObjID: objID, Opcode: opcode, Len: uint16(length)}
	b := hdr.Bytes()
	copy(w.payload.Storage()[pos:pos+8], b[:])
}

// WriteUint appends an unsigned 32-bit integer.
func (w *Writer) WriteUint(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.payload.Extend(b[:])
}

// WriteInt appends a signed 32-bit integer.
func (w *Writer) WriteInt(v int32) { w.WriteUint(uint32(v)) }

// WriteFixed appends a 24.8 fixed-point number.
func (w *Writer) WriteFixed(f Fixed) { w.WriteUint(uint32(f)) }

// WriteString appends a length-prefixed, NUL-terminated, 4-byte padded
// UTF-8 string. The length word counts the trailing NUL.
func (w *Writer) WriteString(s string) {
	n := len(s) + 1
	padded := align4(n)
	w.WriteUint(uint32(n))
	w.payload.Extend([]byte(s))
	pad := make([]byte, padded-len(s))
	w.payload.Extend(pad)
}

// WriteArray appends a length-prefixed, 4-byte padded byte array.
func (w *Writer) WriteArray(data []byte) {
	padded := align4(len(data))
	w.WriteUint(uint32(len(data)))
	w.payload.Extend(data)
	if pad := padded - len(data); pad > 0 {
		w.payload.Extend(make([]byte, pad))
	}
}

// WriteFD appends a file descriptor to the outbound ancillary buffer as
// its own SCM_RIGHTS control message carrying exactly one fd, pointer-
// aligned the way the kernel's CMSG_SPACE macro requires. Multiple
// fd-bearing fields each get their own control message; the socket layer
// sends them all in one sendmsg call, so the kernel may coalesce them,
// what matters is they appear in this order within the ancillary buffer.
func (w *Writer) WriteFD(fd int) {
	rights := unix.UnixRights(fd)
	w.ancillary.Extend(rights)
}

// Reader consumes a decoded message's payload from an inbound buffer at
// an advancing cursor, and pops file descriptors from a FIFO populated by
// the socket layer's ancillary-data parse.
type Reader struct {
	payload *buffer.Buffer
	pos     int
	fds     []int
	fdPos   int
}

// NewReader wraps the inbound payload buffer and the fd FIFO for this
// receive batch.
func NewReader(payload *buffer.Buffer, fds []int) *Reader {
	return &Reader{payload: payload, fds: fds}
}

// Pos returns the current read cursor.
func (r *Reader) Pos() int { return r.pos }

// Remaining reports whether the payload has more bytes to dispatch.
func (r *Reader) Remaining() bool { return r.pos < r.payload.Len() }

// ReadHeader reads the next 8-byte message header.
func (r *Reader) ReadHeader() Header {
	w1 := r.ReadUint()
	w2 := r.ReadUint()
	return HeaderFromWords(w1, w2)
}

// Skip advances the cursor to the given absolute offset, used to jump
// past an unknown opcode's payload using the header's declared length.
func (r *Reader) Skip(to int) { r.pos = to }

// ReadUint reads an unsigned 32-bit integer.
func (r *Reader) ReadUint() uint32 {
	b := r.payload.Bytes()[r.pos : r.pos+4]
	r.pos += 4
	return binary.LittleEndian.Uint32(b)
}

// ReadInt reads a signed 32-bit integer.
func (r *Reader) ReadInt() int32 { return int32(r.ReadUint()) }

// ReadFixed reads a 24.8 fixed-point number.
func (r *Reader) ReadFixed() Fixed { return Fixed(r.ReadUint()) }

// ReadString reads a length-prefixed, NUL-terminated, 4-byte padded
// string, returning it without the trailing NUL.
func (r *Reader) ReadString() string {
	n := int(r.ReadUint())
	if n == 0 {
		return ""
	}
	data := r.payload.Bytes()[r.pos : r.pos+n]
	r.pos += align4(n)
	// n counts the trailing NUL.
	return string(data[:n-1])
}

// ReadArray reads a length-prefixed, 4-byte padded raw byte array.
func (r *Reader) ReadArray() []byte {
	n := int(r.ReadUint())
	if n == 0 {
		return nil
	}
	data := make([]byte, n)
	copy(data, r.payload.Bytes()[r.pos:r.pos+n])
	r.pos += align4(n)
	return data
}

// ReadFD pops the next file descriptor from the FIFO, in the order the
// wire specifies fd-typed fields.
func (r *Reader) ReadFD() int {
	if r.fdPos >= len(r.fds) {
		panic("wire: fd queue exhausted: event declares more fds than were received")
	}
	fd := r.fds[r.fdPos]
	r.fdPos++
	return fd
}
