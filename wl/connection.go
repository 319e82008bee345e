package wl

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"

	"github.com/bnema/wlcore/buffer"
	"github.com/bnema/wlcore/wire"
)

// Buffer capacities from spec section 4.1: payload buffers are at least
// 16 KiB, ancillary buffers at least 512 bytes.
const (
	payloadBufferCap   = 16 * 1024
	ancillaryBufferCap = 512
)

// Connection is a single-threaded, cooperative Wayland client connection:
// the composition of the byte buffers, wire codec, object registry,
// socket I/O, and dispatcher described in the design. It owns one
// connected Unix-domain stream socket and is not internally synchronized:
// callers needing concurrent access must wrap it in their own mutex.
type Connection struct {
	sock *net.UnixConn
	reg  *registry

	outPayload   *buffer.Buffer
	outAncillary *buffer.Buffer
	inPayload    *buffer.Buffer
	inAncillary  *buffer.Buffer
	fds          []int

	reader *wire.Reader
}

// NewConnection adopts an already-connected Unix-domain stream socket as
// a Wayland connection. Resolving WAYLAND_DISPLAY/XDG_RUNTIME_DIR into
// that socket is an external collaborator's job (internal/client does
// it), not this core's.
func NewConnection(sock *net.UnixConn) *Connection {
	c := &Connection{
		sock:         sock,
		reg:          newRegistry(),
		outPayload:   buffer.New(payloadBufferCap),
		outAncillary: buffer.New(ancillaryBufferCap),
		inPayload:    buffer.New(payloadBufferCap),
		inAncillary:  buffer.New(ancillaryBufferCap),
	}
	return c
}

// GetDisplay returns the display handle, always object id 1.
func (c *Connection) GetDisplay() Display {
	return Display{id: 1, conn: c}
}

// UpdateObject overwrites the tag stored at id, requiring the new tag be
// the same kind of object as whatever currently occupies the slot.
func (c *Connection) UpdateObject(id uint32, tag Tag) error {
	return c.reg.replace(id, tag)
}

// DeleteObject frees id's registry slot, making the id available for
// reuse. Ordinarily only the library's own wl_display.delete_id
// interception calls this.
func (c *Connection) DeleteObject(id uint32) {
	c.reg.delete(id)
}

func (c *Connection) allocate(tag Tag) uint32 { return c.reg.allocate(tag) }

func (c *Connection) lookup(id uint32) (Tag, error) { return c.reg.lookup(id) }

func (c *Connection) writer() *wire.Writer {
	return wire.NewWriter(c.outPayload, c.outAncillary)
}

// Send drains the outbound payload buffer with a single scatter/gather
// send carrying any queued ancillary file descriptors. A short write is
// fatal: the protocol's message granularity doesn't tolerate partial
// writes on a stream socket carrying framed messages.
func (c *Connection) Send() {
	if c.outPayload.Len() == 0 {
		return
	}

	rc, err := c.sock.SyscallConn()
	if err != nil {
		panic(fmt.Errorf("wl: send: %w", err))
	}

	var n int
	var sendErr error
	ctlErr := rc.Write(func(fd uintptr) bool {
		n, sendErr = unix.Sendmsg(int(fd), c.outPayload.SendView(), c.outAncillary.SendView(), nil, 0)
		return sendErr != unix.EAGAIN
	})
	if ctlErr != nil {
		panic(fmt.Errorf("wl: send: %w", ctlErr))
	}
	if sendErr != nil {
		panic(fmt.Errorf("wl: send: %w", sendErr))
	}
	if n != c.outPayload.Len() {
		panic(fmt.Errorf("wl: short send: wrote %d of %d bytes", n, c.outPayload.Len()))
	}

	c.outPayload.Clear()
	c.outAncillary.Clear()
}

// Recv clears the inbound buffers and the fd FIFO, then issues a single
// scatter/gather receive. Truncation of either the payload or the
// control-message channel is fatal, as is a non-word-aligned byte count.
func (c *Connection) Recv() {
	c.inPayload.Clear()
	c.inAncillary.Clear()
	c.fds = c.fds[:0]

	rc, err := c.sock.SyscallConn()
	if err != nil {
		panic(fmt.Errorf("wl: recv: %w", err))
	}

	var n, oobn, flags int
	var recvErr error
	ctlErr := rc.Read(func(fd uintptr) bool {
		n, oobn, flags, _, recvErr = unix.Recvmsg(int(fd), c.inPayload.RecvView(), c.inAncillary.RecvView(), 0)
		return recvErr != unix.EAGAIN
	})
	if ctlErr != nil {
		panic(fmt.Errorf("wl: recv: %w", ctlErr))
	}
	if recvErr != nil {
		panic(fmt.Errorf("wl: recv: %w", recvErr))
	}
	if n == len(c.inPayload.RecvView()) {
		panic("wl: recv: payload truncated")
	}
	if flags&unix.MSG_CTRUNC != 0 {
		panic("wl: recv: control data truncated")
	}
	if n%4 != 0 {
		panic(fmt.Errorf("wl: recv: payload length %d not a multiple of 4", n))
	}

	c.inPayload.SetLen(n)
	c.inAncillary.SetLen(oobn)
	c.collectFDs()

	c.reader = wire.NewReader(c.inPayload, c.fds)
}

// collectFDs walks the received ancillary buffer, appending every
// SCM_RIGHTS payload's file descriptors to the connection's fd FIFO in
// arrival order, the way a receiver must when several fd-bearing
// messages were coalesced into one control-message block.
func (c *Connection) collectFDs() {
	msgs, err := unix.ParseSocketControlMessage(c.inAncillary.Bytes())
	if err != nil {
		panic(fmt.Errorf("wl: recv: parsing control messages: %w", err))
	}
	for _, msg := range msgs {
		if msg.Header.Level != unix.SOL_SOCKET || msg.Header.Type != unix.SCM_RIGHTS {
			continue
		}
		fds, err := unix.ParseUnixRights(&msg)
		if err != nil {
			panic(fmt.Errorf("wl: recv: parsing SCM_RIGHTS: %w", err))
		}
		c.fds = append(c.fds, fds...)
	}
}
