package wl

import (
	"net"
	"os"
	"testing"
)

func socketPair(t *testing.T) (*net.UnixConn, *net.UnixConn) {
	t.Helper()
	a, b, err := socketpair()
	if err != nil {
		t.Fatalf("socketpair: %v", err)
	}
	return a, b
}

func TestSendRecvRoundTrip(t *testing.T) {
	client, server := socketPair(t)
	defer client.Close()
	defer server.Close()

	c := NewConnection(client)
	d := c.GetDisplay()
	d.Sync()
	c.Send()

	buf := make([]byte, 64)
	n, err := server.Read(buf)
	if err != nil {
		t.Fatalf("server read: %v", err)
	}
	want := []byte{0x01, 0, 0, 0, 0, 0, 0x0c, 0, 0x02, 0, 0, 0}
	if n != len(want) {
		t.Fatalf("server read %d bytes, want %d", n, len(want))
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %x, want %x", i, buf[i], want[i])
		}
	}
}

func TestRecvFeedsDispatcher(t *testing.T) {
	client, server := socketPair(t)
	defer client.Close()
	defer server.Close()

	// server sends wl_display.delete_id(id=5) to the client.
	msg := []byte{0x01, 0, 0, 0, 0x01, 0, 0x0c, 0, 0x05, 0, 0, 0}
	if _, err := server.Write(msg); err != nil {
		t.Fatalf("server write: %v", err)
	}

	c := NewConnection(client)
	c.allocate(TagWlSurface) // occupies id 2
	c.allocate(TagWlSurface) // id 3
	c.allocate(TagWlSurface) // id 4
	c.allocate(TagWlSurface) // id 5, so delete_id(5) targets a live slot
	c.Recv()

	h := &deleteIDRecorder{}
	c.DispatchEvents(h)
	if !h.called {
		t.Fatal("expected OnWlDisplayDeleteID to be called")
	}
	if h.id != 5 {
		t.Fatalf("deleted id = %d, want 5", h.id)
	}
	if _, err := c.lookup(5); err == nil {
		t.Fatal("id 5 should have been freed by dispatch")
	}
}

type deleteIDRecorder struct {
	NoopHandler
	called bool
	id     uint32
}

func (d *deleteIDRecorder) OnWlDisplayDeleteID(e WlDisplayDeleteIdEvent, conn *Connection) {
	d.called = true
	d.id = e.ID
}

func TestRecvPassesFDThroughAncillary(t *testing.T) {
	client, server := socketPair(t)
	defer client.Close()
	defer server.Close()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	rights := sendmsgWithFD(t, server, int(w.Fd()))
	_ = rights

	c := NewConnection(client)
	c.Recv()
	if len(c.fds) != 1 {
		t.Fatalf("received %d fds, want 1", len(c.fds))
	}
}
