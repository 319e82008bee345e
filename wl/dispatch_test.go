package wl

import (
	"testing"

	"github.com/bnema/wlcore/buffer"
	"github.com/bnema/wlcore/wire"
)

// newDispatchFixture builds a Connection whose inbound payload buffer and
// reader are preloaded from build, which appends raw messages with a
// wire.Writer of its own. That writer's ancillary buffer becomes the
// connection's inbound ancillary buffer, but the reader gets no fds,
// since these tests never exercise fd-bearing events via this path.
func newDispatchFixture(t *testing.T, build func(w *wire.Writer)) (*Connection, *buffer.Buffer) {
	t.Helper()
	payload := buffer.New(4096)
	ancillary := buffer.New(64)
	w := wire.NewWriter(payload, ancillary)
	build(w)

	c := &Connection{
		reg:          newRegistry(),
		inPayload:    payload,
		inAncillary:  ancillary,
		outPayload:   buffer.New(4096),
		outAncillary: buffer.New(64),
	}
	c.reader = wire.NewReader(payload, nil)
	return c, payload
}

type recordingHandler struct {
	NoopHandler
	globals []WlRegistryGlobalEvent
	pings   []XdgWmBasePingEvent
}

func (h *recordingHandler) OnWlRegistryGlobal(e WlRegistryGlobalEvent, conn *Connection) {
	h.globals = append(h.globals, e)
}

func (h *recordingHandler) OnXdgWmBasePing(e XdgWmBasePingEvent, conn *Connection) {
	h.pings = append(h.pings, e)
}

func TestDispatchDrainsAllMessages(t *testing.T) {
	c, _ := newDispatchFixture(t, func(w *wire.Writer) {
		pos := w.ReserveHeader()
		w.WriteUint(1) // name
		w.WriteString("wl_compositor")
		w.WriteUint(4) // version
		w.PatchHeader(pos, 2, 0)

		pos = w.ReserveHeader()
		w.WriteUint(2)
		w.WriteString("wl_shm")
		w.WriteUint(1)
		w.PatchHeader(pos, 2, 0)
	})
	regID := c.allocate(TagWlRegistry)
	if regID != 2 {
		t.Fatalf("allocated registry id = %d, want 2", regID)
	}

	h := &recordingHandler{}
	c.DispatchEvents(h)

	if len(h.globals) != 2 {
		t.Fatalf("got %d globals, want 2", len(h.globals))
	}
	if h.globals[0].Interface != "wl_compositor" || h.globals[1].Interface != "wl_shm" {
		t.Fatalf("unexpected global order: %+v", h.globals)
	}
	if c.reader.Remaining() {
		t.Fatal("dispatcher should have drained the buffer")
	}
}

func TestDispatchSkipsUnknownOpcodeThenContinues(t *testing.T) {
	c, _ := newDispatchFixture(t, func(w *wire.Writer) {
		// registry opcode 99 does not exist; its declared length must
		// still let the dispatcher skip past it cleanly.
		pos := w.ReserveHeader()
		w.WriteUint(0xdeadbeef)
		w.WriteUint(0xcafebabe)
		w.PatchHeader(pos, 2, 99)

		pos = w.ReserveHeader()
		w.WriteUint(3)
		w.WriteString("wl_seat")
		w.WriteUint(7)
		w.PatchHeader(pos, 2, 0)
	})
	c.allocate(TagWlRegistry)

	h := &recordingHandler{}
	c.DispatchEvents(h)

	if len(h.globals) != 1 {
		t.Fatalf("got %d globals, want 1 (unknown opcode should be skipped, not misparsed)", len(h.globals))
	}
	if h.globals[0].Interface != "wl_seat" {
		t.Fatalf("global = %+v, want wl_seat", h.globals[0])
	}
}

func TestDispatchPanicsOnEventForNullObject(t *testing.T) {
	c, _ := newDispatchFixture(t, func(w *wire.Writer) {
		pos := w.ReserveHeader()
		w.WriteUint(1)
		w.PatchHeader(pos, 0, 0) // targets id 0, which is permanently Null
	})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic dispatching an event targeting object id 0")
		}
	}()
	c.DispatchEvents(&recordingHandler{})
}

func TestDispatchInterceptsDeleteID(t *testing.T) {
	c, _ := newDispatchFixture(t, func(w *wire.Writer) {
		pos := w.ReserveHeader()
		w.WriteUint(7)
		w.PatchHeader(pos, 1, 1) // wl_display.delete_id(7)
	})
	for i := 0; i < 6; i++ {
		c.allocate(TagWlSurface) // ids 2..7
	}

	h := &deleteIDRecorder{}
	c.DispatchEvents(h)
	if !h.called || h.id != 7 {
		t.Fatalf("delete_id handler state = %+v", h)
	}
	if _, err := c.lookup(7); err == nil {
		t.Fatal("id 7 should be freed after dispatch")
	}
}

func TestDispatchPingPongRoundTrip(t *testing.T) {
	c, _ := newDispatchFixture(t, func(w *wire.Writer) {
		pos := w.ReserveHeader()
		w.WriteUint(42)
		w.PatchHeader(pos, 2, 0) // xdg_wm_base.ping(42)
	})
	baseID := c.allocate(TagXdgWmBase)
	if baseID != 2 {
		t.Fatalf("base id = %d, want 2", baseID)
	}

	h := &recordingHandler{}
	c.DispatchEvents(h)
	if len(h.pings) != 1 || h.pings[0].Serial != 42 {
		t.Fatalf("pings = %+v, want one ping with serial 42", h.pings)
	}

	base := XdgWmBase{id: baseID, conn: c}
	base.Pong(42)
	if c.outPayload.Len() == 0 {
		t.Fatal("Pong should have queued bytes onto the outbound payload buffer")
	}
}
