package wire

import (
	"bytes"
	"testing"

	"github.com/bnema/wlcore/buffer"
)

func newWriter(cap int) (*Writer, *buffer.Buffer, *buffer.Buffer) {
	payload := buffer.New(cap)
	ancillary := buffer.New(512)
	return NewWriter(payload, ancillary), payload, ancillary
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{ObjID: 7, Opcode: 3, Len: 12}
	b := h.Bytes()
	got := HeaderFromWords(
		uint32(b[0])|uint32(b[1])<<8|uint32(b[2])<<16|uint32(b[3])<<24,
		uint32(b[4])|uint32(b[5])<<8|uint32(b[6])<<16|uint32(b[7])<<24,
	)
	if got != h {
		t.Fatalf("round trip = %+v, want %+v", got, h)
	}
}

func TestPrimitiveRoundTrip(t *testing.T) {
	w, payload, _ := newWriter(64)
	w.WriteUint(0xdeadbeef)
	w.WriteInt(-42)
	w.WriteFixed(FixedFromFloat64(3.5))

	r := NewReader(payload, nil)
	if got := r.ReadUint(); got != 0xdeadbeef {
		t.Fatalf("ReadUint() = %x, want deadbeef", got)
	}
	if got := r.ReadInt(); got != -42 {
		t.Fatalf("ReadInt() = %d, want -42", got)
	}
	if got := r.ReadFixed().Float64(); got != 3.5 {
		t.Fatalf("ReadFixed().Float64() = %v, want 3.5", got)
	}
}

func TestStringRoundTripAndPadding(t *testing.T) {
	w, payload, _ := newWriter(64)
	w.WriteString("wl_compositor")
	if payload.Len() != 20 { // 4 (len word) + 16 (padded "wl_compositor\0")
		t.Fatalf("encoded len = %d, want 20", payload.Len())
	}
	// length word equals ceil((len("wl_compositor")+1)/4)*4-independent count: it's len+1=14
	lenWord := payload.Bytes()[0:4]
	if lenWord[0] != 14 {
		t.Fatalf("length word = %v, want 14", lenWord)
	}
	r := NewReader(payload, nil)
	if got := r.ReadString(); got != "wl_compositor" {
		t.Fatalf("ReadString() = %q, want wl_compositor", got)
	}
	if r.Pos() != payload.Len() {
		t.Fatalf("cursor after string = %d, want %d (fully consumed)", r.Pos(), payload.Len())
	}
}

func TestStringEncodingEndsInNulAndIsPadded(t *testing.T) {
	w, payload, _ := newWriter(64)
	w.WriteString("abc")
	body := payload.Bytes()[4:]
	wantLen := ((len("abc") + 1 + 3) / 4) * 4
	if len(body) != wantLen {
		t.Fatalf("body len = %d, want %d", len(body), wantLen)
	}
	if body[len("abc")] != 0 {
		t.Fatalf("expected NUL terminator at byte %d", len("abc"))
	}
}

func TestArrayRoundTrip(t *testing.T) {
	w, payload, _ := newWriter(64)
	w.WriteArray([]byte{1, 2, 3, 4, 5})
	r := NewReader(payload, nil)
	got := r.ReadArray()
	if !bytes.Equal(got, []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("ReadArray() = %v, want [1 2 3 4 5]", got)
	}
}

func TestEmptyArrayAndString(t *testing.T) {
	w, payload, _ := newWriter(64)
	w.WriteArray(nil)
	w.WriteString("")
	r := NewReader(payload, nil)
	if got := r.ReadArray(); got != nil {
		t.Fatalf("ReadArray() = %v, want nil", got)
	}
	if got := r.ReadString(); got != "" {
		t.Fatalf("ReadString() = %q, want empty", got)
	}
}

// TestSyncRequestWireBytes checks that wl_display.sync on id 1 with a
// freshly allocated new_id of 2 produces an exact 12-byte message.
func TestSyncRequestWireBytes(t *testing.T) {
	w, payload, _ := newWriter(64)
	pos := w.ReserveHeader()
	w.WriteUint(2) // new_id
	w.PatchHeader(pos, 1, 0)

	want := []byte{0x01, 0, 0, 0, 0, 0, 0x0c, 0, 0x02, 0, 0, 0}
	if !bytes.Equal(payload.Bytes(), want) {
		t.Fatalf("sync request bytes = %v, want %v", payload.Bytes(), want)
	}
}

// TestHeaderLengthInvariant checks that the patched length equals bytes
// written since reservation, is a multiple of 4, and is >= 8.
func TestHeaderLengthInvariant(t *testing.T) {
	w, payload, _ := newWriter(64)
	pos := w.ReserveHeader()
	w.WriteUint(1)
	w.WriteUint(2)
	w.WriteUint(3)
	w.PatchHeader(pos, 9, 1)

	hdr := HeaderFromWords(
		uint32(payload.Bytes()[0])|uint32(payload.Bytes()[1])<<8|uint32(payload.Bytes()[2])<<16|uint32(payload.Bytes()[3])<<24,
		uint32(payload.Bytes()[4])|uint32(payload.Bytes()[5])<<8|uint32(payload.Bytes()[6])<<16|uint32(payload.Bytes()[7])<<24,
	)
	if int(hdr.Len) != payload.Len()-pos {
		t.Fatalf("header len = %d, want %d", hdr.Len, payload.Len()-pos)
	}
	if hdr.Len%4 != 0 {
		t.Fatalf("header len %d not a multiple of 4", hdr.Len)
	}
	if hdr.Len < 8 {
		t.Fatalf("header len %d < 8", hdr.Len)
	}
}

func TestWriteFDAppendsToAncillary(t *testing.T) {
	w, _, ancillary := newWriter(64)
	w.WriteFD(3)
	if ancillary.Len() == 0 {
		t.Fatal("expected WriteFD to append to the ancillary buffer")
	}
}
