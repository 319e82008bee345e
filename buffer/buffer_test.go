package buffer

import (
	"bytes"
	"testing"
)

func TestPushAndExtend(t *testing.T) {
	b := New(8)
	b.Push(1)
	b.Extend([]byte{2, 3, 4})
	if got, want := b.Bytes(), []byte{1, 2, 3, 4}; !bytes.Equal(got, want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
}

func TestCapacityExceededPanics(t *testing.T) {
	b := New(2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on capacity overflow")
		}
	}()
	b.Extend([]byte{1, 2, 3})
}

func TestClearResetsLen(t *testing.T) {
	b := New(4)
	b.Extend([]byte{1, 2, 3})
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", b.Len())
	}
	if len(b.Bytes()) != 0 {
		t.Fatalf("Bytes() after Clear() = %v, want empty", b.Bytes())
	}
}

func TestSendViewNilWhenEmpty(t *testing.T) {
	b := New(4)
	if v := b.SendView(); v != nil {
		t.Fatalf("SendView() on empty buffer = %v, want nil", v)
	}
	b.Push(9)
	if v := b.SendView(); len(v) != 1 {
		t.Fatalf("SendView() len = %d, want 1", len(v))
	}
}

func TestRecvViewIsFullCapacity(t *testing.T) {
	b := New(16)
	if len(b.RecvView()) != 16 {
		t.Fatalf("RecvView() len = %d, want 16", len(b.RecvView()))
	}
}

func TestSetLenValidatesBounds(t *testing.T) {
	b := New(4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range SetLen")
		}
	}()
	b.SetLen(5)
}
