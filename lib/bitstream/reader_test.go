package bitstream

import "testing"

func TestReadBit(t *testing.T) {
	r := NewReader([]byte{0xaa})
	want := []int{1, 0, 1, 0, 1, 0, 1, 0}
	for i, w := range want {
		got, err := r.ReadBit()
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if got != w {
			t.Errorf("bit %d: got %d, want %d", i, got, w)
		}
	}
}

func TestReadU64BitsRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)
	if err := w.Seek(3); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteU64Bits(0x1A2B, 13); err != nil {
		t.Fatal(err)
	}

	r := NewReader(buf)
	if err := r.Seek(3); err != nil {
		t.Fatal(err)
	}
	got, err := r.ReadU64Bits(13)
	if err != nil {
		t.Fatal(err)
	}
	if want := uint64(0x1A2B) & ((1 << 13) - 1); got != want {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestReadU16Unaligned(t *testing.T) {
	// Writer and reader must agree on the unaligned shift/OR split.
	buf := make([]byte, 3)
	w := NewWriter(buf)
	if err := w.WriteU64Bits(0x1, 4); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteU16(0xBEEF); err != nil {
		t.Fatal(err)
	}

	r := NewReader(buf)
	if err := r.Seek(4); err != nil {
		t.Fatal(err)
	}
	got, err := r.ReadU16()
	if err != nil {
		t.Fatal(err)
	}
	if got != 0xBEEF {
		t.Errorf("got %#x, want 0xbeef", got)
	}
}

func TestReadShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x00})
	if _, err := r.ReadU16(); err == nil {
		t.Fatal("expected error reading past end of buffer")
	}
}

func TestReadBytesUnaligned(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)
	if err := w.WriteU64Bits(0x3, 4); err != nil {
		t.Fatal(err)
	}
	src := []byte{0x12, 0x34}
	if err := w.WriteBytes(src); err != nil {
		t.Fatal(err)
	}

	r := NewReader(buf)
	if err := r.Seek(4); err != nil {
		t.Fatal(err)
	}
	got, err := r.ReadBytes(2)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != src[0] || got[1] != src[1] {
		t.Errorf("got %x, want %x", got, src)
	}
}
