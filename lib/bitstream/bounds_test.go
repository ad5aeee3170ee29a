package bitstream

import (
	"bytes"
	"testing"
)

func TestSaveRestoreByteAligned(t *testing.T) {
	buf := []byte{0xff, 0xff}
	w := NewWriter(buf)
	bounds, err := w.Save(0, 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteU8(0x00); err != nil {
		t.Fatal(err)
	}
	bounds.Restore()
	want := []byte{0x00, 0xff}
	if !bytes.Equal(buf, want) {
		t.Errorf("got %x, want %x", buf, want)
	}
}

func TestSaveRestoreUnaligned(t *testing.T) {
	buf := []byte{0xff, 0xff, 0xff}
	w := NewWriter(buf)
	if err := w.Seek(4); err != nil {
		t.Fatal(err)
	}
	bounds, err := w.Save(4, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteU64Bits(0, 16); err != nil {
		t.Fatal(err)
	}
	bounds.Restore()
	want := []byte{0xf0, 0x00, 0x0f}
	if !bytes.Equal(buf, want) {
		t.Errorf("got %x, want %x", buf, want)
	}
}

func TestSaveErrorsOffEnd(t *testing.T) {
	buf := []byte{0xff}
	w := NewWriter(buf)
	if _, err := w.Save(4, 8); err == nil {
		t.Fatal("expected error: range runs past end of buffer")
	}
}

func TestRestoreZeroValueIsNoop(t *testing.T) {
	var b Bounds
	b.Restore() // must not panic
}
