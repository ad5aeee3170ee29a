package field

import (
	"errors"
	"testing"

	"github.com/go-bitstruct/bitstruct/lib/bitstream"
)

func TestNewRejectsUnknownKind(t *testing.T) {
	if _, err := New('x', 8); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("got %v, want ErrUnknownKind", err)
	}
}

func TestNewRejectsZeroWidth(t *testing.T) {
	if _, err := New('u', 0); !errors.Is(err, ErrZeroWidth) {
		t.Fatalf("got %v, want ErrZeroWidth", err)
	}
}

func TestNewRejectsBadWidth(t *testing.T) {
	cases := []struct {
		kind  byte
		width int
	}{
		{'u', 65},
		{'s', 65},
		{'b', 65},
		{'f', 33},
		{'t', 12},
		{'r', 3},
	}
	for _, c := range cases {
		if _, err := New(c.kind, c.width); !errors.Is(err, ErrBadWidth) {
			t.Errorf("%s%d: got %v, want ErrBadWidth", string(c.kind), c.width, err)
		}
	}
}

func TestSignedRangeEnforcement(t *testing.T) {
	f, err := New('s', 4)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 1)

	w := bitstream.NewWriter(buf)
	if err := f.Pack(w, int64(-8)); err != nil {
		t.Errorf("min legal value -8 should pack: %v", err)
	}
	w = bitstream.NewWriter(buf)
	if err := f.Pack(w, int64(7)); err != nil {
		t.Errorf("max legal value 7 should pack: %v", err)
	}
	w = bitstream.NewWriter(buf)
	if err := f.Pack(w, int64(-9)); !errors.Is(err, ErrRange) {
		t.Errorf("-9 should be a range error, got %v", err)
	}
	w = bitstream.NewWriter(buf)
	if err := f.Pack(w, int64(8)); !errors.Is(err, ErrRange) {
		t.Errorf("8 should be a range error, got %v", err)
	}
}

func TestUnsignedRangeEnforcement(t *testing.T) {
	f, err := New('u', 4)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 1)

	w := bitstream.NewWriter(buf)
	if err := f.Pack(w, uint64(15)); err != nil {
		t.Errorf("15 should pack into u4: %v", err)
	}
	w = bitstream.NewWriter(buf)
	if err := f.Pack(w, uint64(16)); !errors.Is(err, ErrRange) {
		t.Errorf("16 should be a range error for u4, got %v", err)
	}
}

func TestSignedRoundTrip(t *testing.T) {
	f, err := New('s', 12)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 2)
	w := bitstream.NewWriter(buf)
	if err := f.Pack(w, int64(-1234)); err != nil {
		t.Fatal(err)
	}
	r := bitstream.NewReader(buf)
	v, err := f.Unpack(r)
	if err != nil {
		t.Fatal(err)
	}
	if v.(int64) != -1234 {
		t.Errorf("got %v, want -1234", v)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	f, err := New('b', 1)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 1)
	w := bitstream.NewWriter(buf)
	if err := f.Pack(w, true); err != nil {
		t.Fatal(err)
	}
	r := bitstream.NewReader(buf)
	v, err := f.Unpack(r)
	if err != nil {
		t.Fatal(err)
	}
	if v != true {
		t.Errorf("got %v, want true", v)
	}
}

func TestTextShortIsError(t *testing.T) {
	f, err := New('t', 32)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 4)
	w := bitstream.NewWriter(buf)
	if err := f.Pack(w, "ab"); !errors.Is(err, ErrShort) {
		t.Fatalf("got %v, want ErrShort", err)
	}
}

func TestTextTruncatesLongValue(t *testing.T) {
	f, err := New('t', 16)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 2)
	w := bitstream.NewWriter(buf)
	if err := f.Pack(w, "hello"); err != nil {
		t.Fatal(err)
	}
	r := bitstream.NewReader(buf)
	v, err := f.Unpack(r)
	if err != nil {
		t.Fatal(err)
	}
	if v != "he" {
		t.Errorf("got %q, want %q", v, "he")
	}
}

func TestPadEmitsConstantBits(t *testing.T) {
	zero, err := New('p', 4)
	if err != nil {
		t.Fatal(err)
	}
	one, err := New('P', 4)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 1)
	w := bitstream.NewWriter(buf)
	if err := one.Pack(w, nil); err != nil {
		t.Fatal(err)
	}
	u, err := New('u', 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := u.Pack(w, uint64(5)); err != nil {
		t.Fatal(err)
	}
	if buf[0] != 0xF5 {
		t.Errorf("got %#x, want 0xf5", buf[0])
	}
	_ = zero
}

func TestFloat32RoundTrip(t *testing.T) {
	f, err := New('f', 32)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 4)
	w := bitstream.NewWriter(buf)
	if err := f.Pack(w, 3.5); err != nil {
		t.Fatal(err)
	}
	r := bitstream.NewReader(buf)
	v, err := f.Unpack(r)
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != 3.5 {
		t.Errorf("got %v, want 3.5", v)
	}
}

func TestFloat16RoundTrip(t *testing.T) {
	f, err := New('f', 16)
	if err != nil {
		t.Fatal(err)
	}
	cases := []float64{0, 1, -1, 0.5, 2, 65504, -65504}
	for _, want := range cases {
		buf := make([]byte, 2)
		w := bitstream.NewWriter(buf)
		if err := f.Pack(w, want); err != nil {
			t.Fatalf("pack %v: %v", want, err)
		}
		r := bitstream.NewReader(buf)
		v, err := f.Unpack(r)
		if err != nil {
			t.Fatalf("unpack %v: %v", want, err)
		}
		if v.(float64) != want {
			t.Errorf("got %v, want %v", v, want)
		}
	}
}

func TestFloat16Subnormal(t *testing.T) {
	f, err := New('f', 16)
	if err != nil {
		t.Fatal(err)
	}
	// Smallest positive subnormal: 2^-24.
	want := 0x1p-24
	buf := make([]byte, 2)
	w := bitstream.NewWriter(buf)
	if err := f.Pack(w, want); err != nil {
		t.Fatal(err)
	}
	r := bitstream.NewReader(buf)
	v, err := f.Unpack(r)
	if err != nil {
		t.Fatal(err)
	}
	if v.(float64) != want {
		t.Errorf("got %v, want %v", v, want)
	}
}
