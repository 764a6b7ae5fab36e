package landvalue

import (
	"errors"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	codec := Codec{WithCategory: true}
	cases := []struct {
		value, category uint8
		packed          uint8
	}{
		{0, 0, 0x00},
		{4, 0, 0x04},
		{0, 3, 0x30},
		{2, 1, 0x12},
		{15, 15, 0xff},
	}
	for _, tc := range cases {
		got, err := codec.Encode(tc.value, tc.category)
		if err != nil {
			t.Fatalf("Encode(%d, %d) unexpected error: %v", tc.value, tc.category, err)
		}
		if got != tc.packed {
			t.Fatalf("Encode(%d, %d) = %#x, want %#x", tc.value, tc.category, got, tc.packed)
		}
		if v := DecodeValue(got); v != tc.value {
			t.Fatalf("DecodeValue(%#x) = %d, want %d", got, v, tc.value)
		}
		if c := DecodeCategory(got); c != tc.category {
			t.Fatalf("DecodeCategory(%#x) = %d, want %d", got, c, tc.category)
		}
		if cell := Unpack(got); cell != (Cell{Value: tc.value, Category: tc.category}) {
			t.Fatalf("Unpack(%#x) = %+v", got, cell)
		}
	}
}

func TestCodecRejectsWideFields(t *testing.T) {
	codec := Codec{WithCategory: true}
	if _, err := codec.Encode(16, 0); !errors.Is(err, ErrNibbleOverflow) {
		t.Fatalf("expected ErrNibbleOverflow for value 16, got %v", err)
	}
	if _, err := codec.Encode(0, 16); !errors.Is(err, ErrNibbleOverflow) {
		t.Fatalf("expected ErrNibbleOverflow for category 16, got %v", err)
	}
}

func TestCodecWithoutCategoryIsIdentity(t *testing.T) {
	var codec Codec
	for v := uint8(0); v < 16; v++ {
		got, err := codec.Encode(v, 9)
		if err != nil {
			t.Fatalf("Encode(%d) unexpected error: %v", v, err)
		}
		if got != v {
			t.Fatalf("Encode(%d) = %d, want identity", v, got)
		}
		if p := codec.Pack(Cell{Value: v, Category: 9}); p != v {
			t.Fatalf("Pack dropped value: got %d want %d", p, v)
		}
	}
}
