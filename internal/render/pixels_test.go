package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestFillBinaryRGBAMapsColors(t *testing.T) {
	on := color.RGBA{R: 0x6A, G: 0x66, B: 0xA3, A: 0xFF}
	off := color.RGBA{R: 0xDD, G: 0xD8, B: 0xB8, A: 0xFF}

	cells := []uint8{0, 1, 1, 0}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, on, off)

	for i, c := range cells {
		base := i * 4
		want := off
		if c != 0 {
			want = on
		}
		got := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
		if got != want {
			t.Errorf("cell %d (state %d): pixel %v, expected %v", i, c, got, want)
		}
	}
}

func TestFillBinaryRGBAIdempotent(t *testing.T) {
	on := color.White
	off := color.Black

	cells := []uint8{1, 0, 1, 1, 0, 0, 1, 0}
	first := make([]byte, 4*len(cells))
	second := make([]byte, 4*len(cells))
	fillBinaryRGBA(first, cells, on, off)
	fillBinaryRGBA(second, cells, on, off)

	if !bytes.Equal(first, second) {
		t.Fatal("two fills of the same cells produced different pixel buffers")
	}

	// Refilling a dirty buffer must fully overwrite it.
	for i := range second {
		second[i] = 0x7F
	}
	fillBinaryRGBA(second, cells, on, off)
	if !bytes.Equal(first, second) {
		t.Fatal("refill of a dirty buffer left stale pixels behind")
	}
}
