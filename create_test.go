package georaster

import (
	"math"
	"testing"
)

// TestNewImage2D_AllCombinations allocates every supported (encoding,
// channels) pair and checks element count, format tag and byte size.
func TestNewImage2D_AllCombinations(t *testing.T) {
	const w, h = 5, 3
	for _, enc := range allEncodings {
		for channels := 1; channels <= 4; channels++ {
			img, ok := NewImage2D(w, h, channels, enc, Vec4{})
			if !ok {
				t.Errorf("NewImage2D(%v, %d channels) not supported", enc, channels)
				continue
			}
			if img.Len() != w*h*channels {
				t.Errorf("%v/%d: Len() = %d, want %d", enc, channels, img.Len(), w*h*channels)
			}
			wantFormat, _ := FormatFor(enc, channels)
			if img.Format() != wantFormat {
				t.Errorf("%v/%d: Format() = %v, want %v", enc, channels, img.Format(), wantFormat)
			}
			if img.Encoding() != enc {
				t.Errorf("%v/%d: Encoding() = %v, want %v", enc, channels, img.Encoding(), enc)
			}
			if img.Channels() != channels {
				t.Errorf("%v/%d: Channels() = %d, want %d", enc, channels, img.Channels(), channels)
			}
			if got := len(img.Bytes()); got != w*h*channels*enc.Size() {
				t.Errorf("%v/%d: len(Bytes()) = %d, want %d", enc, channels, got, w*h*channels*enc.Size())
			}
		}
	}
}

func TestNewImage2D_UnsupportedCombination(t *testing.T) {
	tests := []struct {
		name     string
		enc      PixelEncoding
		channels int
	}{
		{"unmodeled encoding", PixelEncoding(16), 1}, // e.g. a complex raster type
		{"zero channels", Byte, 0},
		{"five channels", Float64, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if img, ok := NewImage2D(4, 4, tt.channels, tt.enc, Vec4{}); ok || img != nil {
				t.Errorf("NewImage2D(%v, %d) = (%v, %v), want (nil, false)",
					tt.enc, tt.channels, img, ok)
			}
		})
	}
}

// TestNewImage2D_IntegerDefaults exercises the tri-state default policy for
// every integer encoding: a negative component selects the minimum
// representable value, positive the maximum, zero stays zero.
func TestNewImage2D_IntegerDefaults(t *testing.T) {
	check := func(t *testing.T, enc PixelEncoding, scale, want float64) {
		t.Helper()
		img, ok := NewImage2D(2, 2, 1, enc, Vec4{scale, scale, scale, scale})
		if !ok {
			t.Fatalf("NewImage2D(%v) not supported", enc)
		}
		var got float64
		switch a := img.(type) {
		case *Array2D[uint8]:
			got = float64(a.At(1, 1, 0))
		case *Array2D[uint16]:
			got = float64(a.At(1, 1, 0))
		case *Array2D[int16]:
			got = float64(a.At(1, 1, 0))
		case *Array2D[uint32]:
			got = float64(a.At(1, 1, 0))
		case *Array2D[int32]:
			got = float64(a.At(1, 1, 0))
		default:
			t.Fatalf("unexpected concrete type %T", img)
		}
		if got != want {
			t.Errorf("%v default for scale %v = %v, want %v", enc, scale, got, want)
		}
	}

	tests := []struct {
		enc      PixelEncoding
		min, max float64
	}{
		{Byte, 0, math.MaxUint8},
		{UInt16, 0, math.MaxUint16},
		{Int16, math.MinInt16, math.MaxInt16},
		{UInt32, 0, math.MaxUint32},
		{Int32, math.MinInt32, math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.enc.String(), func(t *testing.T) {
			check(t, tt.enc, -1, tt.min)
			check(t, tt.enc, 1, tt.max)
			check(t, tt.enc, 0, 0)
			// The sign alone selects the value; magnitude is ignored.
			check(t, tt.enc, -1e300, tt.min)
			check(t, tt.enc, 0.25, tt.max)
		})
	}
}

// TestNewImage2D_FloatDefaults verifies float encodings take the component
// value directly, with no saturation: a negative default is a negative fill,
// not the type minimum.
func TestNewImage2D_FloatDefaults(t *testing.T) {
	img, ok := NewImage2D(3, 3, 1, Float32, Vec4{2.5, 2.5, 2.5, 2.5})
	if !ok {
		t.Fatal("NewImage2D(Float32) not supported")
	}
	if got := img.(*Array2D[float32]).At(2, 2, 0); got != 2.5 {
		t.Errorf("Float32 default = %v, want 2.5", got)
	}

	img, ok = NewImage2D(3, 3, 1, Float64, Vec4{-3.25, 0, 0, 0})
	if !ok {
		t.Fatal("NewImage2D(Float64) not supported")
	}
	if got := img.(*Array2D[float64]).At(0, 0, 0); got != -3.25 {
		t.Errorf("Float64 default = %v, want -3.25", got)
	}
}

// TestNewImage2D_PerChannelDefaults verifies each channel reads its own
// component of the default vector, including channel 3 reading component 3.
func TestNewImage2D_PerChannelDefaults(t *testing.T) {
	img, ok := NewImage2D(2, 2, 4, Int16, Vec4{-1, 0, 1, -1})
	if !ok {
		t.Fatal("NewImage2D(Int16, 4 channels) not supported")
	}
	a := img.(*Array2D[int16])

	want := [4]int16{math.MinInt16, 0, math.MaxInt16, math.MinInt16}
	for c := 0; c < 4; c++ {
		if got := a.At(1, 0, c); got != want[c] {
			t.Errorf("channel %d = %d, want %d", c, got, want[c])
		}
	}
}

func TestNewImage2D_ZeroSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 7}, {7, 0}, {0, 0}} {
		img, ok := NewImage2D(dims[0], dims[1], 2, Float32, Vec4{})
		if !ok {
			t.Fatalf("NewImage2D(%d, %d) = false, want a valid empty buffer", dims[0], dims[1])
		}
		if img.Len() != 0 {
			t.Errorf("NewImage2D(%d, %d).Len() = %d, want 0", dims[0], dims[1], img.Len())
		}
		if img.Bytes() != nil {
			t.Errorf("NewImage2D(%d, %d).Bytes() = %v, want nil", dims[0], dims[1], img.Bytes())
		}
	}
}

func BenchmarkNewImage2D_RGBA8(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		img, ok := NewImage2D(1024, 1024, 4, Byte, Vec4{0, 0, 0, 1})
		if !ok {
			b.Fatal("allocation failed")
		}
		_ = img
	}
}

func BenchmarkNewImage2D_R64Float(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		img, ok := NewImage2D(1024, 1024, 1, Float64, Vec4{2.5, 0, 0, 0})
		if !ok {
			b.Fatal("allocation failed")
		}
		_ = img
	}
}
