package georaster

import (
	"errors"
	"unsafe"

	"github.com/gogpu/georaster/internal/parallel"
)

// Common errors for buffer construction.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("georaster: invalid dimensions")

	// ErrInvalidChannels is returned when the channel count is outside 1-4.
	ErrInvalidChannels = errors.New("georaster: channel count must be 1-4")

	// ErrFormatMismatch is returned when a format tag does not describe the
	// buffer's element type and channel count.
	ErrFormatMismatch = errors.New("georaster: format does not match element type")
)

// Scalar is the set of element types a pixel channel can be stored as,
// one per [PixelEncoding].
type Scalar interface {
	~uint8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~float32 | ~float64
}

// Image is a typed 2D pixel buffer tagged with its binary pixel format.
// It is the view upload and mosaicking code works against when the element
// type is not known statically; the concrete type is always an [Array2D].
type Image interface {
	// Width and Height are the buffer dimensions in pixels.
	Width() int
	Height() int

	// Channels is the number of scalar components per pixel (1-4).
	Channels() int

	// Encoding is the scalar type of each channel.
	Encoding() PixelEncoding

	// Format is the pixel-format tag describing the element layout.
	Format() PixelFormat

	// Len is the total number of scalar elements: Width*Height*Channels.
	Len() int

	// Bytes exposes the pixel storage as raw bytes in native byte order,
	// suitable for texture upload. The slice aliases the buffer; it is nil
	// for zero-size buffers.
	Bytes() []byte
}

// Array2D is a dense 2D pixel buffer with channel-interleaved, row-major
// storage: the scalar for channel c of pixel (x,y) lives at index
// (y*width+x)*channels + c.
//
// Array2D is safe for concurrent reads; writes require external
// synchronization.
type Array2D[T Scalar] struct {
	width    int
	height   int
	channels int
	format   PixelFormat
	data     []T
}

// NewArray2D allocates a zero-filled buffer of width×height pixels with the
// given channel count, tagged with format. Zero width or height produces a
// valid, empty buffer.
//
// The format must describe T and the channel count; [FormatFor] yields the
// right tag for each supported combination.
func NewArray2D[T Scalar](width, height, channels int, format PixelFormat) (*Array2D[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if channels < 1 || channels > 4 {
		return nil, ErrInvalidChannels
	}
	var t T
	info := format.Info()
	if !format.IsValid() || info.Channels != channels || info.Encoding.Size() != int(unsafe.Sizeof(t)) {
		return nil, ErrFormatMismatch
	}

	return &Array2D[T]{
		width:    width,
		height:   height,
		channels: channels,
		format:   format,
		data:     make([]T, width*height*channels),
	}, nil
}

// Width returns the buffer width in pixels.
func (a *Array2D[T]) Width() int { return a.width }

// Height returns the buffer height in pixels.
func (a *Array2D[T]) Height() int { return a.height }

// Channels returns the number of scalar components per pixel.
func (a *Array2D[T]) Channels() int { return a.channels }

// Encoding returns the scalar encoding of each channel.
func (a *Array2D[T]) Encoding() PixelEncoding { return a.format.Encoding() }

// Format returns the pixel-format tag.
func (a *Array2D[T]) Format() PixelFormat { return a.format }

// Len returns the total number of scalar elements, Width*Height*Channels.
func (a *Array2D[T]) Len() int { return len(a.data) }

// Data returns the raw element slice, channel-interleaved and row-major.
// The slice aliases the buffer.
func (a *Array2D[T]) Data() []T { return a.data }

// Bytes implements [Image].
func (a *Array2D[T]) Bytes() []byte {
	if len(a.data) == 0 {
		return nil
	}
	var t T
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.data[0])), len(a.data)*int(unsafe.Sizeof(t)))
}

// At returns the value of channel c of the pixel at (x, y).
// Out-of-range coordinates return the zero value.
func (a *Array2D[T]) At(x, y, c int) T {
	var zero T
	if x < 0 || x >= a.width || y < 0 || y >= a.height || c < 0 || c >= a.channels {
		return zero
	}
	return a.data[(y*a.width+x)*a.channels+c]
}

// Set assigns the value of channel c of the pixel at (x, y).
// Out-of-range coordinates are silently ignored.
func (a *Array2D[T]) Set(x, y, c int, v T) {
	if x < 0 || x >= a.width || y < 0 || y >= a.height || c < 0 || c >= a.channels {
		return
	}
	a.data[(y*a.width+x)*a.channels+c] = v
}

// parallelFillThreshold is the element count above which FillPixel spreads
// rows across CPUs. Below it the goroutine overhead outweighs the copies.
const parallelFillThreshold = 1 << 16

// FillPixel sets every pixel to the given channel values. The length of
// pixel must equal the channel count; other lengths are ignored.
func (a *Array2D[T]) FillPixel(pixel []T) {
	if len(pixel) != a.channels {
		return
	}

	fillRows := func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := a.data[y*a.width*a.channels : (y+1)*a.width*a.channels]
			for x := 0; x < a.width; x++ {
				copy(row[x*a.channels:], pixel)
			}
		}
	}

	if len(a.data) >= parallelFillThreshold {
		parallel.Rows(a.height, fillRows)
		return
	}
	fillRows(0, a.height)
}
