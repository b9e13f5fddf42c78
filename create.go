package georaster

import "math"

// Vec4 is a 4-component double-precision vector. Component i supplies the
// default fill value for channel i of a newly created buffer.
type Vec4 [4]float64

// NewImage2D allocates a width×height buffer for the given pixel encoding
// and channel count, tagged with the matching [PixelFormat] and pre-filled
// with per-channel defaults derived from def.
//
// The default for an integer encoding is a tri-state selected by the sign
// of the corresponding component: negative selects the type's minimum,
// positive its maximum, and zero selects zero. The magnitude is not
// interpreted. For float encodings the component is cast directly.
//
// Zero width or height yields a valid, empty buffer. The only failure mode
// is an unsupported (encoding, channels) combination, reported as
// (nil, false); populating the buffer with real pixel data is the caller's
// job.
func NewImage2D(width, height, channels int, encoding PixelEncoding, def Vec4) (Image, bool) {
	format, ok := FormatFor(encoding, channels)
	if !ok {
		Logger().Debug("unsupported buffer combination",
			"encoding", encoding, "channels", channels)
		return nil, false
	}

	switch encoding {
	case Byte:
		return newFilled[uint8](width, height, channels, format, def)
	case UInt16:
		return newFilled[uint16](width, height, channels, format, def)
	case Int16:
		return newFilled[int16](width, height, channels, format, def)
	case UInt32:
		return newFilled[uint32](width, height, channels, format, def)
	case Int32:
		return newFilled[int32](width, height, channels, format, def)
	case Float32:
		return newFilled[float32](width, height, channels, format, def)
	case Float64:
		return newFilled[float64](width, height, channels, format, def)
	}
	return nil, false
}

// newFilled allocates the typed buffer and fills it with the per-channel
// defaults for def[0..channels-1].
func newFilled[T Scalar](width, height, channels int, format PixelFormat, def Vec4) (Image, bool) {
	a, err := NewArray2D[T](width, height, channels, format)
	if err != nil {
		return nil, false
	}

	var pixel [4]T
	for c := 0; c < channels; c++ {
		pixel[c] = scalarDefault[T](def[c])
	}
	a.FillPixel(pixel[:channels])

	Logger().Debug("allocated buffer",
		"format", format, "width", width, "height", height)
	return a, true
}

// scalarDefault derives the fill value for one channel from its component
// of the default vector. Integer types treat the sign of scale as a
// tri-state selector over their representable range; float types take the
// value as-is.
func scalarDefault[T Scalar](scale float64) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = integerDefault[uint8](scale, 0, math.MaxUint8)
	case *uint16:
		*p = integerDefault[uint16](scale, 0, math.MaxUint16)
	case *int16:
		*p = integerDefault[int16](scale, math.MinInt16, math.MaxInt16)
	case *uint32:
		*p = integerDefault[uint32](scale, 0, math.MaxUint32)
	case *int32:
		*p = integerDefault[int32](scale, math.MinInt32, math.MaxInt32)
	case *float32:
		*p = float32(scale)
	case *float64:
		*p = scale
	}
	return v
}

// integerDefault maps the sign of scale onto the representable range of an
// integer type: negative to min, positive to max, zero to zero.
func integerDefault[T Scalar](scale float64, min, max T) T {
	switch {
	case scale < 0:
		return min
	case scale > 0:
		return max
	}
	return 0
}
