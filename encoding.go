package georaster

// PixelEncoding identifies the scalar numeric type storing one channel of
// one pixel. The seven values mirror the raster data types reported by
// GDAL-style sources (GDT_Byte through GDT_Float64); complex types are not
// modeled.
type PixelEncoding uint8

const (
	// Byte is an unsigned 8-bit integer channel.
	Byte PixelEncoding = iota

	// UInt16 is an unsigned 16-bit integer channel.
	UInt16

	// Int16 is a signed 16-bit integer channel.
	Int16

	// UInt32 is an unsigned 32-bit integer channel.
	UInt32

	// Int32 is a signed 32-bit integer channel.
	Int32

	// Float32 is a 32-bit floating point channel.
	Float32

	// Float64 is a 64-bit floating point channel.
	Float64

	// encodingCount is the number of encodings (for internal tables).
	encodingCount
)

// encodingNames, encodingSizes and encodingInteger are indexed by PixelEncoding.
var (
	encodingNames   = [encodingCount]string{"Byte", "UInt16", "Int16", "UInt32", "Int32", "Float32", "Float64"}
	encodingSizes   = [encodingCount]int{1, 2, 2, 4, 4, 4, 8}
	encodingInteger = [encodingCount]bool{true, true, true, true, true, false, false}
)

// IsValid reports whether e is one of the seven supported encodings.
func (e PixelEncoding) IsValid() bool { return e < encodingCount }

// String returns the name of the encoding ("Byte", "UInt16", ...).
func (e PixelEncoding) String() string {
	if !e.IsValid() {
		return "Unknown"
	}
	return encodingNames[e]
}

// Size returns the width of one scalar of this encoding in bytes.
// It returns 0 for invalid encodings.
func (e PixelEncoding) Size() int {
	if !e.IsValid() {
		return 0
	}
	return encodingSizes[e]
}

// IsInteger reports whether the encoding is an integer type, as opposed to
// floating point. The distinction drives the default-fill policy: integer
// defaults saturate to the type's limits, float defaults cast directly.
func (e PixelEncoding) IsInteger() bool {
	if !e.IsValid() {
		return false
	}
	return encodingInteger[e]
}
