package georaster

// PixelFormat is the binary pixel-format tag carried by a buffer. It binds
// a concrete element type to a texture-style layout: scalar type, channel
// count, and whether samplers read the channels as normalized values.
//
// There is exactly one format per (encoding, channel count) pair; the
// association is fixed data, reproduced in pixelFormats below.
type PixelFormat uint8

const (
	// FormatUndefined is the zero PixelFormat; no buffer carries it.
	FormatUndefined PixelFormat = iota

	// 8-bit unsigned normalized.
	FormatR8Unorm
	FormatRG8Unorm
	FormatRGB8Unorm
	FormatRGBA8Unorm

	// 16-bit unsigned normalized.
	FormatR16Unorm
	FormatRG16Unorm
	FormatRGB16Unorm
	FormatRGBA16Unorm

	// 16-bit signed normalized.
	FormatR16Snorm
	FormatRG16Snorm
	FormatRGB16Snorm
	FormatRGBA16Snorm

	// 32-bit unsigned integer.
	FormatR32Uint
	FormatRG32Uint
	FormatRGB32Uint
	FormatRGBA32Uint

	// 32-bit signed integer.
	FormatR32Sint
	FormatRG32Sint
	FormatRGB32Sint
	FormatRGBA32Sint

	// 32-bit float.
	FormatR32Float
	FormatRG32Float
	FormatRGB32Float
	FormatRGBA32Float

	// 64-bit float.
	FormatR64Float
	FormatRG64Float
	FormatRGB64Float
	FormatRGBA64Float

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is the canonical lower-case format name, e.g. "rgb16unorm".
	Name string

	// Encoding is the scalar type of each channel.
	Encoding PixelEncoding

	// Channels is the number of scalar components per pixel (1-4).
	Channels int

	// Normalized indicates samplers read the channels as values in [0,1]
	// (or [-1,1] for signed). Integer and float formats are read as-is.
	Normalized bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatUndefined: {Name: "undefined"},

	FormatR8Unorm:    {Name: "r8unorm", Encoding: Byte, Channels: 1, Normalized: true},
	FormatRG8Unorm:   {Name: "rg8unorm", Encoding: Byte, Channels: 2, Normalized: true},
	FormatRGB8Unorm:  {Name: "rgb8unorm", Encoding: Byte, Channels: 3, Normalized: true},
	FormatRGBA8Unorm: {Name: "rgba8unorm", Encoding: Byte, Channels: 4, Normalized: true},

	FormatR16Unorm:    {Name: "r16unorm", Encoding: UInt16, Channels: 1, Normalized: true},
	FormatRG16Unorm:   {Name: "rg16unorm", Encoding: UInt16, Channels: 2, Normalized: true},
	FormatRGB16Unorm:  {Name: "rgb16unorm", Encoding: UInt16, Channels: 3, Normalized: true},
	FormatRGBA16Unorm: {Name: "rgba16unorm", Encoding: UInt16, Channels: 4, Normalized: true},

	FormatR16Snorm:    {Name: "r16snorm", Encoding: Int16, Channels: 1, Normalized: true},
	FormatRG16Snorm:   {Name: "rg16snorm", Encoding: Int16, Channels: 2, Normalized: true},
	FormatRGB16Snorm:  {Name: "rgb16snorm", Encoding: Int16, Channels: 3, Normalized: true},
	FormatRGBA16Snorm: {Name: "rgba16snorm", Encoding: Int16, Channels: 4, Normalized: true},

	FormatR32Uint:    {Name: "r32uint", Encoding: UInt32, Channels: 1},
	FormatRG32Uint:   {Name: "rg32uint", Encoding: UInt32, Channels: 2},
	FormatRGB32Uint:  {Name: "rgb32uint", Encoding: UInt32, Channels: 3},
	FormatRGBA32Uint: {Name: "rgba32uint", Encoding: UInt32, Channels: 4},

	FormatR32Sint:    {Name: "r32sint", Encoding: Int32, Channels: 1},
	FormatRG32Sint:   {Name: "rg32sint", Encoding: Int32, Channels: 2},
	FormatRGB32Sint:  {Name: "rgb32sint", Encoding: Int32, Channels: 3},
	FormatRGBA32Sint: {Name: "rgba32sint", Encoding: Int32, Channels: 4},

	FormatR32Float:    {Name: "r32float", Encoding: Float32, Channels: 1},
	FormatRG32Float:   {Name: "rg32float", Encoding: Float32, Channels: 2},
	FormatRGB32Float:  {Name: "rgb32float", Encoding: Float32, Channels: 3},
	FormatRGBA32Float: {Name: "rgba32float", Encoding: Float32, Channels: 4},

	FormatR64Float:    {Name: "r64float", Encoding: Float64, Channels: 1},
	FormatRG64Float:   {Name: "rg64float", Encoding: Float64, Channels: 2},
	FormatRGB64Float:  {Name: "rgb64float", Encoding: Float64, Channels: 3},
	FormatRGBA64Float: {Name: "rgba64float", Encoding: Float64, Channels: 4},
}

// pixelFormats is the dispatch table from (encoding, channel count) to the
// format tag, indexed by [PixelEncoding][channels-1]. It is data, not
// logic: each entry is a fixed, hand-authored association covering all 28
// supported combinations.
var pixelFormats = [encodingCount][4]PixelFormat{
	Byte:    {FormatR8Unorm, FormatRG8Unorm, FormatRGB8Unorm, FormatRGBA8Unorm},
	UInt16:  {FormatR16Unorm, FormatRG16Unorm, FormatRGB16Unorm, FormatRGBA16Unorm},
	Int16:   {FormatR16Snorm, FormatRG16Snorm, FormatRGB16Snorm, FormatRGBA16Snorm},
	UInt32:  {FormatR32Uint, FormatRG32Uint, FormatRGB32Uint, FormatRGBA32Uint},
	Int32:   {FormatR32Sint, FormatRG32Sint, FormatRGB32Sint, FormatRGBA32Sint},
	Float32: {FormatR32Float, FormatRG32Float, FormatRGB32Float, FormatRGBA32Float},
	Float64: {FormatR64Float, FormatRG64Float, FormatRGB64Float, FormatRGBA64Float},
}

// FormatFor returns the pixel format tag for an encoding and channel count.
// It reports false for combinations outside the supported 7×4 table, which
// is the only unsupported-combination signal in this package.
func FormatFor(e PixelEncoding, channels int) (PixelFormat, bool) {
	if !e.IsValid() || channels < 1 || channels > 4 {
		return FormatUndefined, false
	}
	f := pixelFormats[e][channels-1]
	return f, f != FormatUndefined
}

// IsValid reports whether f is one of the supported formats.
func (f PixelFormat) IsValid() bool { return f > FormatUndefined && f < formatCount }

// Info returns the FormatInfo for this format.
// Invalid formats return the FormatUndefined entry.
func (f PixelFormat) Info() FormatInfo {
	if f >= formatCount {
		f = FormatUndefined
	}
	return formatInfoTable[f]
}

// String returns the canonical format name, e.g. "rgba8unorm".
func (f PixelFormat) String() string { return f.Info().Name }

// Encoding returns the scalar encoding of each channel.
func (f PixelFormat) Encoding() PixelEncoding { return f.Info().Encoding }

// Channels returns the number of scalar components per pixel.
func (f PixelFormat) Channels() int { return f.Info().Channels }

// BytesPerPixel returns the storage size of one pixel in bytes.
func (f PixelFormat) BytesPerPixel() int {
	info := f.Info()
	return info.Channels * info.Encoding.Size()
}
