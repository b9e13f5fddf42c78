package georaster

import "github.com/gogpu/gputypes"

// GPUFormat returns the WebGPU texture format equivalent to a pixel format,
// for buffers destined for texture upload.
//
// Not every raster format has a core WebGPU counterpart: three-channel
// layouts, 16-bit normalized and 64-bit float formats are not uploadable
// and report (TextureFormatUndefined, false). Callers widen or convert
// those before upload.
func GPUFormat(f PixelFormat) (gputypes.TextureFormat, bool) {
	switch f {
	case FormatR8Unorm:
		return gputypes.TextureFormatR8Unorm, true
	case FormatRG8Unorm:
		return gputypes.TextureFormatRG8Unorm, true
	case FormatRGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm, true
	case FormatR32Uint:
		return gputypes.TextureFormatR32Uint, true
	case FormatRG32Uint:
		return gputypes.TextureFormatRG32Uint, true
	case FormatRGBA32Uint:
		return gputypes.TextureFormatRGBA32Uint, true
	case FormatR32Sint:
		return gputypes.TextureFormatR32Sint, true
	case FormatRG32Sint:
		return gputypes.TextureFormatRG32Sint, true
	case FormatRGBA32Sint:
		return gputypes.TextureFormatRGBA32Sint, true
	case FormatR32Float:
		return gputypes.TextureFormatR32Float, true
	case FormatRG32Float:
		return gputypes.TextureFormatRG32Float, true
	case FormatRGBA32Float:
		return gputypes.TextureFormatRGBA32Float, true
	}
	return gputypes.TextureFormatUndefined, false
}
