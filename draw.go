package georaster

import (
	"image"
	"image/color"
)

// ToImage converts a buffer to a standard library image for previewing or
// PNG export. Only the 8-bit and 16-bit unsigned normalized formats with
// 1, 3 or 4 channels have a std image representation; everything else
// reports false. Pixel values are copied, not aliased.
//
// Single-channel buffers become Gray/Gray16, three-channel become
// NRGBA/NRGBA64 with opaque alpha, four-channel become NRGBA/NRGBA64.
func ToImage(img Image) (image.Image, bool) {
	switch src := img.(type) {
	case *Array2D[uint8]:
		return toImage8(src)
	case *Array2D[uint16]:
		return toImage16(src)
	}
	return nil, false
}

func toImage8(src *Array2D[uint8]) (image.Image, bool) {
	w, h := src.Width(), src.Height()
	rect := image.Rect(0, 0, w, h)

	switch src.Channels() {
	case 1:
		dst := image.NewGray(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetGray(x, y, color.Gray{Y: src.At(x, y, 0)})
			}
		}
		return dst, true
	case 3:
		dst := image.NewNRGBA(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetNRGBA(x, y, color.NRGBA{
					R: src.At(x, y, 0),
					G: src.At(x, y, 1),
					B: src.At(x, y, 2),
					A: 0xff,
				})
			}
		}
		return dst, true
	case 4:
		dst := image.NewNRGBA(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetNRGBA(x, y, color.NRGBA{
					R: src.At(x, y, 0),
					G: src.At(x, y, 1),
					B: src.At(x, y, 2),
					A: src.At(x, y, 3),
				})
			}
		}
		return dst, true
	}
	return nil, false
}

func toImage16(src *Array2D[uint16]) (image.Image, bool) {
	w, h := src.Width(), src.Height()
	rect := image.Rect(0, 0, w, h)

	switch src.Channels() {
	case 1:
		dst := image.NewGray16(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetGray16(x, y, color.Gray16{Y: src.At(x, y, 0)})
			}
		}
		return dst, true
	case 3:
		dst := image.NewNRGBA64(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetNRGBA64(x, y, color.NRGBA64{
					R: src.At(x, y, 0),
					G: src.At(x, y, 1),
					B: src.At(x, y, 2),
					A: 0xffff,
				})
			}
		}
		return dst, true
	case 4:
		dst := image.NewNRGBA64(rect)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.SetNRGBA64(x, y, color.NRGBA64{
					R: src.At(x, y, 0),
					G: src.At(x, y, 1),
					B: src.At(x, y, 2),
					A: src.At(x, y, 3),
				})
			}
		}
		return dst, true
	}
	return nil, false
}
