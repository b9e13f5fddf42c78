// Package georaster bridges geospatial raster datasets and GPU-renderable
// pixel data.
//
// # Overview
//
// georaster sits between a raster source (a GDAL-style dataset exposing a
// spatial reference, raster size and an affine geotransform) and texture
// upload in the GoGPU ecosystem. It answers two questions that come up in
// every mosaicking or compositing pipeline:
//
//   - Can these two datasets be combined pixel-for-pixel, without
//     reprojection or resampling? See [ProjectionsCompatible] and
//     [FullyCompatible].
//   - What does the destination buffer for this raster look like? See
//     [NewImage2D], which allocates a typed, format-tagged 2D buffer for
//     any combination of the seven pixel encodings and 1-4 channels,
//     pre-filled with a caller-supplied default.
//
// # Quick Start
//
//	a := &georaster.DatasetInfo{
//	    Width: 512, Height: 512,
//	    Projection: wkt, HasProjection: true,
//	    Transform: georaster.GeoTransform{x0, dx, 0, y0, 0, dy}, HasTransform: true,
//	}
//	b := openSecondTile()
//
//	if georaster.FullyCompatible(a, b) {
//	    img, ok := georaster.NewImage2D(512, 512, 3, georaster.Byte, georaster.Vec4{})
//	    if !ok {
//	        // combination not supported
//	    }
//	    // read pixel data into img, upload via GPUFormat(img.Format())
//	}
//
// # Compatibility Checks
//
// The checks are deliberately conservative and cheap. Projections compare
// byte-for-byte (no WKT parsing), geotransforms compare exactly (no
// epsilon). A false negative only costs a reprojection; a false positive
// corrupts the mosaic.
//
// # Buffers
//
// Buffers are dense row-major, channel-interleaved arrays owned by the Go
// garbage collector. [Image] is the format-tagged view used by upload code;
// [Array2D] is the generic concrete container when the element type is
// known statically.
package georaster

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
