package georaster

import "errors"

// ErrNoGeoTransform is returned by [Dataset.GeoTransform] implementations
// for datasets that carry no affine georeferencing.
var ErrNoGeoTransform = errors.New("georaster: dataset has no geotransform")

// GeoTransform holds the six affine coefficients mapping pixel (col,row)
// to georeferenced (x,y), in GDAL order:
//
//	x = gt[0] + col*gt[1] + row*gt[2]
//	y = gt[3] + col*gt[4] + row*gt[5]
type GeoTransform [6]float64

// Apply maps a pixel coordinate to a georeferenced coordinate.
func (gt GeoTransform) Apply(col, row float64) (x, y float64) {
	x = gt[0] + col*gt[1] + row*gt[2]
	y = gt[3] + col*gt[4] + row*gt[5]
	return x, y
}

// Origin returns the georeferenced coordinate of the top-left corner of the
// top-left pixel.
func (gt GeoTransform) Origin() (x, y float64) { return gt[0], gt[3] }

// PixelSize returns the pixel width and height in georeferenced units.
// The height is negative for north-up rasters.
func (gt GeoTransform) PixelSize() (w, h float64) { return gt[1], gt[5] }

// Dataset is an opaque raster data source. It is the read-only view this
// package needs from a GDAL-style binding or an in-memory description:
// spatial reference, raster size, and optional geotransform.
//
// Implementations are expected to be pointer types so that two Dataset
// values compare equal exactly when they are the same underlying dataset.
type Dataset interface {
	// ProjectionRef returns the spatial reference of the dataset, normally
	// a WKT string, and whether one is present. The string is compared
	// byte-for-byte by the compatibility checks; callers must not report
	// ok=true with differently formatted encodings of the same system and
	// expect them to match.
	ProjectionRef() (wkt string, ok bool)

	// RasterXSize returns the width of the raster in pixels.
	RasterXSize() int

	// RasterYSize returns the height of the raster in pixels.
	RasterYSize() int

	// GeoTransform returns the affine transformation coefficients.
	// Implementations return [ErrNoGeoTransform] (or any non-nil error)
	// when the dataset has no georeferencing.
	GeoTransform() (GeoTransform, error)
}

// DatasetInfo is an in-memory [Dataset]: a plain description of a raster
// grid. It is useful for declaring the target grid of a mosaic, and as a
// stand-in for file-backed datasets in tests.
//
// Use it through a pointer; the zero value describes an empty, ungeoreferenced
// raster.
type DatasetInfo struct {
	Width  int
	Height int

	// Projection is the spatial reference in WKT. It is only meaningful
	// when HasProjection is true; an empty string with HasProjection set
	// is a present-but-empty reference, which is distinct from an absent
	// one.
	Projection    string
	HasProjection bool

	Transform    GeoTransform
	HasTransform bool
}

var _ Dataset = (*DatasetInfo)(nil)

// ProjectionRef implements [Dataset].
func (d *DatasetInfo) ProjectionRef() (string, bool) {
	if !d.HasProjection {
		return "", false
	}
	return d.Projection, true
}

// RasterXSize implements [Dataset].
func (d *DatasetInfo) RasterXSize() int { return d.Width }

// RasterYSize implements [Dataset].
func (d *DatasetInfo) RasterYSize() int { return d.Height }

// GeoTransform implements [Dataset].
func (d *DatasetInfo) GeoTransform() (GeoTransform, error) {
	if !d.HasTransform {
		return GeoTransform{}, ErrNoGeoTransform
	}
	return d.Transform, nil
}
