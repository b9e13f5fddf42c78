package georaster

// ProjectionsCompatible reports whether two datasets share the same spatial
// reference, so their pixel data can be combined without reprojection.
//
// The check is syntactic and conservative: references compare byte-for-byte,
// with no attempt to recognize differently formatted encodings of the same
// coordinate system. Two datasets with no spatial reference at all are
// compatible; a dataset with a reference is never compatible with one
// without.
//
// The check is symmetric, reflexive, and never fails: every input maps to a
// boolean.
func ProjectionsCompatible(a, b Dataset) bool {
	if a == b {
		return true
	}

	aRef, aOK := a.ProjectionRef()
	bRef, bOK := b.ProjectionRef()

	// Both absent: nothing contradicts.
	if !aOK && !bOK {
		return true
	}

	// Exactly one absent: asymmetric information cannot be reconciled.
	if !aOK || !bOK {
		Logger().Debug("projections incompatible: reference present on one side only")
		return false
	}

	if aRef != bRef {
		Logger().Debug("projections incompatible: reference mismatch",
			"a", aRef, "b", bRef)
		return false
	}
	return true
}

// FullyCompatible reports whether two datasets describe the same spatial
// grid: same spatial reference, same raster size, and the same geotransform.
// Datasets that satisfy it can be mosaicked or compared pixel-for-pixel.
//
// Geotransforms compare exactly, component by component, with no tolerance:
// grids produced by identical processing carry identical transforms, and an
// epsilon would only let inconsistent grids through. If neither dataset has
// a transform the pair is compatible; if exactly one has a transform it is
// not.
//
// FullyCompatible implies ProjectionsCompatible.
func FullyCompatible(a, b Dataset) bool {
	if !ProjectionsCompatible(a, b) {
		return false
	}

	if a.RasterXSize() != b.RasterXSize() || a.RasterYSize() != b.RasterYSize() {
		Logger().Debug("datasets incompatible: size mismatch",
			"a_width", a.RasterXSize(), "a_height", a.RasterYSize(),
			"b_width", b.RasterXSize(), "b_height", b.RasterYSize())
		return false
	}

	aGT, aErr := a.GeoTransform()
	bGT, bErr := b.GeoTransform()

	switch {
	case aErr != nil && bErr != nil:
		// Neither is georeferenced, nothing to compare.
		return true
	case aErr != nil || bErr != nil:
		Logger().Debug("datasets incompatible: geotransform present on one side only")
		return false
	}

	if aGT != bGT {
		Logger().Debug("datasets incompatible: geotransform mismatch",
			"a", aGT, "b", bGT)
		return false
	}
	return true
}
