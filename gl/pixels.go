package gl

// BytesPerPixel returns the size of one pixel of the given format and type,
// or false for combinations the shim does not know how to size.
func BytesPerPixel(format, typ Enum) (int, bool) {
	switch typ {
	case UNSIGNED_SHORT_5_6_5, UNSIGNED_SHORT_4_4_4_4, UNSIGNED_SHORT_5_5_5_1:
		return 2, true
	case UNSIGNED_INT_24_8:
		return 4, true
	}

	var size int
	switch typ {
	case BYTE, UNSIGNED_BYTE:
		size = 1
	case SHORT, UNSIGNED_SHORT, HALF_FLOAT:
		size = 2
	case INT, UNSIGNED_INT, FLOAT:
		size = 4
	default:
		return 0, false
	}

	switch format {
	case RED, ALPHA, LUMINANCE, DEPTH_COMPONENT:
		return size, true
	case RG, LUMINANCE_ALPHA:
		return 2 * size, true
	case RGB:
		return 3 * size, true
	case RGBA:
		return 4 * size, true
	}
	return 0, false
}

// ImageSize returns the number of bytes an image upload reads from client
// memory, with each row padded to alignment bytes. The last row is not padded.
func ImageSize(width, height int32, format, typ Enum, alignment int) (int64, bool) {
	if width < 0 || height < 0 || alignment <= 0 {
		return 0, false
	}
	bpp, ok := BytesPerPixel(format, typ)
	if !ok {
		return 0, false
	}
	if width == 0 || height == 0 {
		return 0, true
	}
	row := int64(width) * int64(bpp)
	stride := (row + int64(alignment) - 1) / int64(alignment) * int64(alignment)
	return stride*int64(height-1) + row, true
}
