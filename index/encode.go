package index

// Encode is the inverse of DecodeN. It returns the row-major flat index of
// coords in the product of lengths.
func Encode(coords, lengths []uint64) (index uint64, err error) {
	if len(lengths) == 0 {
		return 0, Error.New("no lengths")
	}

	if len(coords) != len(lengths) {
		return 0, Error.New(
			"coordinate count mismatch: coords=%d lengths=%d",
			len(coords),
			len(lengths),
		)
	}

	_, err = Size(lengths)
	if err != nil {
		return 0, err
	}

	stride := uint64(1)
	for k := len(lengths) - 1; k >= 0; k-- {
		if coords[k] >= lengths[k] {
			return 0, Error.New(
				"coordinate out of range: dimension=%d coordinate=%d length=%d",
				k,
				coords[k],
				lengths[k],
			)
		}

		index += coords[k] * stride
		stride *= lengths[k]
	}

	return index, nil
}
