package index

import "math/bits"

// mul returns a*b and whether the product fit in a uint64.
func mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)

	return lo, hi == 0
}

// Size returns the number of elements in the product of the given lengths.
//
// No lengths is an empty product of size zero. A zero length anywhere makes
// the size zero even if the other lengths would overflow.
func Size(lengths []uint64) (size uint64, err error) {
	if len(lengths) == 0 {
		return 0, nil
	}

	for _, l := range lengths {
		if l == 0 {
			return 0, nil
		}
	}

	size = 1
	for i, l := range lengths {
		var ok bool

		size, ok = mul(size, l)
		if !ok {
			return 0, Error.Wrap(OverflowError.New(
				"product exceeds uint64 at dimension %d: lengths=%v",
				i,
				lengths,
			))
		}
	}

	return size, nil
}

// Decode2 returns the coordinates of index in the product of two sequences
// of lengths lenA and lenB. Iteration is slowest over a.
func Decode2(index, lenA, lenB uint64) (a, b uint64, err error) {
	size, err := Size([]uint64{lenA, lenB})
	if err != nil {
		return 0, 0, err
	}

	if index >= size {
		return 0, 0, invalid(index, size)
	}

	return index / lenB, index % lenB, nil
}

// Decode3 returns the coordinates of index in the product of three sequences.
// Iteration is slowest over a and fastest over c.
func Decode3(index, lenA, lenB, lenC uint64) (a, b, c uint64, err error) {
	size, err := Size([]uint64{lenA, lenB, lenC})
	if err != nil {
		return 0, 0, 0, err
	}

	if index >= size {
		return 0, 0, 0, invalid(index, size)
	}

	// lenB*lenC <= size, so it cannot overflow.
	a = index / (lenB * lenC)
	b = index / lenC % lenB
	c = index % lenC

	return a, b, c, nil
}

// DecodeN returns one coordinate per entry in lengths such that coords[k] is
// an index into the k-th sequence. The first sequence varies slowest.
//
// The returned slice is newly allocated and has the same length as lengths.
func DecodeN(index uint64, lengths []uint64) (coords []uint64, err error) {
	size, err := Size(lengths)
	if err != nil {
		return nil, err
	}

	if index >= size {
		return nil, invalid(index, size)
	}

	coords = make([]uint64, len(lengths))

	// Peel off the fastest varying dimension until only the first remains.
	// What is left is already below lengths[0] because index < size.
	for k := len(lengths) - 1; k > 0; k-- {
		coords[k] = index % lengths[k]
		index /= lengths[k]
	}
	coords[0] = index

	return coords, nil
}
