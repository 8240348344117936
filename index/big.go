package index

import (
	"math/big"

	"github.com/zeebo/errs"
)

// DecodeBig is DecodeN for products that do not fit in a uint64.
//
// The inputs are not modified. Each returned coordinate is a new big.Int.
func DecodeBig(index *big.Int, lengths []*big.Int) (coords []*big.Int, err error) {
	defer Error.WrapP(&err)

	if index == nil || index.Sign() < 0 {
		return nil, errs.New("negative index: %s", index)
	}

	// Note: An empty product is treated as size zero rather than the
	// mathematical one so that it is always rejected.
	size := new(big.Int)
	if len(lengths) > 0 {
		size.SetInt64(1)

		for i, l := range lengths {
			if l == nil || l.Sign() < 0 {
				return nil, errs.New("negative length at dimension %d: %s", i, l)
			}

			size.Mul(size, l)
		}
	}

	if index.Cmp(size) >= 0 {
		return nil, &BigInvalidIndex{
			Index:       new(big.Int).Set(index),
			ProductSize: size,
		}
	}

	coords = make([]*big.Int, len(lengths))

	rest := new(big.Int).Set(index)
	for k := len(lengths) - 1; k > 0; k-- {
		coords[k] = new(big.Int)
		rest.QuoRem(rest, lengths[k], coords[k])
	}
	coords[0] = rest

	return coords, nil
}
