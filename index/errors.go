package index

import (
	"fmt"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("index")

// OverflowError is the class of errors for products that do not fit in a
// uint64.
var OverflowError = errs.Class("overflow")

// InvalidIndex reports an index that lies outside the product space. A
// ProductSize of zero means the lengths were empty or contained a zero.
type InvalidIndex struct {
	Index       uint64
	ProductSize uint64
}

func (e *InvalidIndex) Error() string {
	return fmt.Sprintf(
		"invalid index %d for multi dimensional array of size %d",
		e.Index,
		e.ProductSize,
	)
}

// BigInvalidIndex is the arbitrary precision form of InvalidIndex.
type BigInvalidIndex struct {
	Index       *big.Int
	ProductSize *big.Int
}

func (e *BigInvalidIndex) Error() string {
	return fmt.Sprintf(
		"invalid index %s for multi dimensional array of size %s",
		e.Index,
		e.ProductSize,
	)
}

func invalid(index, size uint64) error {
	return Error.Wrap(&InvalidIndex{
		Index:       index,
		ProductSize: size,
	})
}
