// Package index maps a flat index into the Cartesian product of several
// ordered sequences back to one coordinate per sequence.
//
// The product is never materialized. Given the lengths of the sequences
//
//  lengths = [l0, l1, ..., ln-1]
//
// the product has l0*l1*...*ln-1 elements enumerated in row-major (C) order:
// the first sequence varies slowest and the last varies fastest. The flat
// index of a coordinate vector is
//
//  index = c0*(l1*...*ln-1) + c1*(l2*...*ln-1) + ... + cn-1
//
// and DecodeN is its inverse. It is the same conversion as writing a number
// in a positional system where every digit has its own base (mixed radix):
//
//  lengths = [3, 4]
//
//  | index | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 | 9 | 10 | 11 |
//  |-------|---|---|---|---|---|---|---|---|---|---|----|----|
//  | c0    | 0 | 0 | 0 | 0 | 1 | 1 | 1 | 1 | 2 | 2 | 2  | 2  |
//  | c1    | 0 | 1 | 2 | 3 | 0 | 1 | 2 | 3 | 0 | 1 | 2  | 3  |
//
// Decode2 and Decode3 are unrolled forms of DecodeN for two and three
// sequences. They return exactly what DecodeN returns for the same lengths.
//
// Errors
//
// An index outside [0, product) is reported as an *InvalidIndex carrying the
// index and the product size (zero when no lengths were given). Use errors.As
// to recover it.
//
// Products are computed with checked multiplication. A product that does not
// fit in a uint64 is reported with the OverflowError class instead of
// wrapping around. DecodeBig performs the same decomposition on big.Int values
// and has no such limit.
package index
