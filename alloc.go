package vector

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// maxAlloc caps a single block at 128 TiB on 64-bit platforms and at
// math.MaxInt on 32-bit ones, so oversized requests fail with ErrAllocation
// instead of crashing make.
const maxAlloc = math.MaxInt >> (16 * (math.MaxInt >> 62))

// elemSize returns the size in bytes of one T.
func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// blockBytes returns n*sizeof(T), or false if the product overflows int.
func blockBytes[T any](n int) (int, bool) {
	size := elemSize[T]()
	if size == 0 || n == 0 {
		return 0, true
	}
	if n > math.MaxInt/size {
		return 0, false
	}
	return n * size, true
}

// allocBlock returns a block of n slots holding the zero value of T, which is
// the only "uninitialized" state Go storage can be in. Returns nil for n == 0.
func allocBlock[T any](n int, cfg Config) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrAllocation, "negative capacity %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if cfg.MaxCapacity > 0 && n > cfg.MaxCapacity {
		return nil, errors.Wrapf(ErrAllocation, "capacity %d exceeds limit %d", n, cfg.MaxCapacity)
	}
	total, ok := blockBytes[T](n)
	if !ok || total > maxAlloc {
		return nil, errors.Wrapf(ErrAllocation, "capacity %d overflows addressable size", n)
	}
	if cfg.MaxBytes > 0 && total > cfg.MaxBytes {
		return nil, errors.Wrapf(ErrAllocation, "block of %d bytes exceeds limit %d", total, cfg.MaxBytes)
	}
	return make([]T, n), nil
}
