package vector

import "fmt"

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Arena owns a fixed-capacity block of storage for elements of type T.
// It never runs element hooks: which slots hold live elements is decided by
// the owner (a Vector). Capacity is fixed for the lifetime of the block; a new
// capacity needs a new Arena.
//
// Arena must not be copied. Ownership moves with MoveFrom or Swap.
type Arena[T any] struct {
	_     noCopy
	block []T
}

// NewArena allocates an arena able to hold capacity elements. A capacity of
// 0 yields a valid empty arena with no block.
func NewArena[T any](capacity int) (*Arena[T], error) {
	a := &Arena[T]{}
	if err := a.init(capacity, Config{}); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Arena[T]) init(capacity int, cfg Config) error {
	block, err := allocBlock[T](capacity, cfg)
	if err != nil {
		return err
	}
	a.block = block
	return nil
}

// Capacity returns the number of elements the block can hold.
func (a *Arena[T]) Capacity() int {
	return len(a.block)
}

// Slot returns a pointer to slot i without checking liveness.
// Panics if i is outside [0, Capacity()).
func (a *Arena[T]) Slot(i int) *T {
	if i < 0 || i >= len(a.block) {
		panic(fmt.Sprintf("arena: slot %d out of range [0, %d)", i, len(a.block)))
	}
	return &a.block[i]
}

// Block returns the whole raw block. Its length equals Capacity().
func (a *Arena[T]) Block() []T {
	return a.block
}

// Swap exchanges the blocks of a and other. No element is touched.
func (a *Arena[T]) Swap(other *Arena[T]) {
	a.block, other.block = other.block, a.block
}

// MoveFrom releases a's block and takes ownership of src's. src is left
// empty.
func (a *Arena[T]) MoveFrom(src *Arena[T]) {
	if a == src {
		return
	}
	a.block = src.block
	src.block = nil
}

// Release drops the block without running any element hook.
// The arena stays usable as an empty arena.
func (a *Arena[T]) Release() {
	a.block = nil
}

// clearSlot returns slot i to its raw zero state without running Destroy.
// Used only for slots that were never successfully constructed.
func (a *Arena[T]) clearSlot(i int) {
	var zero T
	a.block[i] = zero
}
