package vector

import (
	"fmt"
	"iter"

	"github.com/go-kit/log"
	"go.uber.org/atomic"
)

// Vector is a growable array built on an Arena. Slots [0, Size()) hold live
// elements; slots [Size(), Capacity()) are raw. Every construction, copy,
// move and destruction goes through the vector's Traits.
//
// The zero value is an empty vector with default Traits, no limits and no
// logging.
//
// Vector is not goroutine-safe. Read-only methods may run concurrently only
// while no goroutine is mutating the vector. Stats is the exception: it is
// safe to call at any time.
type Vector[T any] struct {
	storage Arena[T]
	size    int

	traits Traits[T]
	cfg    Config
	logger log.Logger

	stats vectorStats
}

type vectorStats struct {
	size          atomic.Int64
	capacity      atomic.Int64
	reallocations atomic.Uint64
	relocations   atomic.Uint64
}

// New returns an empty vector with size 0 and capacity 0.
func New[T any](opts ...Option[T]) *Vector[T] {
	o := buildOptions(opts)
	v := newVector(o)
	v.register(o)
	return v
}

// NewSized returns a vector holding n default-constructed elements. If any
// construction fails, the elements built so far are destroyed and the error
// is returned.
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	o := buildOptions(opts)
	v := newVector(o)
	if err := v.storage.init(n, v.cfg); err != nil {
		return nil, err
	}
	if err := v.constructRange(0, n); err != nil {
		v.storage.Release()
		return nil, err
	}
	v.size = n
	v.publish()
	v.register(o)
	return v, nil
}

func newVector[T any](o options[T]) *Vector[T] {
	return &Vector[T]{traits: o.traits, cfg: o.cfg, logger: o.logger}
}

func (v *Vector[T]) register(o options[T]) {
	if o.reg != nil {
		Register(o.reg, NewCollector(o.statName, v))
	}
}

func (v *Vector[T]) log() log.Logger {
	if v.logger == nil {
		return log.NewNopLogger()
	}
	return v.logger
}

// sibling returns an empty vector sharing v's traits, limits and logger.
func (v *Vector[T]) sibling() *Vector[T] {
	return &Vector[T]{traits: v.traits, cfg: v.cfg, logger: v.logger}
}

// Clone returns a copy of v whose capacity equals v.Size(). If a copy fails,
// the copies made so far are destroyed and v is left untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.cloneWith(v.sibling())
}

func (v *Vector[T]) cloneWith(c *Vector[T]) (*Vector[T], error) {
	if c.traits.NotCopyable {
		return nil, ErrNotCopyable
	}
	if err := c.storage.init(v.size, c.cfg); err != nil {
		return nil, err
	}
	if err := c.traits.copyRange(c.storage.block, v.live(), 0); err != nil {
		c.storage.Release()
		return nil, err
	}
	c.size = v.size
	c.publish()
	return c, nil
}

// Move returns a vector that owns v's storage and elements. v is left empty.
// No element is touched. The reallocation and relocation counters move along
// with the storage; a collector registered through WithMetrics stays bound
// to v.
func (v *Vector[T]) Move() *Vector[T] {
	m := v.sibling()
	m.storage.MoveFrom(&v.storage)
	m.size = v.size
	v.size = 0
	m.stats.reallocations.Store(v.stats.reallocations.Swap(0))
	m.stats.relocations.Store(v.stats.relocations.Swap(0))
	v.publish()
	m.publish()
	return m
}

// Assign makes v an element-wise copy of rhs.
//
// When rhs does not fit in v's capacity, the copy is built separately and
// swapped in, so a failure leaves v unchanged. Otherwise the shared prefix is
// copy-assigned in place, then the excess is destroyed or the missing tail is
// copy-constructed.
func (v *Vector[T]) Assign(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if v.traits.NotCopyable {
		return ErrNotCopyable
	}
	if rhs.size > v.Capacity() {
		c, err := rhs.cloneWith(v.sibling())
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}
	dst, src := v.storage.block, rhs.live()
	shared := min(v.size, rhs.size)
	for i := 0; i < shared; i++ {
		if err := v.traits.copy(&dst[i], &src[i]); err != nil {
			return elementError(OpCopy, i, err)
		}
	}
	if v.size > rhs.size {
		v.traits.destroyAll(dst[rhs.size:v.size])
	} else if err := v.traits.copyRange(dst[v.size:rhs.size], src[v.size:], v.size); err != nil {
		return err
	}
	v.size = rhs.size
	v.publish()
	return nil
}

// MoveAssign exchanges the contents of v and rhs, including their Traits.
// rhs ends up holding what v held before.
func (v *Vector[T]) MoveAssign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Swap(rhs)
}

// Swap exchanges storage and size with other in constant time. Traits travel
// with the elements, so each element is still destroyed by the hooks that
// built it. Limits, logger and metrics stay with their vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.storage.Swap(&other.storage)
	v.size, other.size = other.size, v.size
	v.traits, other.traits = other.traits, v.traits
	v.publish()
	other.publish()
}

// Clear destroys every live element and keeps the capacity.
func (v *Vector[T]) Clear() {
	v.traits.destroyAll(v.live())
	v.size = 0
	v.publish()
}

// Release destroys every live element and drops the storage.
// The vector remains usable as an empty vector.
func (v *Vector[T]) Release() {
	v.traits.destroyAll(v.live())
	v.storage.Release()
	v.size = 0
	v.publish()
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of elements the current storage can hold.
func (v *Vector[T]) Capacity() int {
	return v.storage.Capacity()
}

// Empty reports whether Size() is 0.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns a pointer to the live element i. The pointer is invalidated by
// any operation that reallocates. Panics if i is outside [0, Size()).
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, v.size))
	}
	return &v.storage.block[i]
}

// Get returns a copy of element i using plain assignment.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Front returns a pointer to the first element.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a pointer to the last element.
func (v *Vector[T]) Back() *T {
	return v.At(v.size - 1)
}

// Data returns the live elements. The slice aliases the vector's storage and
// its capacity is clipped to Size(), so appending to it never writes into
// raw slots.
func (v *Vector[T]) Data() []T {
	return v.live()
}

// All iterates over index/value pairs of the live range, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.storage.block[i]) {
				return
			}
		}
	}
}

// Values iterates over the live elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.storage.block[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) live() []T {
	return v.storage.block[:v.size:v.size]
}

// constructRange default-constructs slots [from, to). On failure the slots
// already built are destroyed and the failed slot is returned to raw state.
func (v *Vector[T]) constructRange(from, to int) error {
	b := v.storage.block
	for i := from; i < to; i++ {
		if err := v.traits.construct(&b[i]); err != nil {
			v.storage.clearSlot(i)
			v.traits.destroyAll(b[from:i])
			return elementError(OpConstruct, i, err)
		}
	}
	return nil
}

// publish mirrors size and capacity for concurrent Stats readers.
func (v *Vector[T]) publish() {
	v.stats.size.Store(int64(v.size))
	v.stats.capacity.Store(int64(v.storage.Capacity()))
}
