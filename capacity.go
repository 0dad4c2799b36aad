package vector

import (
	"fmt"

	"github.com/go-kit/log/level"
)

// Reserve ensures Capacity() >= n. When the storage has to grow, the live
// elements are relocated into a new arena of exactly n slots, by Move if the
// element type's Move cannot fail (or it cannot be copied), by Copy
// otherwise. On failure the vector is left exactly as it was.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Capacity() {
		return nil
	}
	return v.reallocate(n)
}

// Resize sets Size() to n. Shrinking destroys the trailing elements. Growing
// raises the capacity to max(2*Capacity(), n) when needed and
// default-constructs the new tail; if a construction fails, the new tail is
// rolled back and the size is left unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vector: Resize to negative size %d", n))
	}
	if n < v.size {
		v.traits.destroyAll(v.storage.block[n:v.size])
		v.size = n
		v.publish()
		return nil
	}
	if n > v.Capacity() {
		if err := v.Reserve(max(2*v.Capacity(), n)); err != nil {
			return err
		}
	}
	if err := v.constructRange(v.size, n); err != nil {
		level.Warn(v.log()).Log("msg", "resize rolled back", "size", v.size, "target", n, "err", err)
		return err
	}
	v.size = n
	v.publish()
	return nil
}

// ShrinkToFit reallocates the storage so that Capacity() == Size().
func (v *Vector[T]) ShrinkToFit() error {
	if v.Capacity() == v.size {
		return nil
	}
	if v.size == 0 {
		v.storage.Release()
		v.publish()
		return nil
	}
	return v.reallocate(v.size)
}

// reallocate moves the live elements into a fresh arena of newCap slots and
// adopts it. The old storage is only touched once the new one is complete.
func (v *Vector[T]) reallocate(newCap int) error {
	var fresh Arena[T]
	if err := v.allocate(&fresh, newCap); err != nil {
		return err
	}
	byMove := v.traits.relocateByMove()
	if err := v.relocate(fresh.block[:v.size], v.live(), byMove, 0); err != nil {
		fresh.Release()
		return err
	}
	v.traits.destroyAll(v.live())
	v.adopt(&fresh, byMove)
	return nil
}

func (v *Vector[T]) allocate(a *Arena[T], n int) error {
	if err := a.init(n, v.cfg); err != nil {
		level.Warn(v.log()).Log("msg", "arena allocation failed", "capacity", n, "err", err)
		return err
	}
	return nil
}

// relocate transfers src into the raw slots of dst. byMove is decided once by
// the caller for the whole batch.
func (v *Vector[T]) relocate(dst, src []T, byMove bool, base int) error {
	var err error
	if byMove {
		err = v.traits.moveRange(dst, src, base)
	} else {
		err = v.traits.copyRange(dst, src, base)
	}
	if err != nil {
		level.Warn(v.log()).Log("msg", "relocation rolled back", "count", len(src), "err", err)
		return err
	}
	v.stats.relocations.Add(uint64(len(src)))
	return nil
}

// adopt replaces the storage with fresh. The old block holds no live
// elements at this point.
func (v *Vector[T]) adopt(fresh *Arena[T], byMove bool) {
	level.Debug(v.log()).Log(
		"msg", "reallocated",
		"from", v.storage.Capacity(),
		"to", fresh.Capacity(),
		"size", v.size,
		"relocation", relocationName(byMove),
	)
	v.storage.MoveFrom(fresh)
	v.stats.reallocations.Add(1)
	v.publish()
}

func relocationName(byMove bool) string {
	if byMove {
		return "move"
	}
	return "copy"
}
