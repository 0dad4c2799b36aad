package vector

// Traits describes the lifecycle of an element type. Every hook is optional;
// a nil hook falls back to plain Go value semantics.
//
// Copy and Move are called with dst pointing either at a raw slot (zero
// value) or at a live element, in which case they act as assignment. A
// moved-from src stays live and is later passed to Destroy like any other
// element.
type Traits[T any] struct {
	// Construct default-constructs an element into a raw slot.
	// Nil leaves the zero value.
	Construct func(slot *T) error

	// Copy duplicates *src into *dst. Nil assigns *dst = *src.
	Copy func(dst, src *T) error

	// Move transfers *src into *dst. Nil assigns *dst = *src and zeroes
	// *src, which never fails.
	Move func(dst, src *T) error

	// Destroy ends the lifetime of a live element. The slot is zeroed
	// afterwards either way so the garbage collector can reclaim whatever
	// it referenced.
	Destroy func(slot *T)

	// NoFailMove promises that Move never returns an error.
	NoFailMove bool

	// NotCopyable forbids Copy. Such elements are always relocated by Move.
	NotCopyable bool
}

// moveNeverFails reports whether Move carries a never-fails guarantee.
func (t *Traits[T]) moveNeverFails() bool {
	return t.Move == nil || t.NoFailMove
}

// relocateByMove decides, once per relocation batch, whether elements are
// transferred by Move or duplicated by Copy. Copy is used whenever Move may
// fail, unless the type cannot be copied at all.
func (t *Traits[T]) relocateByMove() bool {
	return t.moveNeverFails() || t.NotCopyable
}

func (t *Traits[T]) construct(slot *T) error {
	if t.Construct == nil {
		return nil
	}
	return t.Construct(slot)
}

func (t *Traits[T]) copy(dst, src *T) error {
	if t.Copy == nil {
		*dst = *src
		return nil
	}
	return t.Copy(dst, src)
}

func (t *Traits[T]) move(dst, src *T) error {
	if t.Move == nil {
		*dst = *src
		var zero T
		*src = zero
		return nil
	}
	return t.Move(dst, src)
}

// destroy runs Destroy and returns the slot to its raw zero state.
func (t *Traits[T]) destroy(slot *T) {
	if t.Destroy != nil {
		t.Destroy(slot)
	}
	var zero T
	*slot = zero
}

func (t *Traits[T]) destroyAll(s []T) {
	for i := range s {
		t.destroy(&s[i])
	}
}

// copyRange copy-constructs src into the raw slots of dst. On failure the
// copies already made are destroyed; base offsets the index reported in the
// error.
func (t *Traits[T]) copyRange(dst, src []T, base int) error {
	for i := range src {
		if err := t.copy(&dst[i], &src[i]); err != nil {
			var zero T
			dst[i] = zero
			t.destroyAll(dst[:i])
			return elementError(OpCopy, base+i, err)
		}
	}
	return nil
}

// moveRange move-constructs src into the raw slots of dst, with the same
// rollback as copyRange. Elements of src already moved stay moved-from.
func (t *Traits[T]) moveRange(dst, src []T, base int) error {
	for i := range src {
		if err := t.move(&dst[i], &src[i]); err != nil {
			var zero T
			dst[i] = zero
			t.destroyAll(dst[:i])
			return elementError(OpMove, base+i, err)
		}
	}
	return nil
}
