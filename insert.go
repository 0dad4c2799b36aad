package vector

import "fmt"

// PushBack appends a copy of value.
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.Insert(v.size, value)
	return err
}

// PushBackMove appends by moving from *value, which is left moved-from.
func (v *Vector[T]) PushBackMove(value *T) error {
	_, err := v.InsertMove(v.size, value)
	return err
}

// EmplaceBack appends an element built in place by build and returns a
// pointer to it.
func (v *Vector[T]) EmplaceBack(build func(slot *T) error) (*T, error) {
	i, err := v.Emplace(v.size, build)
	if err != nil {
		return nil, err
	}
	return &v.storage.block[i], nil
}

// PopBack destroys the last element. Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.traits.destroy(&v.storage.block[v.size-1])
	v.size--
	v.publish()
}

// Insert inserts a copy of value before position pos and returns the index
// of the new element. pos must be in [0, Size()].
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	if v.traits.NotCopyable {
		return 0, ErrNotCopyable
	}
	return v.emplace(pos, OpCopy, func(slot *T) error {
		return v.traits.copy(slot, &value)
	})
}

// InsertMove inserts before position pos by moving from *value.
func (v *Vector[T]) InsertMove(pos int, value *T) (int, error) {
	return v.emplace(pos, OpMove, func(slot *T) error {
		return v.traits.move(slot, value)
	})
}

// Emplace inserts an element built in place by build before position pos.
// build receives a raw slot and must either fully construct it or return an
// error without leaving anything that needs destroying.
func (v *Vector[T]) Emplace(pos int, build func(slot *T) error) (int, error) {
	return v.emplace(pos, OpConstruct, build)
}

func (v *Vector[T]) emplace(pos int, op string, build func(*T) error) (int, error) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0, %d]", pos, v.size))
	}
	var err error
	if v.size == v.Capacity() {
		err = v.insertGrow(pos, op, build)
	} else {
		err = v.insertInPlace(pos, op, build)
	}
	if err != nil {
		return 0, err
	}
	v.size++
	v.publish()
	return pos, nil
}

// insertInPlace inserts into spare capacity.
//
// The tail slot v.size starts raw. If moving the last element into it fails,
// the slot is only cleared; once that move succeeded the slot is live and a
// later failure destroys it instead.
func (v *Vector[T]) insertInPlace(pos int, op string, build func(*T) error) error {
	b := v.storage.block
	end := v.size
	if pos == end {
		if err := build(&b[end]); err != nil {
			v.storage.clearSlot(end)
			return elementError(op, pos, err)
		}
		return nil
	}

	var tmp T
	if err := build(&tmp); err != nil {
		return elementError(op, pos, err)
	}
	defer v.traits.destroy(&tmp)

	if err := v.traits.move(&b[end], &b[end-1]); err != nil {
		v.storage.clearSlot(end)
		return elementError(OpMove, end-1, err)
	}
	for i := end - 1; i > pos; i-- {
		if err := v.traits.move(&b[i], &b[i-1]); err != nil {
			v.traits.destroy(&b[end])
			return elementError(OpMove, i-1, err)
		}
	}
	if err := v.traits.move(&b[pos], &tmp); err != nil {
		v.traits.destroy(&b[end])
		return elementError(OpMove, pos, err)
	}
	return nil
}

// insertGrow inserts into a full vector. The new element is built in its
// final slot of a doubled arena before anything else is touched, then the
// elements on either side of it are relocated around it.
func (v *Vector[T]) insertGrow(pos int, op string, build func(*T) error) error {
	newCap := 1
	if v.size > 0 {
		newCap = v.size * 2
	}
	var fresh Arena[T]
	if err := v.allocate(&fresh, newCap); err != nil {
		return err
	}
	nb := fresh.block
	if err := build(&nb[pos]); err != nil {
		fresh.Release()
		return elementError(op, pos, err)
	}

	byMove := v.traits.relocateByMove()
	live := v.live()
	if err := v.relocate(nb[:pos], live[:pos], byMove, 0); err != nil {
		v.traits.destroy(&nb[pos])
		fresh.Release()
		return err
	}
	if err := v.relocate(nb[pos+1:v.size+1], live[pos:], byMove, pos); err != nil {
		v.traits.destroyAll(nb[:pos+1])
		fresh.Release()
		return err
	}
	v.traits.destroyAll(live)
	v.adopt(&fresh, byMove)
	return nil
}

// Erase removes the element at pos, shifting the following elements one slot
// toward the front, and returns pos. pos must be in [0, Size()).
func (v *Vector[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0, %d)", pos, v.size))
	}
	b := v.storage.block
	for i := pos; i < v.size-1; i++ {
		if err := v.traits.move(&b[i], &b[i+1]); err != nil {
			return 0, elementError(OpMove, i+1, err)
		}
	}
	v.PopBack()
	return pos, nil
}
