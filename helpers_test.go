package vector

import (
	"github.com/pkg/errors"
)

var errBoom = errors.New("boom")

// obj is an element whose lifecycle is recorded by a tracker. A zero obj is
// a raw slot; every constructed obj has alive set.
type obj struct {
	val   int
	alive bool
	moved bool
}

// tracker counts hook calls and catches lifecycle bugs: destroying a slot
// that is not alive, or leaking live objects.
type tracker struct {
	constructs int
	copies     int
	moves      int
	destroys   int

	live       int
	badDestroy int

	// 1-based call numbers at which the hook fails; 0 never fails.
	failConstruct int
	failCopy      int
	failMove      int

	next int
}

func (tr *tracker) traits() Traits[obj] {
	return Traits[obj]{
		Construct: func(s *obj) error {
			tr.constructs++
			if tr.constructs == tr.failConstruct {
				s.val = 999 // partial write the container must discard
				return errBoom
			}
			tr.next++
			*s = obj{val: tr.next, alive: true}
			tr.live++
			return nil
		},
		Copy: func(d, s *obj) error {
			tr.copies++
			if tr.copies == tr.failCopy {
				return errBoom
			}
			if !d.alive {
				tr.live++
			}
			*d = obj{val: s.val, alive: true}
			return nil
		},
		Move: func(d, s *obj) error {
			tr.moves++
			if tr.moves == tr.failMove {
				return errBoom
			}
			if !d.alive {
				tr.live++
			}
			*d = obj{val: s.val, alive: true}
			s.val = 0
			s.moved = true
			return nil
		},
		Destroy: func(s *obj) {
			tr.destroys++
			if !s.alive {
				tr.badDestroy++
				return
			}
			tr.live--
		},
	}
}

// noFail returns traits whose Move is declared infallible.
func (tr *tracker) noFail() Traits[obj] {
	t := tr.traits()
	t.NoFailMove = true
	return t
}

func (tr *tracker) reset() {
	tr.constructs, tr.copies, tr.moves, tr.destroys = 0, 0, 0, 0
}

func vals(v *Vector[obj]) []int {
	out := make([]int, 0, v.Size())
	for x := range v.Values() {
		out = append(out, x.val)
	}
	return out
}

func ints(v *Vector[int]) []int {
	out := make([]int, 0, v.Size())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}

func set(x int) func(*int) error {
	return func(s *int) error {
		*s = x
		return nil
	}
}

func pushObjs(v *Vector[obj], xs ...int) error {
	for _, x := range xs {
		if err := v.PushBack(obj{val: x, alive: true}); err != nil {
			return err
		}
	}
	return nil
}
