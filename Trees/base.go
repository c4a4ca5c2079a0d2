package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Links of a node in the arena. Index 0 is the nil sentinel; its links are
// always 0.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

type base[T cmp.Ordered, S constraints.Unsigned] struct {
	root S         // 0 when the tree is empty.
	live S         // number of attached nodes.
	ifs  []info[S] // ifs[0] is the nil sentinel. all index are based on ifs.
	vs   []T       // vs[i-1] corresponds to ifs[i].
	free []S       // released indexes, reused before appending.
}

func makeBase[T cmp.Ordered, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, uint(hint)+1), vs: make([]T, 0, hint)}
}

func (u *base[T, S]) getIf(i S) *info[S] {
	return &u.ifs[i]
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// alloc a detached node holding v under parent p. Holes are filled first.
// Panics when S can't index another node.
func (u *base[T, S]) alloc(v T, p S) (i S) {
	if n := len(u.free); n > 0 {
		i, u.free = u.free[n-1], u.free[:n-1]
		u.ifs[i] = info[S]{p: p}
		u.vs[i-1] = v
	} else {
		if S(len(u.ifs)) == 0 {
			panic(&IndexOverflowError{uint64(len(u.ifs) - 1)})
		}
		u.ifs = append(u.ifs, info[S]{p: p})
		u.vs = append(u.vs, v)
		i = S(len(u.ifs) - 1)
	}
	u.live++
	return
}

// release a node that has already been detached.
func (u *base[T, S]) release(i S) {
	u.ifs[i] = info[S]{}
	u.vs[i-1] = *new(T)
	u.free = append(u.free, i)
	u.live--
}

// minimum returns the leftmost index in the subtree at i.
// Time: O(D); Space: O(1)
func (u *base[T, S]) minimum(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// maximum returns the rightmost index in the subtree at i.
// Time: O(D); Space: O(1)
func (u *base[T, S]) maximum(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// reconnect puts rep in the position i holds under its parent. rep may be 0.
func (u *base[T, S]) reconnect(i, rep S) {
	p := u.ifs[i].p
	if p == 0 {
		u.root = rep
	} else if pi := &u.ifs[p]; pi.l == i {
		pi.l = rep
	} else {
		pi.r = rep
	}
	if rep != 0 {
		u.ifs[rep].p = p
	}
}

// detach i from the tree without releasing it, splicing in its replacement.
// The replacement is the minimum of the right subtree, else the maximum of the
// left subtree. It has at most one child, so detaching it first is shallow.
// Returns the replacement, 0 when i was a leaf.
// Time: O(D)
func (u *base[T, S]) detach(i S) (rep S) {
	cur := &u.ifs[i]
	if cur.r != 0 {
		rep = u.minimum(cur.r)
	} else if cur.l != 0 {
		rep = u.maximum(cur.l)
	}
	if rep != 0 {
		u.detach(rep) //may rewrite cur.l or cur.r.
		rc := &u.ifs[rep]
		rc.l, rc.r = cur.l, cur.r
		if cur.l != 0 {
			u.ifs[cur.l].p = rep
		}
		if cur.r != 0 {
			u.ifs[cur.r].p = rep
		}
	}
	u.reconnect(i, rep)
	*cur = info[S]{}
	return
}

// size of the subtree at i, recursively.
func (u *base[T, S]) size(i S) uint {
	if i == 0 {
		return 0
	}
	return 1 + u.size(u.ifs[i].l) + u.size(u.ifs[i].r)
}

// height of the subtree at i; a leaf has height 0.
func (u *base[T, S]) height(i S) int {
	cur := u.ifs[i]
	if cur.l == 0 && cur.r == 0 {
		return 0
	}
	var lh, rh int
	if cur.l != 0 {
		lh = u.height(cur.l)
	}
	if cur.r != 0 {
		rh = u.height(cur.r)
	}
	return 1 + max(lh, rh)
}
