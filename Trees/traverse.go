package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/g-m-twostay/go-bst/Queues"
)

// The traversals keep their own stack, so a degenerate tree built from sorted
// input doesn't recurse n calls deep. The tree must not be modified by visit.

// TraverseInOrder [Tree.TraverseInOrder]. On a valid tree the values come in
// nondecreasing order.
// Time: O(n); Space: O(D)
func (n Node[T, S]) TraverseInOrder(visit func(T)) {
	n.walkInOrder(func(i S) { visit(*n.t.getV(i)) })
}

func (n Node[T, S]) walkInOrder(f func(S)) {
	u, st := n.t, arraystack.New()
	for curI := n.i; ; curI = u.getIf(curI).r {
		for ; curI != 0; curI = u.getIf(curI).l {
			st.Push(curI)
		}
		top, ok := st.Pop()
		if !ok {
			return
		}
		curI = top.(S)
		f(curI)
	}
}

// TraversePreOrder [Tree.TraversePreOrder]
// Time: O(n); Space: O(D)
func (n Node[T, S]) TraversePreOrder(visit func(T)) {
	u, st := n.t, arraystack.New()
	for st.Push(n.i); !st.Empty(); {
		top, _ := st.Pop()
		cur := *u.getIf(top.(S))
		visit(*u.getV(top.(S)))
		if cur.r != 0 {
			st.Push(cur.r)
		}
		if cur.l != 0 {
			st.Push(cur.l)
		}
	}
}

// TraversePostOrder [Tree.TraversePostOrder]
// Time: O(n); Space: O(D)
func (n Node[T, S]) TraversePostOrder(visit func(T)) {
	u, st := n.t, arraystack.New()
	var last S
	for curI := n.i; curI != 0 || !st.Empty(); {
		if curI != 0 {
			st.Push(curI)
			curI = u.getIf(curI).l
			continue
		}
		top, _ := st.Peek()
		if r := u.getIf(top.(S)).r; r != 0 && r != last {
			curI = r
		} else {
			st.Pop()
			last = top.(S)
			visit(*u.getV(last))
		}
	}
}

// TraverseLevelOrder calls visit level by level from the receiver down,
// left to right within a level.
// Time: O(n); Space: O(width)
func (n Node[T, S]) TraverseLevelOrder(visit func(T)) {
	u, q := n.t, Queues.MakeArrayQueue[S](16)
	for q.Push(n.i); !q.Empty(); {
		curI, _ := q.Pop()
		visit(*u.getV(curI))
		if cur := u.getIf(curI); cur.l != 0 {
			q.Push(cur.l)
		}
		if cur := u.getIf(curI); cur.r != 0 {
			q.Push(cur.r)
		}
	}
}

// Map returns f of every value in in-order. The result is a new slice.
// Time: O(n)
func (n Node[T, S]) Map(f func(T) T) []T {
	var a []T
	if n.i == n.t.root {
		a = make([]T, 0, n.t.live)
	}
	n.walkInOrder(func(i S) {
		a = append(a, f(*n.t.getV(i)))
	})
	return a
}

// ToSlice returns the values of the subtree in in-order.
func (n Node[T, S]) ToSlice() []T {
	return n.Map(func(v T) T { return v })
}
