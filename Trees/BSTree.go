package Trees

import (
	"cmp"

	"github.com/golang/glog"
	"golang.org/x/exp/constraints"
)

// BSTree is the arena holding every node of one binary search tree. Values
// in a left subtree are less than the node's value, values in a right subtree
// are greater than or equal to it, so duplicates are kept and go right.
// The tree never rebalances itself; insert values in randomized order to
// keep the height near log2(n). Sorted input degrades it to a list.
// S is the type used for node indexes, it must be wide enough to index
// every node ever alive at once plus the nil sentinel.
// A BSTree isn't safe for concurrent mutation.
type BSTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// Node is a handle to a node in a BSTree. The zero value is meaningless.
// A handle of a removed node must not be used again; its slot is recycled
// by later insertions.
type Node[T cmp.Ordered, S constraints.Unsigned] struct {
	t *BSTree[T, S]
	i S
}

// New creates a single node tree holding v and returns its root.
func New[T cmp.Ordered, S constraints.Unsigned](v T) Node[T, S] {
	return Make[T, S](v, 1)
}

// Make is New with room reserved for hint nodes.
func Make[T cmp.Ordered, S constraints.Unsigned](v T, hint S) Node[T, S] {
	u := &BSTree[T, S]{makeBase[T, S](hint)}
	u.root = u.alloc(v, 0)
	return Node[T, S]{u, u.root}
}

// From builds a tree by taking vs[0] as the root and inserting the rest in
// order. Returns *EmptyInputError if vs is empty. No rebalancing happens, so
// shuffle vs first if its order is correlated.
// Time: O(n*D)
func From[T cmp.Ordered, S constraints.Unsigned](vs []T) (Node[T, S], error) {
	if len(vs) == 0 {
		return Node[T, S]{}, &EmptyInputError{}
	}
	root := Make[T, S](vs[0], S(len(vs)))
	for _, v := range vs[1:] {
		root.Insert(v)
	}
	if glog.V(2) {
		glog.Infof("built tree of %d nodes with height %d", len(vs), root.Height())
	}
	return root, nil
}

// Root of the tree. false when every node has been removed.
func (u *BSTree[T, S]) Root() (Node[T, S], bool) {
	return Node[T, S]{u, u.root}, u.root != 0
}

// Len is the number of nodes attached to the tree.
// Time: O(1)
func (u *BSTree[T, S]) Len() S {
	return u.live
}

func (n Node[T, S]) handle(i S) (Node[T, S], bool) {
	return Node[T, S]{n.t, i}, i != 0
}

// Tree that the node belongs to.
func (n Node[T, S]) Tree() *BSTree[T, S] {
	return n.t
}

func (n Node[T, S]) Value() T {
	return *n.t.getV(n.i)
}

func (n Node[T, S]) Parent() (Node[T, S], bool) {
	return n.handle(n.t.getIf(n.i).p)
}

func (n Node[T, S]) Left() (Node[T, S], bool) {
	return n.handle(n.t.getIf(n.i).l)
}

func (n Node[T, S]) Right() (Node[T, S], bool) {
	return n.handle(n.t.getIf(n.i).r)
}

func (n Node[T, S]) IsRoot() bool {
	return n.t.getIf(n.i).p == 0
}

func (n Node[T, S]) IsLeaf() bool {
	cur := n.t.getIf(n.i)
	return cur.l == 0 && cur.r == 0
}

// IsLeftChild compares indexes, not values, so equal values in both children
// can't confuse it.
func (n Node[T, S]) IsLeftChild() bool {
	p := n.t.getIf(n.i).p
	return p != 0 && n.t.getIf(p).l == n.i
}

func (n Node[T, S]) IsRightChild() bool {
	p := n.t.getIf(n.i).p
	return p != 0 && n.t.getIf(p).r == n.i
}

func (n Node[T, S]) HasLeftChild() bool {
	return n.t.getIf(n.i).l != 0
}

func (n Node[T, S]) HasRightChild() bool {
	return n.t.getIf(n.i).r != 0
}

func (n Node[T, S]) HasAnyChild() bool {
	return n.HasLeftChild() || n.HasRightChild()
}

func (n Node[T, S]) HasBothChildren() bool {
	return n.HasLeftChild() && n.HasRightChild()
}

// Size [Tree.Size]. Recursive, nothing is cached.
// Time: O(n)
func (n Node[T, S]) Size() uint {
	return n.t.size(n.i)
}

// Insert [Tree.Insert]. Returns the new leaf.
// Only inserting at the root keeps the whole tree ordered; inserting below
// it keeps the order local to that subtree.
// Time: O(D)
func (n Node[T, S]) Insert(v T) Node[T, S] {
	u := n.t
	for curI := n.i; ; {
		cur := u.getIf(curI)
		next := &cur.r
		if v < *u.getV(curI) {
			next = &cur.l
		}
		if *next == 0 {
			// alloc may grow ifs, so store through the index afterwards.
			left := next == &cur.l
			i := u.alloc(v, curI)
			if left {
				u.getIf(curI).l = i
			} else {
				u.getIf(curI).r = i
			}
			return Node[T, S]{u, i}
		}
		curI = *next
	}
}

// Remove [Tree.Remove]. The replacement is the minimum of the right subtree,
// else the maximum of the left subtree; it takes over the receiver's children
// and position, becoming the root when the receiver was the root. Returns
// (x, false) when the receiver was a leaf. The receiver ends up with no
// parent and no children and must not be used afterwards.
// Time: O(D)
func (n Node[T, S]) Remove() (Node[T, S], bool) {
	rep := n.t.detach(n.i)
	n.t.release(n.i)
	if glog.V(3) {
		glog.Infof("removed node %d, replaced by %d", n.i, rep)
	}
	return n.handle(rep)
}
