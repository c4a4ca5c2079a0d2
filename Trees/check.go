package Trees

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/golang/glog"

	Go_Utils "github.com/g-m-twostay/go-bst"
)

// IsBST [Tree.IsBST]. Returns false if the receiver's value falls outside
// [min, max], then checks the left subtree against [min, value] and the right
// subtree against [value, max]. Recursive.
// Time: O(n)
func (n Node[T, S]) IsBST(min, max T) bool {
	return n.t.isBST(n.i, min, max)
}

func (u *base[T, S]) isBST(i S, min, max T) bool {
	v := *u.getV(i)
	if v < min || v > max {
		return false
	}
	cur := u.ifs[i]
	return (cur.l == 0 || u.isBST(cur.l, min, v)) && (cur.r == 0 || u.isBST(cur.r, v, max))
}

// bounds of the values allowed below an ancestor: lo <= v <= hi. Insert keeps
// left values strictly less, but Remove may lift the maximum of a left subtree
// above an equal value.
type bounds[T any, S any] struct {
	i            S
	lo, hi       T
	hasLo, hasHi bool
}

// Check [Tree.Check]. Walks the subtree verifying that children point back
// at their parent, that left values are at most and right values are at
// least every ancestor they descend from, and that no node is reached twice
// or after being released. From the root, it also verifies the arena's root
// and node count.
// Time: O(n); Space: O(n) bits plus O(D)
func (n Node[T, S]) Check() error {
	err := n.t.check(n.i)
	if err != nil {
		glog.V(1).Infof("check from node %d failed: %v", n.i, err)
	}
	return err
}

func (u *base[T, S]) check(from S) error {
	if from == 0 || int(from) >= len(u.ifs) {
		return &CorruptError{uint64(from), "index out of arena"}
	}
	seen := Go_Utils.New(len(u.ifs))
	seen.Up(0)
	for _, i := range u.free {
		if seen.Swap(int(i)) {
			return &CorruptError{uint64(i), "released twice"}
		}
	}
	isRoot := u.ifs[from].p == 0
	if isRoot && u.root != from {
		return &CorruptError{uint64(from), fmt.Sprintf("parentless but the root is %d", u.root)}
	}
	var count S
	st := arraystack.New()
	for st.Push(bounds[T, S]{i: from}); !st.Empty(); {
		top, _ := st.Pop()
		b := top.(bounds[T, S])
		if seen.Swap(int(b.i)) {
			return &CorruptError{uint64(b.i), "reached twice or after release"}
		}
		count++
		v := *u.getV(b.i)
		if b.hasLo && v < b.lo {
			return &CorruptError{uint64(b.i), fmt.Sprintf("%v is less than ancestor %v", v, b.lo)}
		}
		if b.hasHi && v > b.hi {
			return &CorruptError{uint64(b.i), fmt.Sprintf("%v is greater than ancestor %v", v, b.hi)}
		}
		cur := u.ifs[b.i]
		for _, c := range [2]S{cur.l, cur.r} {
			if int(c) >= len(u.ifs) {
				return &CorruptError{uint64(b.i), fmt.Sprintf("child %d out of arena", c)}
			}
			if c != 0 && u.ifs[c].p != b.i {
				return &CorruptError{uint64(c), fmt.Sprintf("parent is %d, want %d", u.ifs[c].p, b.i)}
			}
		}
		if cur.r != 0 {
			st.Push(bounds[T, S]{cur.r, v, b.hi, true, b.hasHi})
		}
		if cur.l != 0 {
			st.Push(bounds[T, S]{cur.l, b.lo, v, b.hasLo, true})
		}
	}
	if isRoot && count != u.live {
		return &CorruptError{uint64(from), fmt.Sprintf("reached %d nodes, arena holds %d", count, u.live)}
	}
	return nil
}
