package Trees

// Search [Tree.Search]. With duplicates, the match closest to the receiver
// is returned, which isn't necessarily the first one inserted.
// Time: O(D); Space: O(1)
func (n Node[T, S]) Search(v T) (Node[T, S], bool) {
	u := n.t
	for curI := n.i; curI != 0; {
		if cv := *u.getV(curI); v < cv {
			curI = u.getIf(curI).l
		} else if v > cv {
			curI = u.getIf(curI).r
		} else {
			return Node[T, S]{u, curI}, true
		}
	}
	return Node[T, S]{u, 0}, false
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (n Node[T, S]) Contains(v T) bool {
	_, has := n.Search(v)
	return has
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (n Node[T, S]) Minimum() Node[T, S] {
	return Node[T, S]{n.t, n.t.minimum(n.i)}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (n Node[T, S]) Maximum() Node[T, S] {
	return Node[T, S]{n.t, n.t.maximum(n.i)}
}

// Depth [Tree.Depth]
// Time: O(D); Space: O(1)
func (n Node[T, S]) Depth() (edges int) {
	for p := n.t.getIf(n.i).p; p != 0; p = n.t.getIf(p).p {
		edges++
	}
	return
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (n Node[T, S]) Height() int {
	return n.t.height(n.i)
}

// Predecessor [Tree.Predecessor]. Without a left subtree, it is the
// nearest ancestor holding a strictly smaller value.
// Time: O(D); Space: O(1)
func (n Node[T, S]) Predecessor() (Node[T, S], bool) {
	u := n.t
	if l := u.getIf(n.i).l; l != 0 {
		return Node[T, S]{u, u.maximum(l)}, true
	}
	v := *u.getV(n.i)
	for p := u.getIf(n.i).p; p != 0; p = u.getIf(p).p {
		if *u.getV(p) < v {
			return Node[T, S]{u, p}, true
		}
	}
	return Node[T, S]{u, 0}, false
}

// Successor [Tree.Successor]. Without a right subtree, it is the nearest
// ancestor holding a strictly greater value.
// Time: O(D); Space: O(1)
func (n Node[T, S]) Successor() (Node[T, S], bool) {
	u := n.t
	if r := u.getIf(n.i).r; r != 0 {
		return Node[T, S]{u, u.minimum(r)}, true
	}
	v := *u.getV(n.i)
	for p := u.getIf(n.i).p; p != 0; p = u.getIf(p).p {
		if *u.getV(p) > v {
			return Node[T, S]{u, p}, true
		}
	}
	return Node[T, S]{u, 0}, false
}
