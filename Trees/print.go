package Trees

import (
	"fmt"
	"io"
	"strings"
)

// String renders the subtree as "(left) <- value -> (right)", leaving out
// absent sides. It's meant for debugging and tests, not as a stable format.
// Recursive.
func (n Node[T, S]) String() string {
	var b strings.Builder
	n.t.describe(&b, n.i)
	return b.String()
}

func (u *base[T, S]) describe(b *strings.Builder, i S) {
	cur := u.ifs[i]
	if cur.l != 0 {
		b.WriteByte('(')
		u.describe(b, cur.l)
		b.WriteString(") <- ")
	}
	fmt.Fprint(b, *u.getV(i))
	if cur.r != 0 {
		b.WriteString(" -> (")
		u.describe(b, cur.r)
		b.WriteByte(')')
	}
}

// to control the print routine
type branch byte

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print draws the subtree sideways on w, right subtree above, one node per
// line with the value of its parent after '^'. Returns the number of levels
// drawn, which is Height()+1. Recursive.
func (n Node[T, S]) Print(w io.Writer) int {
	return n.t.print(w, n.i, "", rootBranch)
}

func (u *base[T, S]) print(w io.Writer, i S, prefix string, br branch) int {
	cur := u.ifs[i]
	ld, rd := 0, 0
	if cur.r != 0 {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = u.print(w, cur.r, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if cur.p != 0 {
		fmt.Fprintf(w, "%v ^%v\n", *u.getV(i), *u.getV(cur.p))
	} else {
		fmt.Fprintf(w, "%v\n", *u.getV(i))
	}
	if cur.l != 0 {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = u.print(w, cur.l, prefix+t, leftBranch)
	}
	return 1 + max(ld, rd)
}
