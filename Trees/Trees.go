// Package Trees implements an unbalanced binary search tree whose nodes keep
// a link to their parent. Nodes live in an arena and are addressed by index,
// so the parent link never owns anything.
package Trees

// Tree represents a tree like structure seen from one of its nodes. N is the
// handle type of a node; every operation works relative to the receiver, so
// a handle is simultaneously a subtree root and a handle of the whole tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, calling Predecessor on
// the overall minimum returns (x N, false bool), and x should not be used.
// Methods implemented recursively are noted, otherwise they are iterative.
// None of the methods synchronize; mutations must be serialized by the
// caller, while read-only methods may run concurrently with each other.
type Tree[T any, N any] interface {
	//Insert v under the receiver. Equal values go right.
	Insert(v T) N
	//Remove the receiver from its tree, returning the node that took its
	//position.
	Remove() (N, bool)
	//Search returns the highest node holding v in the subtree.
	Search(v T) (N, bool)
	//Contains reports whether v is in the subtree.
	Contains(v T) bool
	//Minimum node of the subtree. It always exists.
	Minimum() N
	//Maximum node of the subtree. It always exists.
	Maximum() N
	//Predecessor returns the node before the receiver in sorted order.
	Predecessor() (N, bool)
	//Successor returns the node after the receiver in sorted order.
	Successor() (N, bool)
	//Size of the subtree.
	Size() uint
	//Depth is the number of edges to the root.
	Depth() int
	//Height is the number of edges to the deepest leaf of the subtree.
	Height() int
	//TraverseInOrder calls visit on every value in ascending order.
	TraverseInOrder(visit func(T))
	//TraversePreOrder calls visit on a node before its children.
	TraversePreOrder(visit func(T))
	//TraversePostOrder calls visit on a node after its children.
	TraversePostOrder(visit func(T))
	//IsBST returns whether every value in the subtree lies in [min, max]
	//and the ordering holds below it.
	IsBST(min, max T) bool
	//Check returns an error describing the first corrupt structure found.
	//This is to be distinguished from whether the tree is balanced or not.
	Check() error
}

var _ Tree[int, Node[int, uint]] = Node[int, uint]{}
