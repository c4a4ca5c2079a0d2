package Trees

import "fmt"

// EmptyInputError is returned when a tree is built from an empty sequence.
type EmptyInputError struct {
}

func (e *EmptyInputError) Error() string {
	return "Input is Empty: cannot build a tree."
}

// CorruptError reports the first node found violating a tree invariant.
type CorruptError struct {
	Index  uint64 // arena index of the node.
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt node %d: %s", e.Index, e.Reason)
}

// IndexOverflowError is the panic value of an insertion that needs more
// nodes than the index type can address.
type IndexOverflowError struct {
	Live uint64 // nodes already in the arena.
}

func (e *IndexOverflowError) Error() string {
	return fmt.Sprintf("index type exhausted: arena already holds %d nodes", e.Live)
}
