package Queues

// circArrQ is a ring buffer. head is the index of the first item; the items
// occupy sz slots from head, wrapping around the end of content.
type circArrQ[T any] struct {
	sz, head uint
	content  []T
}

func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, make([]T, initCap)}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

// resize moves the items to the front of a new array of newLen slots.
// newLen mustn't be less than sz.
func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if end := this.head + this.sz; end <= uint(len(this.content)) {
		copy(nc, this.content[this.head:end])
	} else {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:end-uint(len(this.content))])
	}
	this.head, this.content = 0, nc
}

func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.head, this.sz = 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

// Push appends item, growing the array by half when it is full.
// Time: amortized O(1)
func (this *circArrQ[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz + this.sz>>1 + 1)
	}
	this.content[(this.head+this.sz)%uint(len(this.content))] = item
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	item = this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return item, nil
}

func (this circArrQ[T]) Peek() (item T, has bool) {
	if this.Empty() {
		return
	}
	return this.content[this.head], true
}
