package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN uint32 = 1 << 16
	bQryN        = bAddN / 2
)

func benchVals(b *testing.B) []int {
	b.Helper()
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	return all
}

func create(b *testing.B, all []int) Node[int, uint32] {
	b.Helper()
	root := Make[int, uint32](all[0], bAddN)
	for _, v := range all[1:] {
		root.Insert(v)
	}
	return root
}

func BenchmarkInsert(b *testing.B) {
	all := benchVals(b)
	b.ResetTimer()
	for range b.N {
		create(b, all)
	}
}

func BenchmarkInsert_BTree(b *testing.B) {
	all := benchVals(b)
	b.ResetTimer()
	for range b.N {
		tr := btree.NewOrderedG[int](32)
		for _, v := range all {
			tr.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkInsert_LLRB(b *testing.B) {
	all := benchVals(b)
	b.ResetTimer()
	for range b.N {
		tr := llrb.New()
		for _, v := range all {
			tr.InsertNoReplace(llrb.Int(v))
		}
	}
}

func BenchmarkInsert_RedBlack(b *testing.B) {
	all := benchVals(b)
	b.ResetTimer()
	for range b.N {
		tr := redblacktree.NewWithIntComparator()
		for _, v := range all {
			tr.Put(v, nil)
		}
	}
}

var sideEff bool

func BenchmarkSearch(b *testing.B) {
	all := benchVals(b)
	root := create(b, all)
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = root.Contains(v)
		}
	}
}

func BenchmarkSearch_BTree(b *testing.B) {
	all := benchVals(b)
	tr := btree.NewOrderedG[int](32)
	for _, v := range all {
		tr.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = tr.Has(v)
		}
	}
}

func BenchmarkRemove(b *testing.B) {
	all := benchVals(b)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		root := create(b, all)
		tree := root.Tree()
		b.StartTimer()
		for _, v := range all[:bQryN] {
			r, _ := tree.Root()
			if nd, has := r.Search(v); has {
				nd.Remove()
			}
		}
	}
}

// Sorted input turns the tree into a list, O(n) per insertion.
func BenchmarkInsertSorted(b *testing.B) {
	for range b.N {
		root := Make[int, uint32](0, 1<<12)
		for i := 1; i < 1<<12; i++ {
			root.Insert(i)
		}
	}
}
