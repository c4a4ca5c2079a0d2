// Command measure builds trees from random or sorted input and reports how
// tall they grow and how long building and pruning them takes.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"testing"

	"github.com/golang/glog"

	"github.com/g-m-twostay/go-bst/Trees"
)

var (
	size   = flag.Int("n", 1<<14, "number of values to insert")
	sorted = flag.Bool("sorted", false, "insert ascending values instead of random ones")
	seed   = flag.Int64("seed", 0, "seed of the random values")
	prune  = flag.Float64("remove", 0.5, "fraction of the values removed after building")
	steps  = flag.Int("steps", 5, "number of timed rounds")
	draw   = flag.Bool("print", false, "draw the final tree on stdout")
)

func values(r *rand.Rand) []int {
	all := make([]int, *size)
	for i := range all {
		if *sorted {
			all[i] = i
		} else {
			all[i] = r.Int()
		}
	}
	return all
}

// run builds a tree from all and removes the first fraction of all from it.
func run(all []int) *Trees.BSTree[int, uint32] {
	root, err := Trees.From[int, uint32](all)
	if err != nil {
		glog.Fatalf("failed to build: %v", err)
	}
	tree := root.Tree()
	for _, v := range all[:int(float64(len(all))**prune)] {
		r, has := tree.Root()
		if !has {
			break
		}
		if nd, found := r.Search(v); found {
			nd.Remove()
		}
	}
	return tree
}

// leafDepths returns the number of leaves and the sum of their depths.
func leafDepths(n Trees.Node[int, uint32], d int) (leaves, sum int) {
	if n.IsLeaf() {
		return 1, d
	}
	for _, child := range []func() (Trees.Node[int, uint32], bool){n.Left, n.Right} {
		if c, has := child(); has {
			l, s := leafDepths(c, d+1)
			leaves, sum = leaves+l, sum+s
		}
	}
	return
}

func main() {
	testing.Init()
	flag.Parse()
	defer glog.Flush()

	if *size < 1 || *size >= math.MaxUint32 {
		glog.Fatalf("n must be in [1, %d)", uint32(math.MaxUint32))
	}
	if *prune < 0 || *prune > 1 {
		glog.Fatalf("remove must be in [0, 1], have %f", *prune)
	}
	all := values(rand.New(rand.NewSource(*seed)))

	var cs []float64
	for i := 0; i < *steps; i++ {
		br := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				run(all)
			}
		})
		cs = append(cs, float64(br.NsPerOp())/1e6)
		glog.Infof("round %d: %s", i, br)
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(len(cs))
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}

	tree := run(all)
	root, has := tree.Root()
	if !has {
		fmt.Println("tree is empty")
		return
	}
	if err := root.Check(); err != nil {
		glog.Errorf("tree is corrupt: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	leaves, depths := leafDepths(root, 0)
	fmt.Printf("size: %d, height: %d, average leaf depth: %f, log2(size): %f\n",
		root.Size(), root.Height(), float64(depths)/float64(leaves), math.Log2(float64(root.Size())))
	if len(cs) > 0 {
		fmt.Printf("average: %fms/op\n", avg)
		fmt.Printf("stddev: %fms/op\n", math.Sqrt(sum/float64(len(cs))))
	}
	if *draw {
		root.Print(os.Stdout)
	}
}
