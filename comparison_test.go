package btset_test

import (
	"math/rand"
	"testing"

	gbtree "github.com/google/btree"
	tbtree "github.com/tidwall/btree"

	"btset"
)

// Benchmarks against the two most common in-memory B-tree libraries. The
// degree is matched to google/btree's recommended default; tidwall/btree
// fixes its own fanout internally.

const (
	benchDegree  = 32
	benchNumKeys = 100_000
)

func benchKeys(n int) []int {
	r := rand.New(rand.NewSource(42))
	return r.Perm(n)
}

// Insert benchmarks

func BenchmarkRandomInsert_Btset(b *testing.B) {
	set, _ := btset.New[int](benchDegree)
	r := rand.New(rand.NewSource(42))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		set.Add(r.Int())
	}
}

func BenchmarkRandomInsert_GoogleBtree(b *testing.B) {
	tree := gbtree.NewOrderedG[int](benchDegree)
	r := rand.New(rand.NewSource(42))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.ReplaceOrInsert(r.Int())
	}
}

func BenchmarkRandomInsert_TidwallBtree(b *testing.B) {
	var tree tbtree.Set[int]
	r := rand.New(rand.NewSource(42))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Insert(r.Int())
	}
}

func BenchmarkSequentialInsert_Btset(b *testing.B) {
	set, _ := btset.New[int](benchDegree)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		set.Add(i)
	}
}

func BenchmarkSequentialInsert_GoogleBtree(b *testing.B) {
	tree := gbtree.NewOrderedG[int](benchDegree)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.ReplaceOrInsert(i)
	}
}

func BenchmarkSequentialInsert_TidwallBtree(b *testing.B) {
	var tree tbtree.Set[int]
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Insert(i)
	}
}

// Lookup benchmarks

func BenchmarkContains_Btset(b *testing.B) {
	keys := benchKeys(benchNumKeys)
	set, _ := btset.New[int](benchDegree)
	for _, k := range keys {
		set.Add(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		set.Contains(keys[i%benchNumKeys])
	}
}

func BenchmarkContains_GoogleBtree(b *testing.B) {
	keys := benchKeys(benchNumKeys)
	tree := gbtree.NewOrderedG[int](benchDegree)
	for _, k := range keys {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Has(keys[i%benchNumKeys])
	}
}

func BenchmarkContains_TidwallBtree(b *testing.B) {
	keys := benchKeys(benchNumKeys)
	var tree tbtree.Set[int]
	for _, k := range keys {
		tree.Insert(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Contains(keys[i%benchNumKeys])
	}
}

// Iteration benchmarks (one op = full ascending scan)

func BenchmarkAscend_Btset(b *testing.B) {
	set, _ := btset.New[int](benchDegree)
	for _, k := range benchKeys(benchNumKeys) {
		set.Add(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		count := 0
		set.Ascend(func(int) bool {
			count++
			return true
		})
	}
}

func BenchmarkAscend_GoogleBtree(b *testing.B) {
	tree := gbtree.NewOrderedG[int](benchDegree)
	for _, k := range benchKeys(benchNumKeys) {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		count := 0
		tree.Ascend(func(int) bool {
			count++
			return true
		})
	}
}

func BenchmarkAscend_TidwallBtree(b *testing.B) {
	var tree tbtree.Set[int]
	for _, k := range benchKeys(benchNumKeys) {
		tree.Insert(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		count := 0
		tree.Scan(func(int) bool {
			count++
			return true
		})
	}
}

// Delete benchmarks (one op = delete + reinsert to keep the tree stable)

func BenchmarkDeleteInsert_Btset(b *testing.B) {
	keys := benchKeys(benchNumKeys)
	set, _ := btset.New[int](benchDegree)
	for _, k := range keys {
		set.Add(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := keys[i%benchNumKeys]
		set.Discard(k)
		set.Add(k)
	}
}

func BenchmarkDeleteInsert_GoogleBtree(b *testing.B) {
	keys := benchKeys(benchNumKeys)
	tree := gbtree.NewOrderedG[int](benchDegree)
	for _, k := range keys {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := keys[i%benchNumKeys]
		tree.Delete(k)
		tree.ReplaceOrInsert(k)
	}
}

func BenchmarkDeleteInsert_TidwallBtree(b *testing.B) {
	keys := benchKeys(benchNumKeys)
	var tree tbtree.Set[int]
	for _, k := range keys {
		tree.Insert(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := keys[i%benchNumKeys]
		tree.Delete(k)
		tree.Insert(k)
	}
}
