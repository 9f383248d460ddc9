package cmd

import (
	"math/rand"

	"github.com/segmentio/ksuid"

	"github.com/ordindex/ordindex/pkg/bptree"
)

// buildDemoTree deterministically generates cfg.Bench.Entries distinct
// integer keys (at most cfg.Bench.KeySpan of them) in
// [0, cfg.Bench.KeySpan) from a PRNG seeded with cfg.Bench.Seed, upserting
// each with a freshly minted ksuid as its value.
func buildDemoTree() (*bptree.Tree[int, ksuid.KSUID], error) {
	tr, err := bptree.NewOrdered[int, ksuid.KSUID](
		bptree.WithCapacities[int, ksuid.KSUID](cfg.Tree.InternalCapacity, cfg.Tree.LeafCapacity),
	)
	if err != nil {
		return nil, err
	}

	want := cfg.Bench.Entries
	if cfg.Bench.KeySpan > 0 && want > cfg.Bench.KeySpan {
		want = cfg.Bench.KeySpan
	}

	r := rand.New(rand.NewSource(cfg.Bench.Seed))
	seen := make(map[int]bool, want)
	for len(seen) < want {
		k := r.Intn(cfg.Bench.KeySpan)
		if seen[k] {
			continue
		}
		seen[k] = true
		tr.Set(k, ksuid.New())
	}
	return tr, nil
}
