package bptree

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"testing"
)

func stringTree(t *testing.T) *Tree[string, int] {
	t.Helper()
	tr, err := NewOrdered[string, int]()
	if err != nil {
		t.Fatalf("NewOrdered failed: %v", err)
	}
	return tr
}

func TestNewOrderedDefaults(t *testing.T) {
	tr := stringTree(t)
	if tr.Count() != 0 {
		t.Fatalf("expected empty tree, got count %d", tr.Count())
	}
	if tr.capInternal != DefaultInternalCapacity || tr.capLeaf != DefaultLeafCapacity {
		t.Fatalf("expected default capacities, got %d/%d", tr.capInternal, tr.capLeaf)
	}
}

func TestNewRejectsNilComparator(t *testing.T) {
	_, err := New[string, int](nil)
	var bErr *Error
	if !errors.As(err, &bErr) || bErr.Kind != KindBadArgument {
		t.Fatalf("expected BadArgument, got %v", err)
	}
}

// S1 — Empty tree.
func TestEmptyTree(t *testing.T) {
	tr := stringTree(t)
	if tr.Count() != 0 {
		t.Fatalf("expected count 0, got %d", tr.Count())
	}
	it := tr.Iterate()
	if _, ok, err := it.Next(); ok || err != nil {
		t.Fatalf("expected empty traversal, got ok=%v err=%v", ok, err)
	}
	if got := tr.IndexOf("x"); got != ^0 {
		t.Fatalf("IndexOf on empty tree = %d, want %d", got, ^0)
	}
}

// S2 — Single insert.
func TestSingleInsert(t *testing.T) {
	tr := stringTree(t)
	if err := tr.Add("3", 3); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if tr.Count() != 1 {
		t.Fatalf("expected count 1, got %d", tr.Count())
	}
	if v, err := tr.Get("3"); err != nil || v != 3 {
		t.Fatalf("Get(3) = (%d, %v)", v, err)
	}
	if got := tr.IndexOf("3"); got != 0 {
		t.Fatalf("IndexOf(3) = %d, want 0", got)
	}
	if got := tr.IndexOf("2"); got != ^0 {
		t.Fatalf("IndexOf(2) = %d, want %d", got, ^0)
	}
	if got := tr.IndexOf("4"); got != ^1 {
		t.Fatalf("IndexOf(4) = %d, want %d", got, ^1)
	}
}

// S3 — Two keys, reverse insertion order.
func TestTwoKeysReverseOrder(t *testing.T) {
	tr := stringTree(t)
	must(t, tr.Add("3", 3))
	must(t, tr.Add("2", 2))

	var got []Entry[string, int]
	it := tr.Iterate()
	for {
		e, ok, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected traversal error: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, e)
	}
	want := []Entry[string, int]{{"2", 2}, {"3", 3}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("traversal = %v, want %v", got, want)
	}

	if idx := tr.IndexOf("3"); idx != 1 {
		t.Fatalf("IndexOf(3) = %d, want 1", idx)
	}
	if idx := tr.IndexOf("1"); idx != ^0 {
		t.Fatalf("IndexOf(1) = %d, want %d", idx, ^0)
	}
	if idx := tr.IndexOf("5"); idx != ^2 {
		t.Fatalf("IndexOf(5) = %d, want %d", idx, ^2)
	}
}

// S4 — Mutation mid-traversal invalidates the iterator.
func TestTraversalInvalidatedByMutation(t *testing.T) {
	tr := stringTree(t)
	must(t, tr.Add("3", 3))

	it := tr.Iterate()
	e, ok, err := it.Next()
	if err != nil || !ok || e.Key != "3" {
		t.Fatalf("expected first entry 3, got %v ok=%v err=%v", e, ok, err)
	}

	must(t, tr.Add("2", 2))

	_, _, err = it.Next()
	var bErr *Error
	if !errors.As(err, &bErr) || bErr.Kind != KindCollectionModified {
		t.Fatalf("expected CollectionModified, got %v", err)
	}
}

// S5 — Forced depth growth over "0".."256".
func TestForcedDepthGrowth(t *testing.T) {
	tr := stringTree(t)
	for i := 0; i <= 256; i++ {
		must(t, tr.Add(strconv.Itoa(i), i))
	}
	if tr.Count() != 257 {
		t.Fatalf("expected count 257, got %d", tr.Count())
	}
	if v, err := tr.Get("0"); err != nil || v != 0 {
		t.Fatalf("Get(0) = (%d, %v)", v, err)
	}
	if v, err := tr.Get("256"); err != nil || v != 256 {
		t.Fatalf("Get(256) = (%d, %v)", v, err)
	}

	it := tr.Iterate()
	prev, _, err := it.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count := 1
	for {
		e, ok, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		if e.Key <= prev.Key {
			t.Fatalf("traversal not ascending: %q then %q", prev.Key, e.Key)
		}
		prev = e
		count++
	}
	if count != 257 {
		t.Fatalf("traversal yielded %d entries, want 257", count)
	}
}

// S6 — Large adversarial order: 500 upserts from [0,3000), seed 42.
func TestAdversarialOrder(t *testing.T) {
	tr, err := NewOrdered[int, int]()
	if err != nil {
		t.Fatalf("NewOrdered failed: %v", err)
	}

	r := rand.New(rand.NewSource(42))
	seen := make(map[int]bool)
	for len(seen) < 500 {
		k := r.Intn(3000)
		if seen[k] {
			continue
		}
		seen[k] = true
		tr.Set(k, k*10)
	}

	if tr.Count() != 500 {
		t.Fatalf("expected count 500, got %d", tr.Count())
	}
	if err := tr.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	var keys []int
	it := tr.Iterate()
	for {
		e, ok, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		if len(keys) > 0 && e.Key <= keys[len(keys)-1] {
			t.Fatalf("traversal not ascending at %d after %d", e.Key, keys[len(keys)-1])
		}
		keys = append(keys, e.Key)
	}
	if len(keys) != 500 {
		t.Fatalf("traversal yielded %d keys, want 500", len(keys))
	}

	for pos, k := range keys {
		if idx := tr.IndexOf(k); idx != pos {
			t.Fatalf("IndexOf(%d) = %d, want %d", k, idx, pos)
		}
	}
}

func TestAddDuplicateFails(t *testing.T) {
	tr := stringTree(t)
	must(t, tr.Add("a", 1))
	err := tr.Add("a", 2)
	var bErr *Error
	if !errors.As(err, &bErr) || bErr.Kind != KindDuplicateKey {
		t.Fatalf("expected DuplicateKey, got %v", err)
	}
	if v, _ := tr.Get("a"); v != 1 {
		t.Fatalf("Add on duplicate must leave tree unchanged, got value %d", v)
	}
}

func TestSetUpserts(t *testing.T) {
	tr := stringTree(t)
	tr.Set("a", 1)
	tr.Set("a", 2)
	if tr.Count() != 1 {
		t.Fatalf("expected count 1 after upsert, got %d", tr.Count())
	}
	if v, err := tr.Get("a"); err != nil || v != 2 {
		t.Fatalf("Get(a) = (%d, %v), want 2", v, err)
	}
}

func TestGetMissingFails(t *testing.T) {
	tr := stringTree(t)
	_, err := tr.Get("missing")
	var bErr *Error
	if !errors.As(err, &bErr) || bErr.Kind != KindKeyNotFound {
		t.Fatalf("expected KeyNotFound, got %v", err)
	}
	if v, ok := tr.TryGet("missing"); ok || v != 0 {
		t.Fatalf("TryGet(missing) = (%d, %v), want (0, false)", v, ok)
	}
}

func TestRemove(t *testing.T) {
	tr := stringTree(t)
	for i := 0; i < 50; i++ {
		must(t, tr.Add(strconv.Itoa(i), i))
	}
	if !tr.Remove("10") {
		t.Fatal("expected Remove(10) to succeed")
	}
	if tr.Remove("10") {
		t.Fatal("expected second Remove(10) to fail")
	}
	if tr.Count() != 49 {
		t.Fatalf("expected count 49, got %d", tr.Count())
	}
	if _, err := tr.Get("10"); err == nil {
		t.Fatal("expected Get(10) to fail after removal")
	}
	if err := tr.Validate(); err != nil {
		t.Fatalf("Validate failed after removal: %v", err)
	}
}

func TestEntryAtAndIndexOfRoundTrip(t *testing.T) {
	tr := stringTree(t)
	for i := 0; i < 300; i++ {
		must(t, tr.Add(fmt.Sprintf("k%04d", i), i))
	}
	for i := 0; i < 300; i++ {
		key := fmt.Sprintf("k%04d", i)
		idx := tr.IndexOf(key)
		if idx < 0 {
			t.Fatalf("IndexOf(%s) unexpectedly negative: %d", key, idx)
		}
		e, err := tr.EntryAt(idx)
		if err != nil {
			t.Fatalf("EntryAt(%d) failed: %v", idx, err)
		}
		if e.Key != key {
			t.Fatalf("EntryAt(%d).Key = %s, want %s", idx, e.Key, key)
		}
	}
}

func TestEntryAtOutOfRange(t *testing.T) {
	tr := stringTree(t)
	must(t, tr.Add("a", 1))

	var bErr *Error
	if _, err := tr.EntryAt(-1); !errors.As(err, &bErr) || bErr.Kind != KindOutOfRange {
		t.Fatalf("expected OutOfRange for negative index, got %v", err)
	}
	if _, err := tr.EntryAt(1); !errors.As(err, &bErr) || bErr.Kind != KindOutOfRange {
		t.Fatalf("expected OutOfRange for index == count, got %v", err)
	}
}

func TestClear(t *testing.T) {
	tr := stringTree(t)
	must(t, tr.Add("a", 1))
	tr.Clear()
	if tr.Count() != 0 {
		t.Fatalf("expected count 0 after Clear, got %d", tr.Count())
	}
	if tr.ContainsKey("a") {
		t.Fatal("expected key gone after Clear")
	}
}

func TestContainsValue(t *testing.T) {
	tr := stringTree(t)
	must(t, tr.Add("a", 1))
	must(t, tr.Add("b", 2))
	if !tr.ContainsValue(2) {
		t.Fatal("expected ContainsValue(2) to be true")
	}
	if tr.ContainsValue(3) {
		t.Fatal("expected ContainsValue(3) to be false")
	}
}

func TestWithEntriesDuplicateFails(t *testing.T) {
	_, err := New[string, int](func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}, WithEntries([]Entry[string, int]{{"a", 1}, {"a", 2}}))
	var bErr *Error
	if !errors.As(err, &bErr) || bErr.Kind != KindDuplicateKey {
		t.Fatalf("expected DuplicateKey from WithEntries, got %v", err)
	}
}

func TestKeyViewAndValueViewIndexing(t *testing.T) {
	tr := stringTree(t)
	for i := 0; i < 20; i++ {
		must(t, tr.Add(fmt.Sprintf("k%02d", i), i))
	}
	if k, err := tr.Keys().At(5); err != nil || k != "k05" {
		t.Fatalf("Keys().At(5) = (%s, %v)", k, err)
	}
	if v, err := tr.Values().At(5); err != nil || v != 5 {
		t.Fatalf("Values().At(5) = (%d, %v)", v, err)
	}
	if !tr.Keys().Contains("k05") {
		t.Fatal("expected Keys().Contains(k05)")
	}
	if err := tr.Keys().Add("k99"); err == nil {
		t.Fatal("expected KeyView.Add to fail")
	}
}

func TestValidateDetectsCorruptedTotal(t *testing.T) {
	tr := stringTree(t)
	for i := 0; i < 40; i++ {
		must(t, tr.Add(strconv.Itoa(i), i))
	}
	tr.root.total += 1 // corrupt deliberately

	err := tr.Validate()
	var bErr *Error
	if !errors.As(err, &bErr) || bErr.Kind != KindStructuralInvariant {
		t.Fatalf("expected StructuralInvariant, got %v", err)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
