package lexicodec

import (
	"bytes"
	"math/rand"
	"testing"
)

// sortedFixture mirrors the kind of cross-variant fixture the source
// project's test suite sorts by hand: one representative of each variant,
// already in the order Compare should agree with.
func sortedFixture() []Value {
	return []Value{
		nil,
		map[string]Value{"a": 1.0},
		map[string]Value{"b": 2.0},
		[]Value{1.0},
		[]Value{1.0, 2.0},
		[]Value{2.0},
		0.0,
		1.0,
		1e300,
		"",
		"a",
		"embedded\x00byte",
		"embedded\x01byte",
		"zzz",
		false,
		true,
	}
}

func TestFixtureSortedOrder(t *testing.T) {
	c := JSON
	fixture := sortedFixture()
	for i := 0; i < len(fixture); i++ {
		for j := i + 1; j < len(fixture); j++ {
			got, err := c.Compare(fixture[i], fixture[j])
			if err != nil {
				t.Fatalf("Compare(%#v, %#v): %v", fixture[i], fixture[j], err)
			}
			if got != -1 {
				t.Errorf("Compare(%#v, %#v) = %d, want -1 (fixture[%d] < fixture[%d])", fixture[i], fixture[j], got, i, j)
			}
		}
	}
}

// TestStressRandomTuples samples 1e5 random length-3 tuples built from the
// sorted fixture and checks that byte-order agrees with the rank-based
// comparison the fixture's own ordering implies.
func TestStressRandomTuples(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress test in -short mode")
	}

	c := JSON
	fixture := sortedFixture()

	r := rand.New(rand.NewSource(42))
	const samples = 100000

	randomTuple := func() ([]Value, []int) {
		idx := make([]int, 3)
		tuple := make([]Value, 3)
		for i := range tuple {
			idx[i] = r.Intn(len(fixture))
			tuple[i] = fixture[idx[i]]
		}
		return tuple, idx
	}

	tupleRankCompare := func(aIdx, bIdx []int) int {
		for i := range aIdx {
			if aIdx[i] != bIdx[i] {
				return sign(aIdx[i] - bIdx[i])
			}
		}
		return 0
	}

	for i := 0; i < samples; i++ {
		a, aIdx := randomTuple()
		b, bIdx := randomTuple()

		want := tupleRankCompare(aIdx, bIdx)

		got, err := c.Compare(a, b)
		if err != nil {
			t.Fatalf("Compare(%v, %v): %v", a, b, err)
		}
		if got != want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", a, b, got, want)
		}

		encA, err := c.Encode(a)
		if err != nil {
			t.Fatal(err)
		}
		encB, err := c.Encode(b)
		if err != nil {
			t.Fatal(err)
		}
		if sign(bytes.Compare(encA, encB)) != want {
			t.Fatalf("byteCompare(Encode(%v), Encode(%v)) disagreed with rank order", a, b)
		}
	}
}
