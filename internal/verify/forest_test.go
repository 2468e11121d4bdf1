package verify

import "testing"

func isZero(b [32]byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

func testCombine(l, r [32]byte) [32]byte {
	if isZero(l) {
		return r
	}
	if isZero(r) {
		return l
	}
	var out [32]byte
	for i := range out {
		out[i] = l[i] ^ r[i] ^ 0xFF
	}
	return out
}

func digest(b byte) [32]byte {
	var d [32]byte
	d[31] = b
	return d
}

func TestComputeForestSingleLeaf(t *testing.T) {
	// depth 2, one leaf at path "00" with value 7: every other leaf is
	// empty, so the whole tree collapses via the short-circuit to the
	// leaf's own value.
	root := ComputeForest(testCombine, 2, nil, []Leaf{{Path: "00", Value: digest(7)}})
	if root != digest(7) {
		t.Fatalf("root = %v, want %v", root, digest(7))
	}
}

func TestComputeForestTwoSiblingLeaves(t *testing.T) {
	// depth 2, leaves at "00" and "01": siblings of each other, so they
	// coalesce locally without consulting proof.
	leaves := []Leaf{{Path: "00", Value: digest(3)}, {Path: "01", Value: digest(5)}}
	root := ComputeForest(testCombine, 2, nil, leaves)
	want := testCombine(digest(3), digest(5)) // level-1 "0"; its sibling "1" is absent from proof (zero), so root = that
	if root != want {
		t.Fatalf("root = %v, want %v", root, want)
	}
}

func TestComputeForestUsesProofForNonLocalSibling(t *testing.T) {
	// depth 2, one leaf at "00"; the proof supplies a non-default digest
	// for its sibling "01" and for the untouched half "1".
	proof := map[string][32]byte{
		"01": digest(9),
		"1":  digest(11),
	}
	root := ComputeForest(testCombine, 2, proof, []Leaf{{Path: "00", Value: digest(3)}})
	left := testCombine(digest(3), digest(9))
	want := testCombine(left, digest(11))
	if root != want {
		t.Fatalf("root = %v, want %v", root, want)
	}
}

func TestNonDeletion(t *testing.T) {
	proof := map[string][32]byte{
		"01": digest(9),
		"1":  digest(11),
	}
	oldRoot := ComputeForest(testCombine, 2, proof, []Leaf{{Path: "00", Value: [32]byte{}}})
	newRoot := ComputeForest(testCombine, 2, proof, []Leaf{{Path: "00", Value: digest(3)}})

	ok := NonDeletion(testCombine, 2, proof, oldRoot, newRoot, []string{"00"}, [][32]byte{digest(3)})
	if !ok {
		t.Fatal("NonDeletion should succeed for a consistent proof/root pair")
	}

	if NonDeletion(testCombine, 2, proof, newRoot, oldRoot, []string{"00"}, [][32]byte{digest(3)}) {
		t.Fatal("NonDeletion should fail when old and new roots are swapped")
	}
}
