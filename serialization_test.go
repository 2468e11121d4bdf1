package smt

import (
	"math/big"
	"testing"
)

func TestWitnessRoundTrip(t *testing.T) {
	tree, _ := NewSparseMerkleTree(nil, 16)
	keys := []*big.Int{big.NewInt(5), big.NewInt(9)}
	values := []Digest{DigestFromBigInt(big.NewInt(50)), DigestFromBigInt(big.NewInt(90))}

	oldRoot := tree.Root()
	proof, err := tree.BatchInsert(keys, values)
	if err != nil {
		t.Fatalf("BatchInsert failed: %v", err)
	}

	witness := BuildWitness(tree.Depth(), oldRoot, tree.Root(), keys, values, proof)
	if witness.Depth != tree.Depth() {
		t.Fatalf("witness depth = %d, want %d", witness.Depth, tree.Depth())
	}
	if len(witness.Keys) != 2 || witness.Keys[0].Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("witness keys should be sorted ascending, got %v", witness.Keys)
	}

	gotProof, err := witness.ToNonDeletionProof()
	if err != nil {
		t.Fatalf("ToNonDeletionProof failed: %v", err)
	}
	if len(gotProof) != len(proof) {
		t.Fatalf("round-tripped proof has %d entries, want %d", len(gotProof), len(proof))
	}
	for path, digest := range proof {
		got, ok := gotProof[path]
		if !ok || got != digest {
			t.Fatalf("round-tripped proof entry %q = %v, want %v", path, got, digest)
		}
	}

	ok, err := VerifyNonDeletion(gotProof, tree.Depth(), oldRoot, tree.Root(), keys, values)
	if err != nil || !ok {
		t.Fatalf("VerifyNonDeletion on round-tripped proof failed: ok=%v err=%v", ok, err)
	}
}

func TestWitnessRejectsOverDepthProofPath(t *testing.T) {
	w := &SerializedWitness{
		Depth: 2,
		Proof: []map[string]*big.Int{
			{}, {}, {"0": big.NewInt(1)},
		},
	}
	if _, err := w.ToNonDeletionProof(); err == nil {
		t.Fatal("a proof bucket beyond the declared depth should be rejected")
	}
}
