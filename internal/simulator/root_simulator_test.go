package simulator

import (
	"math/big"
	"testing"

	smt "github.com/unicitynetwork/zkvm-ndsmt"
	"github.com/unicitynetwork/zkvm-ndsmt/internal/testutils"
)

// TestComputeRootMatchesTreeInclusionProof cross-checks the hex-only
// simulator against a real tree's own compressed proof for the same leaf:
// both must agree on the root.
func TestComputeRootMatchesTreeInclusionProof(t *testing.T) {
	tree, err := smt.NewSparseMerkleTree(nil, 8)
	if err != nil {
		t.Fatalf("NewSparseMerkleTree failed: %v", err)
	}
	key := big.NewInt(53)
	value := smt.DigestFromBigInt(big.NewInt(77))
	root, err := tree.Insert(key, value)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	proof, err := tree.GenerateProof(key)
	if err != nil {
		t.Fatalf("GenerateProof failed: %v", err)
	}

	siblings := make([]string, len(proof.Chain))
	for i, s := range proof.Chain {
		siblings[i] = s.String()
	}

	sim := NewRootSimulator()
	got, err := sim.ComputeRoot(tree.Depth(), value.String(), testutils.BigIntToHex(key), testutils.BigIntToHex(proof.Bitmap), siblings)
	if err != nil {
		t.Fatalf("ComputeRoot failed: %v", err)
	}
	if got != root.String() {
		t.Fatalf("simulator root = %s, want %s", got, root.String())
	}
}

func TestComputeRootRejectsOutOfRangeKey(t *testing.T) {
	sim := NewRootSimulator()
	_, err := sim.ComputeRoot(4, "0x00", "0x10", "0x00", nil)
	if err == nil {
		t.Fatal("key >= 2^depth should be rejected")
	}
}

func TestValidateInputsRejectsMalformedHex(t *testing.T) {
	sim := NewRootSimulator()
	if err := sim.ValidateInputs(4, "not-hex", "0x1", "0x0", nil); err == nil {
		t.Fatal("malformed leaf hex should be rejected")
	}
}
