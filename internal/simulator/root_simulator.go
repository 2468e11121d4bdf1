// Package simulator recomputes a compressed proof's root from raw hex wire
// values rather than the smt package's typed Digest/BitPath API, giving
// callers who only hold JSON/hex fixtures (e.g. a value transplanted from a
// witness JSON by hand) an independent way to cross-check smt.VerifyInclusionProof.
package simulator

import (
	"fmt"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/unicitynetwork/zkvm-ndsmt/internal/testutils"
)

// RootSimulator recomputes an SMT root from hex-encoded proof components,
// independent of the tree's own in-memory types.
type RootSimulator struct{}

// NewRootSimulator creates a RootSimulator.
func NewRootSimulator() *RootSimulator {
	return &RootSimulator{}
}

// ComputeRoot reconstructs a root from a leaf digest, the key it sits at,
// a bitmap of which levels carry a non-default sibling, and the chain of
// those siblings — the same compressed-proof shape smt.CompressedProof
// uses, here expressed entirely in hex strings.
func (s *RootSimulator) ComputeRoot(depth uint16, leaf, key, bitmap string, siblings []string) (string, error) {
	if depth > 256 {
		return "", fmt.Errorf("simulator: invalid tree depth: %d, maximum is 256", depth)
	}

	leafBytes, err := testutils.HexToBytes(leaf)
	if err != nil {
		return "", fmt.Errorf("simulator: invalid leaf hex: %w", err)
	}
	keyBig, err := testutils.HexToBigInt(key)
	if err != nil {
		return "", fmt.Errorf("simulator: invalid key hex: %w", err)
	}
	bitmapBig, err := testutils.HexToBigInt(bitmap)
	if err != nil {
		return "", fmt.Errorf("simulator: invalid bitmap hex: %w", err)
	}

	maxKey := new(big.Int).Lsh(big.NewInt(1), uint(depth))
	if keyBig.Cmp(maxKey) >= 0 {
		return "", fmt.Errorf("simulator: key %s out of range for depth %d", key, depth)
	}

	siblingBytes := make([][]byte, len(siblings))
	for i, sib := range siblings {
		siblingBytes[i], err = testutils.HexToBytes(sib)
		if err != nil {
			return "", fmt.Errorf("simulator: invalid sibling hex at index %d: %w", i, err)
		}
	}

	current := make([]byte, 32)
	copy(current, leafBytes)

	chainIdx := 0
	for level := uint16(0); level < depth; level++ {
		var sibling []byte
		if bitmapBig.Bit(int(level)) == 1 {
			if chainIdx >= len(siblingBytes) {
				return "", fmt.Errorf("simulator: chain shorter than bitmap requires: need index %d, have %d", chainIdx, len(siblingBytes))
			}
			sibling = siblingBytes[chainIdx]
			chainIdx++
		} else {
			sibling = make([]byte, 32)
		}

		if keyBig.Bit(int(level)) == 0 {
			current = s.combine(current, sibling)
		} else {
			current = s.combine(sibling, current)
		}
	}
	if chainIdx != len(siblingBytes) {
		return "", fmt.Errorf("simulator: chain longer than bitmap requires")
	}

	return testutils.BytesToHex(current), nil
}

// combine reproduces smt.Combine's EMPTY short-circuit using sha256-simd
// directly, rather than importing the smt package — the two must never
// diverge, which is exactly what makes this package useful as a
// cross-check rather than a restatement.
func (s *RootSimulator) combine(left, right []byte) []byte {
	if s.isZero(left) {
		return right
	}
	if s.isZero(right) {
		return left
	}
	h := sha256simd.New()
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}

func (s *RootSimulator) isZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}

// ValidateInputs checks that every hex-encoded component is well-formed and
// in range, without computing a root.
func (s *RootSimulator) ValidateInputs(depth uint16, leaf, key, bitmap string, siblings []string) error {
	if depth > 256 {
		return fmt.Errorf("simulator: invalid tree depth: %d, maximum is 256", depth)
	}
	if _, err := testutils.HexToBytes(leaf); err != nil {
		return fmt.Errorf("simulator: invalid leaf hex format: %w", err)
	}

	keyBig, err := testutils.HexToBigInt(key)
	if err != nil {
		return fmt.Errorf("simulator: invalid key hex format: %w", err)
	}
	maxKey := new(big.Int).Lsh(big.NewInt(1), uint(depth))
	if keyBig.Cmp(maxKey) >= 0 {
		return fmt.Errorf("simulator: key %s out of range for depth %d", key, depth)
	}

	if _, err := testutils.HexToBigInt(bitmap); err != nil {
		return fmt.Errorf("simulator: invalid bitmap hex format: %w", err)
	}

	for i, sib := range siblings {
		if _, err := testutils.HexToBytes(sib); err != nil {
			return fmt.Errorf("simulator: invalid sibling hex format at index %d: %w", i, err)
		}
	}

	return nil
}
