package smt

import (
	"math/big"
)

// LongProof generates the uncompressed, per-level proof for key: one digest
// per level 0..D-1, default or not. This exists for debugging;
// GenerateProof's compressed form is what production callers should use.
func (t *SparseMerkleTree) LongProof(key *big.Int) (*LongProof, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if err := t.validateKey(key); err != nil {
		return nil, err
	}

	siblings := make([]Digest, t.depth)
	cur := KeyPath(key, t.depth)
	for level := uint16(0); level < t.depth; level++ {
		siblings[level] = t.nodeAt(cur.Sibling())
		cur = cur.Parent()
	}
	return &LongProof{Siblings: siblings}, nil
}

// GenerateProof returns the compressed inclusion/non-inclusion proof for
// key: a bitmap of which levels have a non-default sibling, and the ordered
// chain of those siblings' digests. The same proof verifies both inclusion
// (VerifyInclusionProof) and non-inclusion (VerifyNonInclusionProof) of key
// against the tree's current root.
func (t *SparseMerkleTree) GenerateProof(key *big.Int) (*CompressedProof, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if err := t.validateKey(key); err != nil {
		return nil, err
	}

	bitmap := new(big.Int)
	var chain []Digest
	cur := KeyPath(key, t.depth)
	for level := uint16(0); level < t.depth; level++ {
		sib := t.nodeAt(cur.Sibling())
		if !sib.IsZero() {
			bitmap.SetBit(bitmap, int(level), 1)
			chain = append(chain, sib)
		}
		cur = cur.Parent()
	}
	return &CompressedProof{Bitmap: bitmap, Chain: chain}, nil
}

// computeRootFromProof reconstructs a root by walking proof leaf-to-root,
// starting from start: for level ℓ = 0..D-1, it combines the running value
// with the next chain entry (or EMPTY, if bitmap's bit ℓ is clear) on the
// side determined by key's bit at position ℓ.
func computeRootFromProof(depth uint16, key *big.Int, start Digest, proof *CompressedProof) (Digest, error) {
	current := start
	chainIdx := 0
	for level := uint16(0); level < depth; level++ {
		var sibling Digest
		if proof.Bitmap != nil && proof.Bitmap.Bit(int(level)) == 1 {
			if chainIdx >= len(proof.Chain) {
				return Digest{}, &ProofShapeError{Reason: "chain shorter than bitmap requires"}
			}
			sibling = proof.Chain[chainIdx]
			chainIdx++
		}
		if GetBit(key, uint(level)) == 0 {
			current = Combine(current, sibling)
		} else {
			current = Combine(sibling, current)
		}
	}
	if chainIdx != len(proof.Chain) {
		return Digest{}, &ProofShapeError{Reason: "chain longer than bitmap requires"}
	}
	return current, nil
}

// ComputeRootFromProof is the exported form of computeRootFromProof, for
// callers that want the reconstructed root rather than a bare equality
// check.
func ComputeRootFromProof(depth uint16, key *big.Int, start Digest, proof *CompressedProof) (Digest, error) {
	return computeRootFromProof(depth, key, start, proof)
}

// VerifyInclusionProof reports whether proof reconstructs root when key's
// leaf holds value.
func VerifyInclusionProof(root Digest, depth uint16, key *big.Int, value Digest, proof *CompressedProof) bool {
	got, err := computeRootFromProof(depth, key, value, proof)
	return err == nil && got == root
}

// VerifyNonInclusionProof reports whether proof reconstructs root when key's
// leaf is empty.
func VerifyNonInclusionProof(root Digest, depth uint16, key *big.Int, proof *CompressedProof) bool {
	got, err := computeRootFromProof(depth, key, EMPTY, proof)
	return err == nil && got == root
}

// CheckInclusionProof is VerifyInclusionProof's error-returning form: a
// malformed proof yields its *ProofShapeError, and a structurally sound
// proof that reconstructs the wrong root yields *ProofMismatchError, so
// callers that need to distinguish the two need not re-run
// computeRootFromProof themselves.
func CheckInclusionProof(root Digest, depth uint16, key *big.Int, value Digest, proof *CompressedProof) error {
	got, err := computeRootFromProof(depth, key, value, proof)
	if err != nil {
		return err
	}
	if got != root {
		return &ProofMismatchError{}
	}
	return nil
}

// CheckNonInclusionProof is VerifyNonInclusionProof's error-returning form;
// see CheckInclusionProof.
func CheckNonInclusionProof(root Digest, depth uint16, key *big.Int, proof *CompressedProof) error {
	got, err := computeRootFromProof(depth, key, EMPTY, proof)
	if err != nil {
		return err
	}
	if got != root {
		return &ProofMismatchError{}
	}
	return nil
}