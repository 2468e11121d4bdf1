package smt

import (
	"math/big"

	sha256simd "github.com/minio/sha256-simd"
)

// Combine is the tree's hash oracle. It special-cases the EMPTY sentinel so
// that a subtree holding exactly one present leaf has a digest equal to that
// leaf's value: if l is EMPTY, the result is r; if r is EMPTY, the result is
// l; otherwise the result is SHA-256 of the 64-byte concatenation of l and r,
// reinterpreted as a 32-byte big-endian digest.
//
// The short-circuit is security-relevant and must not be altered: every
// inclusion/non-inclusion/non-deletion verifier in this package depends on
// it holding exactly as stated.
func Combine(l, r Digest) Digest {
	if l.IsZero() {
		return r
	}
	if r.IsZero() {
		return l
	}
	h := sha256simd.New()
	h.Write(l[:])
	h.Write(r[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// defaultTable computes DEFAULT[0..depth]: the digest of a completely empty
// subtree at each level. DEFAULT[0] = EMPTY and DEFAULT[l] = Combine of the
// previous level with itself. Because Combine(EMPTY, EMPTY) = EMPTY by the
// short-circuit above, every entry collapses to EMPTY — the table is still
// computed generically here so the node-store lookup logic stays correct if
// a different oracle were ever plugged in.
func defaultTable(depth uint16) []Digest {
	table := make([]Digest, depth+1)
	for l := uint16(1); l <= depth; l++ {
		table[l] = Combine(table[l-1], table[l-1])
	}
	return table
}

// GetBit extracts the bit at the given least-significant-first position from
// a key. Position 0 is the bit that distinguishes a leaf from its level-0
// sibling; position D-1 is the bit that distinguishes the two children of the
// root. This indexing is what the compressed-proof verifier in proof.go walks
// leaf-to-root with.
func GetBit(key *big.Int, position uint) uint {
	return uint(key.Bit(int(position)))
}



