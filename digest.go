package smt

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Digest is a node value. Digests are always 256 bits wide, whatever the
// tree's depth, and are stored as a 32-byte big-endian unsigned integer. The
// all-zero digest is the reserved EMPTY sentinel.
type Digest [32]byte

// EMPTY is the sentinel digest denoting an absent leaf or an empty subtree.
var EMPTY = Digest{}

// IsZero reports whether d is the EMPTY sentinel.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// String renders d as a 0x-prefixed hex string.
func (d Digest) String() string {
	return hexutil.Encode(d[:])
}

// BigInt interprets d as a big-endian unsigned integer, matching the witness
// JSON format's decimal-integer convention for digests.
func (d Digest) BigInt() *big.Int {
	return new(big.Int).SetBytes(d[:])
}

// DigestFromBigInt packs x into a 32-byte big-endian digest. x must fit in
// 256 bits; DigestFromBigInt does not check this, and a wider x panics.
func DigestFromBigInt(x *big.Int) Digest {
	var d Digest
	b := x.Bytes()
	copy(d[32-len(b):], b)
	return d
}

// ParseDigest decodes a 0x-prefixed hex string produced by Digest.String.
func ParseDigest(s string) (Digest, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return Digest{}, err
	}
	var d Digest
	if len(b) > 32 {
		return Digest{}, &ProofShapeError{Reason: "digest hex longer than 32 bytes"}
	}
	copy(d[32-len(b):], b)
	return d, nil
}
