package smt

import (
	"fmt"
	"math/big"
)

// ErrLengthMismatch is returned when BatchInsert or VerifyNonDeletion is
// given keys and values slices of different lengths.
var ErrLengthMismatch = fmt.Errorf("smt: keys and values must have the same length")

// InvalidTreeDepthError reports a tree constructed with an out-of-range depth.
type InvalidTreeDepthError struct {
	Depth uint16
}

func (e *InvalidTreeDepthError) Error() string {
	return fmt.Sprintf("smt: invalid tree depth: %d (must be between 1 and 256)", e.Depth)
}

// InvalidKeyError reports a key outside [0, 2^D). This is the InvalidKey
// error kind.
type InvalidKeyError struct {
	Key   *big.Int
	Depth uint16
}

func (e *InvalidKeyError) Error() string {
	max := new(big.Int).Lsh(big.NewInt(1), uint(e.Depth))
	return fmt.Sprintf("smt: key %s out of range for depth %d (must be in [0, %s))",
		e.Key.String(), e.Depth, max.String())
}

// LeafAlreadySetError reports that a single-key Insert targeted an occupied
// leaf slot. This is the LeafAlreadySet error kind: fatal to the insert, the
// tree is left unchanged.
type LeafAlreadySetError struct {
	Path BitPath
}

func (e *LeafAlreadySetError) Error() string {
	return fmt.Sprintf("smt: leaf at path %q is already set", string(e.Path))
}

// BatchLeafAlreadySetError reports that one leaf within a BatchInsert call
// targeted an occupied slot. This is the BatchLeafAlreadySet error kind: it
// is diagnostic only, reported through the tree's Logger, and does not abort
// the batch.
type BatchLeafAlreadySetError struct {
	Path BitPath
}

func (e *BatchLeafAlreadySetError) Error() string {
	return fmt.Sprintf("smt: batch leaf at path %q is already set, skipping", string(e.Path))
}

// ProofShapeError reports a structurally malformed proof: a chain shorter
// than the bitmap calls for, or a non-deletion proof entry whose bit-path is
// longer than the tree's depth.
type ProofShapeError struct {
	Reason string
}

func (e *ProofShapeError) Error() string {
	return "smt: invalid proof shape: " + e.Reason
}

// ProofMismatchError reports that a verifier's reconstructed root disagreed
// with the claimed root.
type ProofMismatchError struct{}

func (e *ProofMismatchError) Error() string {
	return "smt: proof does not reconstruct the claimed root"
}
