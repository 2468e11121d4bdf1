package smt

import (
	"fmt"
	"math/big"
	"sort"
)

// SerializedWitness is the wire format emitted once per batch insert: every
// integer field marshals as a bare JSON number (not a hex string) because
// math/big.Int implements MarshalJSON/UnmarshalJSON natively as decimal
// literals, matching this format exactly. Proof[i] holds the digests for
// bit-paths of length i+1 (tree level Depth-i-1), keyed by that bit-path's
// numeric value interpreted as an unsigned integer of the same bit width.
type SerializedWitness struct {
	OldRoot *big.Int            `json:"old_root"`
	NewRoot *big.Int            `json:"new_root"`
	Keys    []*big.Int          `json:"keys"`
	Values  []*big.Int          `json:"values"`
	Proof   []map[string]*big.Int `json:"proof"`
	Depth   uint16              `json:"depth"`
}

// BuildWitness assembles the wire-format witness for a completed BatchInsert
// call: keys/values sorted ascending by key, and proof bucketed by bit-path
// length into Proof[len-1].
func BuildWitness(depth uint16, oldRoot, newRoot Digest, keys []*big.Int, values []Digest, proof NonDeletionProof) *SerializedWitness {
	type kv struct {
		key   *big.Int
		value Digest
	}
	items := make([]kv, len(keys))
	for i, k := range keys {
		items[i] = kv{key: k, value: values[i]}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].key.Cmp(items[j].key) < 0 })

	sortedKeys := make([]*big.Int, len(items))
	sortedValues := make([]*big.Int, len(items))
	for i, it := range items {
		sortedKeys[i] = it.key
		sortedValues[i] = it.value.BigInt()
	}

	buckets := make([]map[string]*big.Int, depth)
	for i := range buckets {
		buckets[i] = make(map[string]*big.Int)
	}
	for path, digest := range proof {
		idx := len(path) - 1
		pathInt := new(big.Int)
		pathInt.SetString(string(path), 2)
		buckets[idx][pathInt.String()] = digest.BigInt()
	}

	return &SerializedWitness{
		OldRoot: oldRoot.BigInt(),
		NewRoot: newRoot.BigInt(),
		Keys:    sortedKeys,
		Values:  sortedValues,
		Proof:   buckets,
		Depth:   depth,
	}
}

// ToNonDeletionProof converts a deserialized witness's Proof field back into
// the in-memory NonDeletionProof keyed by BitPath, the inverse of the
// bucketing BuildWitness performs.
func (w *SerializedWitness) ToNonDeletionProof() (NonDeletionProof, error) {
	proof := make(NonDeletionProof)
	for i, bucket := range w.Proof {
		pathLen := i + 1
		for keyStr, digestInt := range bucket {
			pathInt, ok := new(big.Int).SetString(keyStr, 10)
			if !ok {
				return nil, &ProofShapeError{Reason: fmt.Sprintf("malformed proof key %q", keyStr)}
			}
			if pathLen > int(w.Depth) {
				return nil, &ProofShapeError{Reason: "proof path longer than tree depth"}
			}
			path := BitPath(fmt.Sprintf("%0*b", pathLen, pathInt))
			proof[path] = DigestFromBigInt(digestInt)
		}
	}
	return proof, nil
}