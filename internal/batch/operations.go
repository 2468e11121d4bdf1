// Package batch provides chunked submission of large batch-insert workloads
// on top of smt.SparseMerkleTree.BatchInsert, following the teacher's
// maxBatch-chunking shape in ProcessBatch/processLargeBatch.
package batch

import (
	"fmt"
	"math/big"

	smt "github.com/unicitynetwork/zkvm-ndsmt"
	"github.com/unicitynetwork/zkvm-ndsmt/internal/pool"
)

// ChunkResult is one chunk's outcome: the proof BatchInsert returned for
// that chunk, paired with the keys/values actually submitted.
type ChunkResult struct {
	Keys   []*big.Int
	Values []smt.Digest
	Proof  smt.NonDeletionProof
}

// Chunker submits oversized (keys, values) batches to a tree in fixed-size
// chunks, each chunk going through the tree's own BatchInsert. Chunking
// exists purely as a caller-side convenience for staging huge workloads
// (e.g. a bulk import split across multiple ticks of an event loop) — the
// tree's own BatchInsert already processes an arbitrarily large single call
// in one O(|K|·D) sweep, so Chunker does not change what gets proven, only
// how many keys are handed to the tree per call.
type Chunker struct {
	tree     *smt.SparseMerkleTree
	pool     *pool.BigIntPool
	maxChunk int
}

// NewChunker creates a Chunker over tree with the given chunk size.
func NewChunker(tree *smt.SparseMerkleTree, maxChunk int) *Chunker {
	return &Chunker{
		tree:     tree,
		pool:     pool.NewBigIntPool(),
		maxChunk: maxChunk,
	}
}

// Submit inserts keys/values in chunks of at most maxChunk, returning one
// ChunkResult per chunk in submission order. A keys/values length mismatch
// is rejected before any chunk is submitted. A chunk failing validation
// (an out-of-range key) aborts the remaining chunks and returns the error
// alongside whatever chunks already succeeded.
func (c *Chunker) Submit(keys []*big.Int, values []smt.Digest) ([]ChunkResult, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("batch: keys and values length mismatch: %d != %d", len(keys), len(values))
	}
	if len(keys) == 0 {
		return nil, nil
	}

	var results []ChunkResult
	for start := 0; start < len(keys); start += c.maxChunk {
		end := start + c.maxChunk
		if end > len(keys) {
			end = len(keys)
		}

		// Pooled copies insulate the tree from any aliasing the caller might
		// do with the original keys slice between chunks; they are returned
		// to the pool once BatchInsert has consumed them, and the result
		// reports its own copies of the caller's keys.
		pooledKeys := make([]*big.Int, end-start)
		for i, k := range keys[start:end] {
			pooledKeys[i] = c.pool.GetCopy(k)
		}
		chunkValues := values[start:end]

		proof, err := c.tree.BatchInsert(pooledKeys, chunkValues)
		for _, k := range pooledKeys {
			c.pool.Put(k)
		}
		if err != nil {
			return results, fmt.Errorf("batch: chunk at offset %d failed: %w", start, err)
		}

		resultKeys := make([]*big.Int, end-start)
		for i, k := range keys[start:end] {
			resultKeys[i] = new(big.Int).Set(k)
		}
		results = append(results, ChunkResult{
			Keys:   resultKeys,
			Values: append([]smt.Digest(nil), chunkValues...),
			Proof:  proof,
		})
	}

	return results, nil
}
