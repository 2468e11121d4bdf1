package smt

import (
	"math/big"
	"sort"

	"github.com/unicitynetwork/zkvm-ndsmt/internal/pool"
	"github.com/unicitynetwork/zkvm-ndsmt/internal/trie"
	"github.com/unicitynetwork/zkvm-ndsmt/internal/verify"
)

// BatchInsert implements §4.4's batch-insert algorithm: it writes every
// surviving (key, value) pair's leaf, recomputes every affected interior
// node bottom-up, and returns a non-deletion proof — the digests of the
// maximal subtrees the batch left untouched, sufficient for VerifyNonDeletion
// to reconstruct both the pre- and post-batch roots from keys and values
// alone.
//
// A key already occupying its leaf slot (including a duplicate earlier in
// the same call) is dropped from the working set and reported through the
// tree's Logger as a BatchLeafAlreadySetError; it does not abort the batch.
// keys and values must have equal length, each values[i] must be non-EMPTY,
// and every key must satisfy validateKey.
func (t *SparseMerkleTree) BatchInsert(keys []*big.Int, values []Digest) (NonDeletionProof, error) {
	if len(keys) != len(values) {
		return nil, ErrLengthMismatch
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Step 1: filter.
	seen := make(map[BitPath]bool, len(keys))
	paths := make([]BitPath, 0, len(keys))
	vals := make(map[BitPath]Digest, len(keys))
	for i, k := range keys {
		if err := t.validateKey(k); err != nil {
			return nil, err
		}
		p := KeyPath(k, t.depth)
		if seen[p] {
			t.logger.Printf("%v", &BatchLeafAlreadySetError{Path: p})
			continue
		}
		if _, exists := t.store.Get(p); exists {
			t.logger.Printf("%v", &BatchLeafAlreadySetError{Path: p})
			continue
		}
		seen[p] = true
		paths = append(paths, p)
		vals[p] = values[i]
	}

	// Step 2: write leaves.
	for _, p := range paths {
		t.store.Set(p, vals[p])
	}

	// Step 3: compute the proof subtree-roots set M.
	leafSet := make(map[BitPath]bool, len(paths))
	for _, p := range paths {
		leafSet[p] = true
	}
	candidates := pool.GlobalStringSlicePool.Get()
	defer func() { pool.GlobalStringSlicePool.Put(candidates) }()
	dedup := make(map[BitPath]bool)
	for _, p := range paths {
		cur := p
		for len(cur) > 0 {
			sib := cur.Sibling()
			if !leafSet[sib] && !dedup[sib] {
				dedup[sib] = true
				candidates = append(candidates, string(sib))
			}
			cur = cur.Parent()
		}
	}
	reduced := trie.ReduceToPrefixFree(candidates)
	sort.Slice(reduced, func(i, j int) bool {
		if len(reduced[i]) != len(reduced[j]) {
			return len(reduced[i]) < len(reduced[j])
		}
		return reduced[i] < reduced[j]
	})

	proof := make(NonDeletionProof)
	for _, s := range reduced {
		sp := BitPath(s)
		d := t.nodeAt(sp)
		if !d.IsZero() {
			proof[sp] = d
		}
	}

	// Step 4: recompute interior nodes bottom-up.
	touched := make(map[BitPath]bool, len(paths))
	for _, p := range paths {
		touched[p.Parent()] = true
	}
	for level := uint16(1); level <= t.depth; level++ {
		prefixLen := int(t.depth - level)
		next := make(map[BitPath]bool)
		for q := range touched {
			if len(q) != prefixLen {
				continue
			}
			left := t.nodeAt(q.Child('0'))
			right := t.nodeAt(q.Child('1'))
			t.store.Set(q, Combine(left, right))
			if len(q) > 0 {
				next[q.Parent()] = true
			}
		}
		touched = next
	}

	t.root = t.nodeAt(BitPath(""))
	return proof, nil
}

// VerifyNonDeletion is the pure, standalone verifier for a BatchInsert
// result: it reports whether proof, combined with keys and values, properly
// reconstructs oldRoot (with every key's leaf assumed EMPTY) and newRoot
// (with every key's leaf holding its given value). It is a package-level
// function, not a tree method, because it needs no tree state beyond what
// the proof and the batch itself supply — exactly what lets a third party
// who never held a reference to the tree validate a witness independently.
func VerifyNonDeletion(proof NonDeletionProof, depth uint16, oldRoot, newRoot Digest, keys []*big.Int, values []Digest) (bool, error) {
	if len(keys) != len(values) {
		return false, ErrLengthMismatch
	}

	type kv struct {
		path  string
		value [32]byte
	}
	items := make([]kv, len(keys))
	for i, k := range keys {
		items[i] = kv{path: string(KeyPath(k, depth)), value: [32]byte(values[i])}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].path < items[j].path })

	paths := make([]string, len(items))
	vals := make([][32]byte, len(items))
	for i, it := range items {
		paths[i] = it.path
		vals[i] = it.value
	}

	proofBytes := make(map[string][32]byte, len(proof))
	for p, d := range proof {
		proofBytes[string(p)] = [32]byte(d)
	}

	combine := func(l, r [32]byte) [32]byte { return [32]byte(Combine(Digest(l), Digest(r))) }
	ok := verify.NonDeletion(combine, int(depth), proofBytes, [32]byte(oldRoot), [32]byte(newRoot), paths, vals)
	return ok, nil
}
