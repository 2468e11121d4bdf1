// Command smtdemo reproduces the worked walkthrough from the reference
// script: build a depth-32 tree, insert two successive batches of
// pseudo-random keys, and verify both resulting non-deletion proofs. Unlike
// the reference script's non-cryptographic hash(), key derivation here goes
// through the tree's own SHA-256 Combine oracle, seeded by a label and index.
// This binary is tooling around the smt package, not part of its contract.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/big"

	smt "github.com/unicitynetwork/zkvm-ndsmt"
	"github.com/unicitynetwork/zkvm-ndsmt/internal/profiler"
)

const demoDepth = 32

// deriveBatch produces n distinct keys in [0, 2^demoDepth) and matching
// values by repeatedly combining a label digest with an index digest,
// skipping any key already claimed by an earlier batch.
func deriveBatch(label string, n int, claimed map[string]bool) ([]*big.Int, []smt.Digest) {
	keys := make([]*big.Int, 0, n)
	values := make([]smt.Digest, 0, n)
	labelSeed := smt.DigestFromBigInt(new(big.Int).SetBytes([]byte(label)))
	mod := new(big.Int).Lsh(big.NewInt(1), demoDepth)

	for i := 0; len(keys) < n; i++ {
		indexSeed := smt.DigestFromBigInt(big.NewInt(int64(i)))
		combined := smt.Combine(labelSeed, indexSeed)
		key := new(big.Int).Mod(combined.BigInt(), mod)
		if claimed[key.String()] {
			continue
		}
		claimed[key.String()] = true
		keys = append(keys, key)
		values = append(values, smt.Combine(combined, indexSeed))
	}
	return keys, values
}

func main() {
	tree, err := smt.NewSparseMerkleTree(nil, demoDepth)
	if err != nil {
		log.Fatalf("new tree: %v", err)
	}

	claimed := make(map[string]bool)
	oldRoot := tree.Root()

	var keys1, keys2 []*big.Int
	var values1, values2 []smt.Digest
	var proof1, proof2 smt.NonDeletionProof

	err = profiler.ProfiledTreeOperation("batch-1-insert", tree, func() error {
		keys1, values1 = deriveBatch("batch1", 100, claimed)
		var insertErr error
		proof1, insertErr = tree.BatchInsert(keys1, values1)
		return insertErr
	})
	if err != nil {
		log.Fatalf("first batch insert: %v", err)
	}

	ok, err := smt.VerifyNonDeletion(proof1, tree.Depth(), oldRoot, tree.Root(), keys1, values1)
	if err != nil || !ok {
		log.Fatalf("first batch verification failed: ok=%v err=%v", ok, err)
	}
	fmt.Printf("batch 1: inserted %d leaves, root=%s\n", len(keys1), tree.Root())

	rootAfterBatch1 := tree.Root()

	err = profiler.ProfiledTreeOperation("batch-2-insert", tree, func() error {
		keys2, values2 = deriveBatch("batch2", 50, claimed)
		var insertErr error
		proof2, insertErr = tree.BatchInsert(keys2, values2)
		return insertErr
	})
	if err != nil {
		log.Fatalf("second batch insert: %v", err)
	}

	ok, err = smt.VerifyNonDeletion(proof2, tree.Depth(), rootAfterBatch1, tree.Root(), keys2, values2)
	if err != nil || !ok {
		log.Fatalf("second batch verification failed: ok=%v err=%v", ok, err)
	}
	fmt.Printf("batch 2: inserted %d leaves, root=%s\n", len(keys2), tree.Root())

	witness := smt.BuildWitness(tree.Depth(), rootAfterBatch1, tree.Root(), keys2, values2, proof2)
	out, err := json.MarshalIndent(witness, "", "  ")
	if err != nil {
		log.Fatalf("marshal witness: %v", err)
	}
	fmt.Println(string(out))

	if snap, ok := tree.Fingerprint(); ok {
		fmt.Printf("tree fingerprint: entries=%d bytes=%d digest=%x\n", snap.EntryCount, snap.ByteFootprint, snap.Fingerprint)
	}
}
