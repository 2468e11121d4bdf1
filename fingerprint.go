package smt

import (
	"github.com/unicitynetwork/zkvm-ndsmt/internal/profiler"
)

// Fingerprint summarizes every explicitly stored node in the tree into a
// single digest, independent of Combine's own SHA-256 oracle. It is useful
// for asserting whole-tree equality in tests and audits without walking two
// trees path by path. It only supports a MapStore-backed tree, since Store
// does not itself expose enumeration.
func (t *SparseMerkleTree) Fingerprint() (profiler.Snapshot, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ms, ok := t.store.(*MapStore)
	if !ok {
		return profiler.Snapshot{}, false
	}

	all := ms.All()
	dump := make([]profiler.NodeDump, 0, len(all))
	for path, digest := range all {
		dump = append(dump, profiler.NodeDump{Path: string(path), Digest: [32]byte(digest)})
	}
	return profiler.Fingerprint(dump), true
}
