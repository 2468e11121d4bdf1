package profiler

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/crypto/blake2b"
)

// NodeDump is one (path, digest) entry of a tree's node store, independent
// of the smt package's own BitPath/Digest types so this package stays
// import-cycle-free and reusable against any 32-byte-digest store.
type NodeDump struct {
	Path   string
	Digest [32]byte
}

// Snapshot is a point-in-time description of a tree's node-store footprint:
// how many non-default entries it holds, how many bytes that costs, and a
// content fingerprint that changes if and only if the set of (path, digest)
// pairs changes. The non-deletion proof that BatchInsert returns only
// covers a batch's changed frontier; Fingerprint gives test suites and
// audit tooling a cheap whole-tree equality check that does not depend on
// the tree's own combine oracle.
type Snapshot struct {
	EntryCount  int
	ByteFootprint int
	Fingerprint [32]byte
}

// Fingerprint computes a Snapshot over dump: entries are sorted by path
// before hashing so the result is independent of map iteration order.
func Fingerprint(dump []NodeDump) Snapshot {
	sorted := make([]NodeDump, len(dump))
	copy(sorted, dump)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	h, _ := blake2b.New256(nil)
	footprint := 0
	for _, entry := range sorted {
		h.Write([]byte(entry.Path))
		h.Write(entry.Digest[:])
		footprint += len(entry.Path) + len(entry.Digest)
	}

	var fp [32]byte
	copy(fp[:], h.Sum(nil))
	return Snapshot{
		EntryCount:    len(sorted),
		ByteFootprint: footprint,
		Fingerprint:   fp,
	}
}

// Snapshotter is implemented by a live tree that can report a Snapshot of
// its current node store. *smt.SparseMerkleTree satisfies this structurally
// (see the parent module's fingerprint.go); defining it here rather than
// importing the smt package keeps this package import-cycle-free.
type Snapshotter interface {
	Fingerprint() (Snapshot, bool)
}

// ProfiledTreeOperation wraps operation with memory profiling and reports
// the node-store fingerprint delta alongside the usual GC/allocation
// summary, tying the two profiling concerns together for tree-mutating
// operations like a batch insert.
func ProfiledTreeOperation(name string, tree Snapshotter, operation func() error) error {
	before, _ := tree.Fingerprint()

	mp := NewMemoryProfiler(10 * time.Millisecond)
	fmt.Printf("Starting profiled operation: %s\n", name)
	mp.Start()

	err := operation()

	mp.Stop()
	summary := mp.GetSummary()
	after, ok := tree.Fingerprint()

	fmt.Printf("Completed profiled operation: %s\n", name)
	fmt.Println(summary.String())
	if ok {
		fmt.Printf("Node store: %d -> %d entries (+%d), fingerprint=%x\n",
			before.EntryCount, after.EntryCount, after.EntryCount-before.EntryCount, after.Fingerprint)
	}

	return err
}
