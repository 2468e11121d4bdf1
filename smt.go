package smt

import (
	"log"
	"math/big"
	"sync"
)

// SMTDepth is the maximum depth supported by this package; the production
// configuration runs at this depth, with smaller depths (e.g. 4 or 32) used
// in tests.
const SMTDepth = 256

// Logger is the diagnostic seam BatchInsert reports skipped leaves through.
// It is satisfied by *log.Logger.
type Logger interface {
	Printf(format string, args ...any)
}

// SparseMerkleTree is a fixed-depth Sparse Merkle Tree over the key space
// [0, 2^depth). Leaves are inserted but never removed; see SPEC_FULL.md for
// the full contract.
type SparseMerkleTree struct {
	store    Store
	depth    uint16
	defaults []Digest
	root     Digest
	logger   Logger
	mu       sync.RWMutex
}

// Option configures a SparseMerkleTree at construction time.
type Option func(*SparseMerkleTree)

// WithLogger overrides the tree's diagnostic logger, used to report
// BatchLeafAlreadySet conditions. The default is log.Default().
func WithLogger(l Logger) Option {
	return func(t *SparseMerkleTree) { t.logger = l }
}

// NewSparseMerkleTree creates an empty tree of the given depth backed by
// store. depth must be in [1, 256]. A nil store defaults to a fresh
// in-memory MapStore.
func NewSparseMerkleTree(store Store, depth uint16, opts ...Option) (*SparseMerkleTree, error) {
	if depth == 0 || depth > SMTDepth {
		return nil, &InvalidTreeDepthError{Depth: depth}
	}
	if store == nil {
		store = NewMapStore()
	}

	t := &SparseMerkleTree{
		store:    store,
		depth:    depth,
		defaults: defaultTable(depth),
		root:     EMPTY,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Root returns the tree's current root digest.
func (t *SparseMerkleTree) Root() Digest {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root
}

// Depth returns the tree's fixed depth D.
func (t *SparseMerkleTree) Depth() uint16 {
	return t.depth
}

// validateKey is the InvalidKey check shared by every public entry point
// that takes a key: key must be non-negative and fit within depth bits.
func (t *SparseMerkleTree) validateKey(key *big.Int) error {
	if key.Sign() < 0 {
		return &InvalidKeyError{Key: key, Depth: t.depth}
	}
	max := new(big.Int).Lsh(big.NewInt(1), uint(t.depth))
	if key.Cmp(max) >= 0 {
		return &InvalidKeyError{Key: key, Depth: t.depth}
	}
	return nil
}

// nodeAt returns the digest stored at path, or the relevant DEFAULT entry
// when nothing has been written there yet.
func (t *SparseMerkleTree) nodeAt(path BitPath) Digest {
	if v, ok := t.store.Get(path); ok {
		return v
	}
	return t.defaults[t.depth-uint16(len(path))]
}

// Exists reports whether key's leaf slot is occupied.
func (t *SparseMerkleTree) Exists(key *big.Int) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if err := t.validateKey(key); err != nil {
		return false, err
	}
	_, ok := t.store.Get(KeyPath(key, t.depth))
	return ok, nil
}

// Insert writes value at key, recomputing every ancestor up to the root, and
// returns the new root. It fails with LeafAlreadySetError if key's slot is
// already occupied, leaving the tree unchanged.
func (t *SparseMerkleTree) Insert(key *big.Int, value Digest) (Digest, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.validateKey(key); err != nil {
		return Digest{}, err
	}
	leafPath := KeyPath(key, t.depth)
	if _, exists := t.store.Get(leafPath); exists {
		return Digest{}, &LeafAlreadySetError{Path: leafPath}
	}

	t.store.Set(leafPath, value)

	current := leafPath
	for level := uint16(1); level <= t.depth; level++ {
		prefix := current.Parent()
		left := t.nodeAt(prefix.Child('0'))
		right := t.nodeAt(prefix.Child('1'))
		t.store.Set(prefix, Combine(left, right))
		current = prefix
	}

	t.root = t.nodeAt(BitPath(""))
	return t.root, nil
}
