package smt

import (
	"math/big"
	"testing"
)

func TestNewSparseMerkleTreeRejectsBadDepth(t *testing.T) {
	for _, depth := range []uint16{0, 257} {
		if _, err := NewSparseMerkleTree(nil, depth); err == nil {
			t.Fatalf("NewSparseMerkleTree(depth=%d) should fail", depth)
		}
	}
}

func TestNewSparseMerkleTreeDefaultsToEmptyRoot(t *testing.T) {
	tree, err := NewSparseMerkleTree(nil, 8)
	if err != nil {
		t.Fatalf("NewSparseMerkleTree failed: %v", err)
	}
	if tree.Root() != EMPTY {
		t.Fatalf("empty tree root = %v, want EMPTY", tree.Root())
	}
}

func TestValidateKeyRejectsOutOfRange(t *testing.T) {
	tree, _ := NewSparseMerkleTree(nil, 4)
	if _, err := tree.Insert(big.NewInt(-1), DigestFromBigInt(big.NewInt(1))); err == nil {
		t.Fatal("negative key should fail InvalidKey")
	}
	if _, err := tree.Insert(big.NewInt(16), DigestFromBigInt(big.NewInt(1))); err == nil {
		t.Fatal("key >= 2^depth should fail InvalidKey")
	}
}

func TestInsertRejectsAlreadySetLeaf(t *testing.T) {
	tree, _ := NewSparseMerkleTree(nil, 4)
	key := big.NewInt(5)
	value := DigestFromBigInt(big.NewInt(1))
	if _, err := tree.Insert(key, value); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	_, err := tree.Insert(key, DigestFromBigInt(big.NewInt(2)))
	if err == nil {
		t.Fatal("second insert at the same key should fail")
	}
	if _, ok := err.(*LeafAlreadySetError); !ok {
		t.Fatalf("error type = %T, want *LeafAlreadySetError", err)
	}
}

func TestExists(t *testing.T) {
	tree, _ := NewSparseMerkleTree(nil, 4)
	key := big.NewInt(3)
	if exists, _ := tree.Exists(key); exists {
		t.Fatal("key should not exist before insert")
	}
	tree.Insert(key, DigestFromBigInt(big.NewInt(9)))
	if exists, _ := tree.Exists(key); !exists {
		t.Fatal("key should exist after insert")
	}
}

// S1 (D=4, SHA-256 oracle): insert (key=0b0101, value=7). get_root() equals
// combine(combine(combine(combine(7, 0), DEFAULT[1]), DEFAULT[2]), DEFAULT[3]).
func TestScenarioS1(t *testing.T) {
	tree, err := NewSparseMerkleTree(nil, 4)
	if err != nil {
		t.Fatalf("NewSparseMerkleTree failed: %v", err)
	}
	value := DigestFromBigInt(big.NewInt(7))
	root, err := tree.Insert(big.NewInt(0b0101), value)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	want := Combine(Combine(Combine(Combine(value, EMPTY), EMPTY), EMPTY), EMPTY)
	if root != want {
		t.Fatalf("root = %v, want %v", root, want)
	}
	if tree.Root() != want {
		t.Fatalf("Root() = %v, want %v", tree.Root(), want)
	}
}

func TestInsertManyThenExistsAll(t *testing.T) {
	tree, _ := NewSparseMerkleTree(nil, 8)
	keys := []int64{0, 1, 2, 100, 255}
	for _, k := range keys {
		if _, err := tree.Insert(big.NewInt(k), DigestFromBigInt(big.NewInt(k+1))); err != nil {
			t.Fatalf("Insert(%d) failed: %v", k, err)
		}
	}
	for _, k := range keys {
		exists, err := tree.Exists(big.NewInt(k))
		if err != nil || !exists {
			t.Fatalf("key %d should exist after insert (err=%v)", k, err)
		}
	}
}
