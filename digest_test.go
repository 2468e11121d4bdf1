package smt

import (
	"math/big"
	"testing"
)

func TestDigestRoundTrip(t *testing.T) {
	d := DigestFromBigInt(big.NewInt(123456789))
	s := d.String()
	got, err := ParseDigest(s)
	if err != nil {
		t.Fatalf("ParseDigest(%q) failed: %v", s, err)
	}
	if got != d {
		t.Fatalf("round trip mismatch: got %v, want %v", got, d)
	}
}

func TestDigestIsZero(t *testing.T) {
	if !EMPTY.IsZero() {
		t.Fatal("EMPTY.IsZero() = false, want true")
	}
	d := DigestFromBigInt(big.NewInt(1))
	if d.IsZero() {
		t.Fatal("non-zero digest reported as zero")
	}
}

func TestDigestBigIntRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 255, 256, 1 << 30} {
		d := DigestFromBigInt(big.NewInt(v))
		got := d.BigInt()
		if got.Cmp(big.NewInt(v)) != 0 {
			t.Fatalf("BigInt() round trip for %d gave %s", v, got.String())
		}
	}
}
