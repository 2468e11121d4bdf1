package trie

import (
	"reflect"
	"sort"
	"testing"
)

func TestReduceToPrefixFreeDropsAncestors(t *testing.T) {
	got := ReduceToPrefixFree([]string{"0", "0001", "001", "01", "1110", "110", "10", "1"})
	sort.Strings(got)
	want := []string{"001", "0001", "01", "10", "110", "1110"}
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReduceToPrefixFree = %v, want %v", got, want)
	}
}

func TestReduceToPrefixFreeNoRelations(t *testing.T) {
	in := []string{"00", "01", "10", "11"}
	got := ReduceToPrefixFree(in)
	sort.Strings(got)
	sort.Strings(in)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("ReduceToPrefixFree with no prefix relations changed the set: got %v, want %v", got, in)
	}
}

func TestReduceToPrefixFreeSingleChain(t *testing.T) {
	// A strict chain of prefixes: only the longest should survive.
	got := ReduceToPrefixFree([]string{"0", "00", "000", "0000"})
	if len(got) != 1 || got[0] != "0000" {
		t.Fatalf("ReduceToPrefixFree(chain) = %v, want [\"0000\"]", got)
	}
}

func TestReduceToPrefixFreeEmpty(t *testing.T) {
	if got := ReduceToPrefixFree(nil); len(got) != 0 {
		t.Fatalf("ReduceToPrefixFree(nil) = %v, want empty", got)
	}
}
