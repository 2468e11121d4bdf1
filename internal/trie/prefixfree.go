// Package trie reduces a set of bit-string paths to its prefix-free subset:
// the paths that sit at leaves of the binary trie those paths describe. It
// has no dependency on the smt package so it can be shared by both the
// tree's own batch-insert path and any standalone verifier.
package trie

// node is one vertex of the binary trie built over the candidate paths.
type node struct {
	children [2]*node
	terminal bool // some input path ends exactly here
}

func (n *node) child(bit byte) *node {
	i := bit - '0'
	if n.children[i] == nil {
		n.children[i] = &node{}
	}
	return n.children[i]
}

// ReduceToPrefixFree discards every path that is a strict prefix of another
// path in the same input set, retaining only the trie leaves: paths with no
// terminal descendant. When both a path and a longer path extending it are
// present, the longer one always wins — see SPEC_FULL.md's discussion of
// this rule's direction, which is the one place spec.md is ambiguous.
//
// Order is not preserved; the result is sorted lexicographically, which for
// equal-length bit-strings also orders them numerically.
func ReduceToPrefixFree(paths []string) []string {
	root := &node{}
	for _, p := range paths {
		cur := root
		for i := 0; i < len(p); i++ {
			cur = cur.child(p[i])
		}
		cur.terminal = true
	}

	var out []string
	var walk func(n *node, prefix string)
	walk = func(n *node, prefix string) {
		if n.terminal && n.children[0] == nil && n.children[1] == nil {
			out = append(out, prefix)
			return
		}
		if n.children[0] != nil {
			walk(n.children[0], prefix+"0")
		}
		if n.children[1] != nil {
			walk(n.children[1], prefix+"1")
		}
	}
	walk(root, "")
	return out
}
