package vectors

// HashTestVector is a fixture for the combine oracle: Combine(Left, Right)
// must equal Expected, all as 0x-prefixed hex digests.
type HashTestVector struct {
	Left     string `json:"left"`
	Right    string `json:"right"`
	Expected string `json:"expected"`
}

// ProofTestVector is a fixture for the compressed inclusion/non-inclusion
// proof shape: reconstructing from Leaf (EMPTY for a non-inclusion fixture)
// at Key through Siblings, gated by Bitmap, must equal Expected.
type ProofTestVector struct {
	TreeDepth uint16   `json:"treeDepth"`
	Leaf      string   `json:"leaf"`
	Key       string   `json:"key"`
	Bitmap    string   `json:"bitmap"`
	Siblings  []string `json:"siblings"`
	Expected  string   `json:"expected"`
}

// WitnessTestVector is a fixture for a full BatchInsert round trip: applying
// Keys/Values as a batch against a tree starting at OldRoot must produce
// NewRoot and a non-deletion proof equal to Proof (bucketed exactly as
// SerializedWitness.Proof).
type WitnessTestVector struct {
	Depth   uint16              `json:"depth"`
	OldRoot string              `json:"oldRoot"`
	NewRoot string              `json:"newRoot"`
	Keys    []string            `json:"keys"`
	Values  []string            `json:"values"`
	Proof   []map[string]string `json:"proof"`
}
