package seqtrie

// CommonPrefixLength returns the length of the longest shared prefix of a and b.
//
// A result of 0 means the sequences are unrelated. A result equal to the
// length of the shorter sequence means it is a prefix of the other.
func CommonPrefixLength(a, b []uint32) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
