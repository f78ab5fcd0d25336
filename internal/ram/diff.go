package ram

// Difference records one byte that disagrees between two dumps captured
// from the same address space.
type Difference struct {
	Address uint32
	Before  byte
	After   byte
}

// Delta is the signed byte change, in -255..255.
func (d Difference) Delta() int {
	return int(d.After) - int(d.Before)
}

// Compare walks two dumps over their overlapping length and returns every
// byte-level difference in ascending address order. Trailing bytes beyond
// the shorter dump are never compared.
func Compare(before, after *Dump) []Difference {
	limit := len(before.data)
	if len(after.data) < limit {
		limit = len(after.data)
	}
	var diffs []Difference
	for i := 0; i < limit; i++ {
		if before.data[i] != after.data[i] {
			diffs = append(diffs, Difference{
				Address: Base + uint32(i),
				Before:  before.data[i],
				After:   after.data[i],
			})
		}
	}
	return diffs
}
