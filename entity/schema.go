package entity

import "strconv"

// Schema declares how a record kind's field IDs are typed. Ints, Strs
// and Bools are disjoint; Special lists IDs with bespoke composite
// handling (obfuscated blobs, comma sub-arrays, nested records).
// Anything outside all four sets lands in the record's Unknown map;
// unrecognized fields never abort a decode.
type Schema struct {
	Ints    []int
	Strs    []int
	Bools   []int
	Special []int
}

func (s Schema) known(id string) bool {
	n, err := strconv.Atoi(id)
	if err != nil {
		return false
	}
	for _, set := range [][]int{s.Ints, s.Strs, s.Bools, s.Special} {
		for _, k := range set {
			if k == n {
				return true
			}
		}
	}
	return false
}

// Unknown collects the fields of r not covered by the schema.
func (s Schema) Unknown(r Raw) map[string]string {
	var out map[string]string
	for k, v := range r {
		if s.known(k) {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[k] = v
	}
	return out
}
