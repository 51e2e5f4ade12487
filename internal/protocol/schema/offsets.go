package schema

// Offsets returns the byte offset of every field given the field lengths in
// declaration order, and their total. offsets[i] is the sum of lengths[:i].
func Offsets(lengths []int) (offsets []int, total int) {
	offsets = make([]int, len(lengths))
	for i, l := range lengths {
		offsets[i] = total
		total += l
	}
	return offsets, total
}
