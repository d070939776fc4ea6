package life

// Diff fills mask with a[i] != b[i] for every index and returns how many
// cells differ. The count is what drives the render short-circuit and the
// changed-cell telemetry.
func Diff(a, b, mask []bool) int {
	if len(a) != len(b) || len(a) != len(mask) {
		panic("life: diff buffers differ in length")
	}
	n := 0
	for i := range a {
		changed := a[i] != b[i]
		mask[i] = changed
		if changed {
			n++
		}
	}
	return n
}
