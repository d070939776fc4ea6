package render

import (
	"testing"

	"diff-life/internal/life"
)

// Encoding only the masked cells into a persistent buffer must reproduce,
// tick for tick, the exact frame a full re-encode of the same generation
// would produce.
func TestIncrementalEncodeMatchesFullFrame(t *testing.T) {
	const side = 8
	enc := NewEncoder()
	sess := life.NewSession(side, 3)

	pix := make([]byte, 4*side*side)
	enc.Fill(sess.Cells(), pix)

	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, c := range glider {
		sess.Paint(c[1]*side+c[0], true)
	}
	sess.SetRunning(true)

	want := make([]byte, 4*side*side)
	step := func(tick int) {
		t.Helper()
		sess.Tick()
		enc.Encode(sess.Cells(), sess.Changed(), pix)
		enc.Fill(sess.Cells(), want)
		for i := range pix {
			if pix[i] != want[i] {
				t.Fatalf("tick %d: pixel byte %d (cell %d) = %#x, want %#x",
					tick, i, i/4, pix[i], want[i])
			}
		}
	}

	for tick := 1; tick <= 6; tick++ {
		step(tick)
	}

	// Idle paints must surface through the mask as well.
	sess.SetRunning(false)
	sess.Paint(7*side+7, true)
	step(7)
	step(8)
}
