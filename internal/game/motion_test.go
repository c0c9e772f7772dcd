package game

import (
	"math"
	"testing"
)

// stepDT gives an exactly-representable progress increment of 1/64 per
// frame at the default step speed of 4 tiles/s, so step completion lands
// on progress == 1 with no float residue.
const stepDT = 1.0 / 256

func TestEase_MonotoneWithFixedEndpoints(t *testing.T) {
	if ease(0) != 0 {
		t.Fatalf("ease(0) = %v, want 0", ease(0))
	}
	if ease(1) != 1 {
		t.Fatalf("ease(1) = %v, want 1", ease(1))
	}
	if math.Abs(ease(0.5)-0.5) > 1e-12 {
		t.Fatalf("ease(0.5) = %v, want 0.5", ease(0.5))
	}
	prev := -1.0
	for i := 0; i <= 1000; i++ {
		v := ease(float64(i) / 1000)
		if v < prev {
			t.Fatalf("ease not monotone at t=%v: %v < %v", float64(i)/1000, v, prev)
		}
		prev = v
	}
}

func TestTapStep_CompletesExactlyAtStepTime(t *testing.T) {
	h := NewHarness(WithMode(ModeTapStep))
	h.Actor.EnqueueStep(DirRight)

	// One step at 4 tiles/s takes 0.25s = 64 frames of stepDT.
	for f := 0; f < 63; f++ {
		h.Step(stepDT)
		if !h.Actor.Stepping() {
			t.Fatalf("step finished early at frame %d", f)
		}
	}
	h.Step(stepDT)
	if h.Actor.Stepping() {
		t.Fatal("step should be complete after exactly 1/speed seconds")
	}
	if i, j := h.Actor.GridPos(); i != 1 || j != 0 {
		t.Fatalf("grid = (%d,%d), want (1,0)", i, j)
	}
	// Exact landing, no residual interpolation drift.
	if pos := h.Actor.Logical(); pos.I != 1 || pos.J != 0 {
		t.Fatalf("render = %v, want exactly (1,0)", pos)
	}
}

func TestTapStep_QueueIsFIFO(t *testing.T) {
	h := NewHarness(WithMode(ModeTapStep))
	h.Actor.EnqueueStep(DirRight)
	h.Actor.EnqueueStep(DirRight)
	h.Actor.EnqueueStep(DirUp)

	want := [][2]int{{1, 0}, {2, 0}, {2, -1}}
	var visited [][2]int
	pi, pj := h.Actor.GridPos()
	for f := 0; f < 1000 && len(visited) < len(want); f++ {
		h.Step(stepDT)
		if i, j := h.Actor.GridPos(); i != pi || j != pj {
			visited = append(visited, [2]int{i, j})
			pi, pj = i, j
		}
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %d tiles, want %d", len(visited), len(want))
	}
	for k := range want {
		if visited[k] != want[k] {
			t.Fatalf("visit %d = %v, want %v (steps must not reorder)", k, visited[k], want[k])
		}
	}
}

func TestTapStep_ChainsWithoutIdleFrame(t *testing.T) {
	h := NewHarness(WithMode(ModeTapStep))
	h.Actor.EnqueueStep(DirRight)
	h.Actor.EnqueueStep(DirUp)

	// Frame 64 completes the first step; the second must already be in
	// flight on that same frame.
	for f := 0; f < 64; f++ {
		h.Step(stepDT)
	}
	if i, j := h.Actor.GridPos(); i != 1 || j != 0 {
		t.Fatalf("grid = (%d,%d), want (1,0)", i, j)
	}
	if !h.Actor.Stepping() {
		t.Fatal("second step should start in the completion frame, not after an idle frame")
	}
	if h.Actor.Facing() != DirUp {
		t.Fatalf("facing = %v, want up once the chained step starts", h.Actor.Facing())
	}
}

func TestTapStep_IgnoredOutsideTapMode(t *testing.T) {
	h := NewHarness(WithMode(ModeHeldStep))
	h.Actor.EnqueueStep(DirRight)
	if h.Actor.QueueLen() != 0 {
		t.Fatal("held mode must not accept queued taps")
	}
	h.Actor.EnqueueStep(DirNone)
	h.Step(stepDT)
	if h.Actor.Stepping() {
		t.Fatal("no intent should mean no motion")
	}
}

func TestHeldDirs_MostRecentWins(t *testing.T) {
	var hd HeldDirs
	hd.Press(DirLeft)
	hd.Press(DirUp)
	if got := hd.Resolve(); got != DirUp {
		t.Fatalf("resolve = %v, want most recently pressed (up)", got)
	}
	hd.Release(DirUp)
	if got := hd.Resolve(); got != DirLeft {
		t.Fatalf("resolve after release = %v, want left", got)
	}
}

func TestHeldDirs_FallbackPriorityOrder(t *testing.T) {
	var hd HeldDirs
	hd.Press(DirRight)
	hd.Press(DirDown)
	hd.Press(DirLeft) // most recent
	hd.Release(DirLeft)
	// Remaining held: right, down. Fixed priority is up, down, left, right.
	if got := hd.Resolve(); got != DirDown {
		t.Fatalf("resolve = %v, want down by fallback priority", got)
	}
	hd.Release(DirDown)
	if got := hd.Resolve(); got != DirRight {
		t.Fatalf("resolve = %v, want right", got)
	}
	hd.Release(DirRight)
	if got := hd.Resolve(); got != DirNone {
		t.Fatalf("resolve with nothing held = %v, want none", got)
	}
}

func TestHeldDirs_DuplicatePhysicalKeys(t *testing.T) {
	var hd HeldDirs
	// W and ArrowUp both feed up; releasing one keeps it held.
	hd.Press(DirUp)
	hd.Press(DirUp)
	hd.Release(DirUp)
	if !hd.IsHeld(DirUp) {
		t.Fatal("up should stay held while one of its keys is down")
	}
	hd.Release(DirUp)
	if hd.IsHeld(DirUp) {
		t.Fatal("up should be released")
	}
}

func TestHeldStep_BufferConsumedOnceAtCompletion(t *testing.T) {
	h := NewHarness(WithMode(ModeHeldStep))
	h.Actor.Press(DirRight)
	h.Step(stepDT) // step toward (1,0) begins
	if !h.Actor.Stepping() {
		t.Fatal("held key should start a step")
	}

	// Mid-step: tap up briefly. It lands in the one-slot buffer and must
	// be consumed exactly once when the current step completes.
	h.Actor.Release(DirRight)
	h.Actor.Press(DirUp)
	h.Step(stepDT) // buffer records up while stepping
	h.Actor.Release(DirUp)

	for f := 0; f < 200 && (h.Actor.Stepping() || f < 70); f++ {
		h.Step(stepDT)
	}
	if i, j := h.Actor.GridPos(); i != 1 || j != -1 {
		t.Fatalf("grid = (%d,%d), want (1,-1): buffered step must run once", i, j)
	}
	if h.Actor.Stepping() {
		t.Fatal("buffer must not replay a second time")
	}
}

func TestHeldStep_LiveKeyBeatsStaleBuffer(t *testing.T) {
	h := NewHarness(WithMode(ModeHeldStep))
	h.Actor.Press(DirRight)
	h.Step(stepDT)
	// Tap up mid-step but keep right held: at completion the live right
	// resolution wins over the stale buffered up.
	h.Actor.Press(DirUp)
	h.Step(stepDT)
	h.Actor.Release(DirUp)

	for f := 0; f < 63; f++ {
		h.Step(stepDT)
	}
	// First step done, second step (right again) in flight.
	if i, j := h.Actor.GridPos(); i != 1 || j != 0 {
		t.Fatalf("grid = (%d,%d), want (1,0)", i, j)
	}
	if h.Actor.Facing() != DirRight {
		t.Fatalf("facing = %v, want right: live key takes precedence", h.Actor.Facing())
	}
}

func TestFree_DiagonalSpeedMatchesAxial(t *testing.T) {
	const frames = 512

	axial := NewHarness(WithMode(ModeFree))
	axial.Actor.Press(DirRight)
	for f := 0; f < frames; f++ {
		axial.Step(stepDT)
	}
	a := axial.Actor.Logical()
	axialDist := math.Hypot(a.I, a.J)

	diag := NewHarness(WithMode(ModeFree))
	diag.Actor.Press(DirRight)
	diag.Actor.Press(DirDown)
	for f := 0; f < frames; f++ {
		diag.Step(stepDT)
	}
	d := diag.Actor.Logical()
	diagDist := math.Hypot(d.I, d.J)

	if math.Abs(axialDist-diagDist) > 1e-9 {
		t.Fatalf("diagonal distance %v != axial distance %v", diagDist, axialDist)
	}
}

func TestFree_OppositeKeysCancel(t *testing.T) {
	h := NewHarness(WithMode(ModeFree))
	h.Actor.Press(DirLeft)
	h.Actor.Press(DirRight)
	for f := 0; f < 100; f++ {
		h.Step(stepDT)
	}
	if pos := h.Actor.Logical(); pos.I != 0 || pos.J != 0 {
		t.Fatalf("opposite keys must cancel, moved to %v", pos)
	}
}

func TestFree_SnapIsDisplayOnly(t *testing.T) {
	h := NewHarness(WithMode(ModeFree))
	h.Actor.Press(DirRight)
	// Stop somewhere strictly between tile centres.
	for f := 0; f < 20; f++ {
		h.Step(stepDT)
	}
	h.Actor.Release(DirRight)
	stopped := h.Actor.Logical()
	if stopped.I == math.Round(stopped.I) {
		t.Fatalf("test setup: expected a mid-tile stop, got %v", stopped)
	}

	// Let the cosmetic snap settle.
	for f := 0; f < 1000; f++ {
		h.Step(stepDT)
	}
	if got := h.Actor.Logical(); got != stopped {
		t.Fatalf("logical position drifted from %v to %v: snap must not feed back", stopped, got)
	}
	disp := h.Actor.Displayed()
	if disp.I != math.Round(stopped.I) || disp.J != math.Round(stopped.J) {
		t.Fatalf("displayed = %v, want the nearest tile centre to %v", disp, stopped)
	}
}

func TestSetMode_KeepsPositionDropsTransients(t *testing.T) {
	h := NewHarness(WithMode(ModeTapStep))
	h.Actor.EnqueueStep(DirRight)
	h.Actor.EnqueueStep(DirRight)
	for f := 0; f < 70; f++ { // first step done, second in flight
		h.Step(stepDT)
	}
	if !h.Actor.Stepping() {
		t.Fatal("test setup: expected an in-flight step")
	}
	h.Actor.SetMode(ModeFree)
	if h.Actor.QueueLen() != 0 {
		t.Fatal("mode switch must clear the tap queue")
	}
	// The in-flight step finishes instantly rather than rewinding.
	if pos := h.Actor.Logical(); pos.I != 2 || pos.J != 0 {
		t.Fatalf("logical after switch = %v, want (2,0)", pos)
	}
	if disp := h.Actor.Displayed(); disp != h.Actor.Logical() {
		t.Fatalf("displayed %v should rejoin logical %v on mode switch", disp, h.Actor.Logical())
	}
}

func TestClampDT(t *testing.T) {
	if got := clampDT(-0.01); got != 0 {
		t.Fatalf("negative dt = %v, want 0", got)
	}
	if got := clampDT(3.5); got != maxFrameDT {
		t.Fatalf("huge dt = %v, want %v", got, maxFrameDT)
	}
	if got := clampDT(0.016); got != 0.016 {
		t.Fatalf("normal dt = %v, want passthrough", got)
	}
}
