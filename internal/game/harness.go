package game

// Harness drives the update pipeline — input intents, actor motion, camera
// follow — without an Ebitengine window. It backs the package tests and the
// walk-report binary; Game.Update performs the same sequence per frame.
type Harness struct {
	Actor *Actor
	Cam   Camera

	VW, VH  float64 // viewport in logical pixels
	Elapsed float64 // simulated seconds

	cfg Config
}

// HarnessOption adjusts the harness before the actor is created.
type HarnessOption func(*Harness)

// WithMode selects the motion policy.
func WithMode(m MotionMode) HarnessOption {
	return func(h *Harness) { h.cfg.Mode = m }
}

// WithViewport sets the simulated viewport size.
func WithViewport(w, h float64) HarnessOption {
	return func(hn *Harness) { hn.VW, hn.VH = w, h }
}

// WithStepSpeed overrides the grid step speed in tiles per second.
func WithStepSpeed(s float64) HarnessOption {
	return func(h *Harness) { h.cfg.StepSpeed = s }
}

// WithFreeSpeed overrides the free motion speed in tiles per second.
func WithFreeSpeed(s float64) HarnessOption {
	return func(h *Harness) { h.cfg.FreeSpeed = s }
}

// WithSnapBand overrides the cosmetic snap speed and duration band.
func WithSnapBand(speed, minDur, maxDur float64) HarnessOption {
	return func(h *Harness) {
		h.cfg.SnapSpeed = speed
		h.cfg.SnapMinDur = minDur
		h.cfg.SnapMaxDur = maxDur
	}
}

// NewHarness builds a harness with the default config, actor at (0,0) and
// the camera centred on it.
func NewHarness(opts ...HarnessOption) *Harness {
	h := &Harness{cfg: DefaultConfig(), VW: 1280, VH: 720}
	for _, opt := range opts {
		opt(h)
	}
	h.Actor = NewActor(h.cfg)
	h.Cam = NewCamera(Project(h.Actor.Logical()))
	return h
}

// Step advances one simulated frame. dt passes through the same clamp a
// real frame does.
func (h *Harness) Step(dt float64) {
	dt = clampDT(dt)
	h.Actor.Update(dt)
	h.Cam.Follow(Project(h.Actor.Logical()), h.VW, h.VH)
	h.Elapsed += dt
}

// Run advances whole seconds of simulated time in fixed frames.
func (h *Harness) Run(seconds, frameDT float64) {
	for t := 0.0; t < seconds; t += frameDT {
		h.Step(frameDT)
	}
}

// VisibleCount enumerates this frame's visible tiles and returns how many
// there are.
func (h *Harness) VisibleCount() int {
	return VisibleTiles(h.Cam.Offset, h.VW, h.VH, func(TileDraw) {})
}
