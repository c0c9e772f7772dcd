package game

import (
	"fmt"
	"math"
)

// Direction is a logical four-way movement direction. Each key maps to one
// axis-aligned unit delta in tile space, so the four directions follow the
// diamond grid's edges on screen: up is the up-right edge, left the up-left
// edge, and so on.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	directionCount
)

// dirDelta returns the tile-space unit delta for a direction.
func dirDelta(d Direction) (di, dj int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// heldPriority is the fallback ordering consulted when the most recently
// pressed key is no longer held. The ordering is arbitrary but fixed, so
// resolution never depends on map iteration order.
var heldPriority = []Direction{DirUp, DirDown, DirLeft, DirRight}

// HeldDirs tracks the set of currently held direction keys. Two physical
// keys may feed the same logical direction (WASD and arrows), so each
// direction carries a hold count rather than a boolean.
type HeldDirs struct {
	count       [directionCount]int
	lastPressed Direction
}

// Press records a key-down for a direction.
func (h *HeldDirs) Press(d Direction) {
	if d == DirNone || d >= directionCount {
		return
	}
	h.count[d]++
	h.lastPressed = d
}

// Release records a key-up for a direction.
func (h *HeldDirs) Release(d Direction) {
	if d == DirNone || d >= directionCount {
		return
	}
	if h.count[d] > 0 {
		h.count[d]--
	}
}

// IsHeld reports whether at least one key for the direction is down.
func (h *HeldDirs) IsHeld(d Direction) bool {
	return d != DirNone && d < directionCount && h.count[d] > 0
}

// Resolve picks the direction to move in: the most recently pressed key if
// it is still held, otherwise the first held direction in heldPriority
// order. Returns DirNone when nothing is held.
func (h *HeldDirs) Resolve() Direction {
	if h.IsHeld(h.lastPressed) {
		return h.lastPressed
	}
	for _, d := range heldPriority {
		if h.IsHeld(d) {
			return d
		}
	}
	return DirNone
}

// Vector sums the unit deltas of all held directions. Each direction
// contributes once no matter how many keys feed it, so opposite keys cancel
// exactly.
func (h *HeldDirs) Vector() (vi, vj float64) {
	for d := DirUp; d < directionCount; d++ {
		if h.count[d] > 0 {
			di, dj := dirDelta(d)
			vi += float64(di)
			vj += float64(dj)
		}
	}
	return vi, vj
}

// MotionMode selects the movement policy for the actor.
type MotionMode uint8

const (
	// ModeTapStep: one grid step per key press, pending presses queued FIFO.
	ModeTapStep MotionMode = iota
	// ModeHeldStep: grid steps resolved every frame from the held-key set.
	ModeHeldStep
	// ModeFree: continuous velocity motion with a cosmetic snap toward the
	// nearest tile centre.
	ModeFree
	motionModeCount
)

func (m MotionMode) String() string {
	switch m {
	case ModeTapStep:
		return "tap-step"
	case ModeHeldStep:
		return "held-step"
	case ModeFree:
		return "free"
	default:
		return "unknown"
	}
}

// ParseMotionMode maps a CLI mode name to its MotionMode.
func ParseMotionMode(s string) (MotionMode, error) {
	switch s {
	case "tap", "tap-step":
		return ModeTapStep, nil
	case "held", "held-step":
		return ModeHeldStep, nil
	case "free":
		return ModeFree, nil
	}
	return 0, fmt.Errorf("unknown motion mode %q (want tap, held or free)", s)
}

// ease is the interpolation curve for steps and snaps: smooth start and
// stop, ease(0)=0, ease(1)=1, monotone on [0,1].
func ease(t float64) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*t)
}

// snapState eases the drawn position toward the nearest tile centre in free
// mode. Display-only: it never feeds back into the logical position.
type snapState struct {
	active   bool
	from     Coord
	to       Coord
	progress float64
	duration float64
	display  Coord
}

// Actor is the single controllable entity.
type Actor struct {
	mode MotionMode

	stepSpeed  float64 // grid step speed, tiles per second
	freeSpeed  float64 // free motion speed, tiles per second
	snapSpeed  float64 // cosmetic snap speed, tiles per second
	snapMinDur float64
	snapMaxDur float64

	grid   Coord // last confirmed resting tile, integer-valued (step modes)
	render Coord // continuous logical position

	stepping bool
	from     Coord
	to       Coord
	progress float64

	queue    []Direction // tap mode pending steps, FIFO
	buffered Direction   // held mode one-slot pending direction
	held     HeldDirs

	snap snapState

	facing Direction
	walked float64 // distance walked in tiles, drives the walk cycle
}

// NewActor creates the actor resting on tile (0,0).
func NewActor(cfg Config) *Actor {
	return &Actor{
		mode:       cfg.Mode,
		stepSpeed:  cfg.StepSpeed,
		freeSpeed:  cfg.FreeSpeed,
		snapSpeed:  cfg.SnapSpeed,
		snapMinDur: cfg.SnapMinDur,
		snapMaxDur: cfg.SnapMaxDur,
		facing:     DirDown,
	}
}

// Mode returns the active motion policy.
func (a *Actor) Mode() MotionMode { return a.mode }

// SetMode switches the motion policy at runtime. Transient motion state is
// reset; the actor keeps its position, landing on the nearest sensible tile
// when entering a stepped mode mid-flight.
func (a *Actor) SetMode(m MotionMode) {
	if m == a.mode || m >= motionModeCount {
		return
	}
	if a.stepping {
		// Finish the in-flight step instantly rather than rewinding it.
		a.grid = a.to
		a.render = a.grid
		a.stepping = false
	}
	if m != ModeFree {
		a.grid = Coord{math.Round(a.render.I), math.Round(a.render.J)}
		a.render = a.grid
	}
	a.progress = 0
	a.queue = a.queue[:0]
	a.buffered = DirNone
	a.snap = snapState{to: a.render, display: a.render}
	a.mode = m
}

// EnqueueStep appends one pending step for tap mode. The queue is unbounded
// and strictly FIFO.
func (a *Actor) EnqueueStep(d Direction) {
	if d == DirNone || a.mode != ModeTapStep {
		return
	}
	a.queue = append(a.queue, d)
}

// Press records a direction key going down.
func (a *Actor) Press(d Direction) { a.held.Press(d) }

// Release records a direction key going up.
func (a *Actor) Release(d Direction) { a.held.Release(d) }

// Update advances the actor by dt seconds. dt must already be clamped at
// the frame boundary.
func (a *Actor) Update(dt float64) {
	if a.mode == ModeFree {
		a.updateFree(dt)
		return
	}
	a.updateStepped(dt)
}

func (a *Actor) updateStepped(dt float64) {
	if !a.stepping {
		d := a.nextIntent(false)
		if d == DirNone {
			return
		}
		a.beginStep(d)
	} else if a.mode == ModeHeldStep {
		// A direction resolved mid-step waits in the one-slot buffer.
		if live := a.held.Resolve(); live != DirNone {
			a.buffered = live
		}
	}

	a.progress += a.stepSpeed * dt
	a.walked += a.stepSpeed * dt

	for a.stepping {
		if a.progress < 1 {
			a.render = lerp(a.from, a.to, ease(a.progress))
			return
		}
		// Step complete: land exactly on the target tile, no float drift.
		carry := a.progress - 1
		a.grid = a.to
		a.render = a.grid
		a.stepping = false
		a.progress = 0
		// Chain into the next step in the same frame if an intent exists.
		if d := a.nextIntent(true); d != DirNone {
			a.beginStep(d)
			a.progress = carry
		}
	}
}

// nextIntent picks the direction for the next step, or DirNone. In held
// mode a live key resolution always beats the stale buffered value; the
// buffer is only consulted at step completion.
func (a *Actor) nextIntent(atCompletion bool) Direction {
	switch a.mode {
	case ModeTapStep:
		if len(a.queue) == 0 {
			return DirNone
		}
		d := a.queue[0]
		a.queue = a.queue[1:]
		return d
	case ModeHeldStep:
		if live := a.held.Resolve(); live != DirNone {
			a.buffered = DirNone
			return live
		}
		if atCompletion && a.buffered != DirNone {
			d := a.buffered
			a.buffered = DirNone
			return d
		}
	}
	return DirNone
}

func (a *Actor) beginStep(d Direction) {
	di, dj := dirDelta(d)
	a.from = a.grid
	a.to = Coord{a.grid.I + float64(di), a.grid.J + float64(dj)}
	a.progress = 0
	a.stepping = true
	a.facing = d
}

func (a *Actor) updateFree(dt float64) {
	vi, vj := a.held.Vector()
	if vi != 0 || vj != 0 {
		// Normalize so diagonals are no faster than axial motion.
		n := math.Hypot(vi, vj)
		vi /= n
		vj /= n
		a.render.I += vi * a.freeSpeed * dt
		a.render.J += vj * a.freeSpeed * dt
		a.walked += a.freeSpeed * dt
		a.facing = headingDir(vi, vj)
	}
	a.updateSnap(dt)
}

// headingDir maps a tile-space velocity to a four-way facing, preferring
// the i axis on exact diagonals.
func headingDir(vi, vj float64) Direction {
	if math.Abs(vi) >= math.Abs(vj) {
		if vi > 0 {
			return DirRight
		}
		return DirLeft
	}
	if vj > 0 {
		return DirDown
	}
	return DirUp
}

func (a *Actor) updateSnap(dt float64) {
	target := Coord{math.Round(a.render.I), math.Round(a.render.J)}
	if target != a.snap.to {
		// Nearest tile changed: ease the drawn position from wherever it
		// is now toward the new target.
		dist := math.Hypot(target.I-a.snap.display.I, target.J-a.snap.display.J)
		if dist == 0 {
			a.snap = snapState{to: target, display: target}
		} else {
			dur := dist / a.snapSpeed
			if dur < a.snapMinDur {
				dur = a.snapMinDur
			}
			if dur > a.snapMaxDur {
				dur = a.snapMaxDur
			}
			a.snap = snapState{
				active:   true,
				from:     a.snap.display,
				to:       target,
				duration: dur,
				display:  a.snap.display,
			}
		}
	}
	if !a.snap.active {
		return
	}
	a.snap.progress += dt / a.snap.duration
	if a.snap.progress >= 1 {
		a.snap.display = a.snap.to
		a.snap.active = false
		return
	}
	a.snap.display = lerp(a.snap.from, a.snap.to, ease(a.snap.progress))
}

// Logical returns the authoritative continuous position. The camera and
// any physics consume this, never the displayed position.
func (a *Actor) Logical() Coord { return a.render }

// Displayed returns the position the sprite is drawn at. Identical to
// Logical in the stepped modes; in free mode it is the snap-eased position.
func (a *Actor) Displayed() Coord {
	if a.mode == ModeFree {
		return a.snap.display
	}
	return a.render
}

// GridPos returns the resting tile in the stepped modes, or the nearest
// tile to the logical position in free mode.
func (a *Actor) GridPos() (i, j int) {
	if a.mode == ModeFree {
		return int(math.Round(a.render.I)), int(math.Round(a.render.J))
	}
	return int(a.grid.I), int(a.grid.J)
}

// Stepping reports whether a grid step is in flight.
func (a *Actor) Stepping() bool { return a.stepping }

// Facing returns the current four-way facing.
func (a *Actor) Facing() Direction { return a.facing }

// QueueLen returns the number of pending tap-mode steps.
func (a *Actor) QueueLen() int { return len(a.queue) }

// AnimFrame returns the 2-frame walk cycle index, derived from distance
// walked so the cycle speed tracks actual movement.
func (a *Actor) AnimFrame() int {
	return int(a.walked*2) % 2
}
