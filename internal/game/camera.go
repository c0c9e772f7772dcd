package game

// Deadzone sizing: a fraction of the viewport, bounded so tiny windows
// still get a usable zone and huge ones don't let the actor wander off.
const (
	deadzoneWFrac = 0.32
	deadzoneHFrac = 0.28
	deadzoneWMin  = 200
	deadzoneWMax  = 380
	deadzoneHMin  = 160
	deadzoneHMax  = 260
)

// DeadzoneSize returns the deadzone rectangle dimensions for a viewport.
func DeadzoneSize(vw, vh float64) (w, h float64) {
	w = vw * deadzoneWFrac
	if w < deadzoneWMin {
		w = deadzoneWMin
	}
	if w > deadzoneWMax {
		w = deadzoneWMax
	}
	h = vh * deadzoneHFrac
	if h < deadzoneHMin {
		h = deadzoneHMin
	}
	if h > deadzoneHMax {
		h = deadzoneHMax
	}
	return w, h
}

// Camera holds the world-space point currently centred in the viewport.
type Camera struct {
	Offset Point
}

// NewCamera starts centred on the given world point.
func NewCamera(at Point) Camera {
	return Camera{Offset: at}
}

// Follow applies the deadzone policy: while the actor's screen position
// stays strictly inside the deadzone rectangle the offset is untouched;
// when it exceeds the zone on an axis, the offset snaps on that axis so
// the actor sits exactly on the boundary it crossed. Axes are independent,
// and the update depends only on the current actor position, viewport and
// previous offset.
func (c *Camera) Follow(actor Point, vw, vh float64) {
	dzW, dzH := DeadzoneSize(vw, vh)
	halfW := dzW / 2
	halfH := dzH / 2

	relX := actor.X - c.Offset.X
	if relX > halfW {
		c.Offset.X = actor.X - halfW
	} else if relX < -halfW {
		c.Offset.X = actor.X + halfW
	}

	relY := actor.Y - c.Offset.Y
	if relY > halfH {
		c.Offset.Y = actor.Y - halfH
	} else if relY < -halfH {
		c.Offset.Y = actor.Y + halfH
	}
}
