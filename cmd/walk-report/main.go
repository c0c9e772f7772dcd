package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"isowalk/internal/game"
)

// walk-report runs a scripted walk headlessly and prints a deterministic
// report of where the actor went and how the camera and tile culling
// responded. Useful for eyeballing motion-policy changes without a window.

func main() {
	var modeName string
	var seconds float64
	var fps float64
	var script string
	var viewW, viewH float64

	flag.StringVar(&modeName, "mode", "tap", "motion mode: tap, held or free")
	flag.Float64Var(&seconds, "seconds", 8, "simulated seconds to run")
	flag.Float64Var(&fps, "fps", 120, "simulated frames per second")
	flag.StringVar(&script, "script", "RRUURDDL", "direction script: U, D, L, R")
	flag.Float64Var(&viewW, "view-w", 1280, "viewport width in pixels")
	flag.Float64Var(&viewH, "view-h", 720, "viewport height in pixels")
	flag.Parse()

	mode, err := game.ParseMotionMode(modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	dirs, err := parseScript(script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if seconds <= 0 || fps <= 0 {
		fmt.Fprintln(os.Stderr, "error: -seconds and -fps must be > 0")
		os.Exit(1)
	}

	h := game.NewHarness(game.WithMode(mode), game.WithViewport(viewW, viewH))
	dt := 1 / fps
	frames := int(seconds * fps)

	fmt.Printf("=== Isowalk Walk Report ===\n")
	fmt.Printf("mode=%s script=%s seconds=%.1f fps=%.0f viewport=%.0fx%.0f\n\n",
		mode, script, seconds, fps, viewW, viewH)

	var visited [][2]int
	pi, pj := h.Actor.GridPos()
	visited = append(visited, [2]int{pi, pj})

	if mode == game.ModeTapStep {
		// Tap mode: the whole script is queued up front.
		for _, d := range dirs {
			h.Actor.EnqueueStep(d)
		}
		for f := 0; f < frames; f++ {
			h.Step(dt)
			pi, pj = recordVisit(h, pi, pj, &visited)
		}
	} else {
		// Held modes: each script entry is held for an equal slice of the run.
		slice, err := holdFrames(frames, len(dirs))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		for k, d := range dirs {
			h.Actor.Press(d)
			end := (k + 1) * slice
			for f := k * slice; f < end; f++ {
				h.Step(dt)
				pi, pj = recordVisit(h, pi, pj, &visited)
			}
			h.Actor.Release(d)
		}
		// Let any in-flight step or snap settle.
		for f := 0; f < int(fps); f++ {
			h.Step(dt)
			pi, pj = recordVisit(h, pi, pj, &visited)
		}
	}

	pos := h.Actor.Logical()
	fmt.Printf("visited_tiles=%d path=%s\n", len(visited), formatPath(visited))
	fmt.Printf("final: tile=(%d,%d) pos=(%.3f,%.3f) facing=%s\n", pi, pj, pos.I, pos.J, h.Actor.Facing())
	fmt.Printf("camera: offset=(%.1f,%.1f)\n", h.Cam.Offset.X, h.Cam.Offset.Y)

	dzW, dzH := game.DeadzoneSize(viewW, viewH)
	fmt.Printf("deadzone: %.0fx%.0f\n", dzW, dzH)
	fmt.Printf("visible_tiles=%d\n", h.VisibleCount())

	// Ground variant census over the tiles around the destination.
	dirt := 0
	total := 0
	for i := pi - 50; i < pi+50; i++ {
		for j := pj - 50; j < pj+50; j++ {
			if game.TileGround(i, j) == game.GroundDirt {
				dirt++
			}
			total++
		}
	}
	fmt.Printf("ground_census: dirt=%d/%d (%.1f%%)\n", dirt, total, 100*float64(dirt)/float64(total))
}

// holdFrames splits the frame budget evenly across script entries. A script
// longer than the budget would truncate to zero frames per entry, so that
// combination is rejected rather than silently simulating nothing.
func holdFrames(frames, entries int) (int, error) {
	slice := frames / entries
	if slice == 0 {
		return 0, fmt.Errorf("script has %d entries but only %d frames; raise -seconds or -fps", entries, frames)
	}
	return slice, nil
}

func parseScript(s string) ([]game.Direction, error) {
	if s == "" {
		return nil, fmt.Errorf("empty script")
	}
	dirs := make([]game.Direction, 0, len(s))
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'U':
			dirs = append(dirs, game.DirUp)
		case 'D':
			dirs = append(dirs, game.DirDown)
		case 'L':
			dirs = append(dirs, game.DirLeft)
		case 'R':
			dirs = append(dirs, game.DirRight)
		default:
			return nil, fmt.Errorf("bad script rune %q (want U, D, L or R)", r)
		}
	}
	return dirs, nil
}

func recordVisit(h *game.Harness, pi, pj int, visited *[][2]int) (int, int) {
	i, j := h.Actor.GridPos()
	if i != pi || j != pj {
		*visited = append(*visited, [2]int{i, j})
	}
	return i, j
}

func formatPath(visited [][2]int) string {
	parts := make([]string, len(visited))
	for k, v := range visited {
		parts[k] = fmt.Sprintf("(%d,%d)", v[0], v[1])
	}
	return strings.Join(parts, "→")
}
