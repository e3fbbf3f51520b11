package dimension

import (
	"math/rand"

	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/events"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

// New constructs a fresh module for the given dimension. The variant set
// is closed, so this is a plain switch; unrecognized identifiers default
// to dimension 0 rather than failing. Every call returns an independent
// instance — modules are never shared or reused across runs.
func New(d state.Dimension, cfg config.Tuning, bus *events.Bus, rng *rand.Rand) Module {
	switch d {
	case state.Line:
		return newLine(cfg.Line, bus, rng)
	case state.Plane:
		return newPlane(cfg.Plane, bus, rng)
	case state.Space:
		return newSpace(cfg.Space, bus, rng)
	case state.Fold:
		return newFold(cfg.Fold, bus, rng)
	case state.Nebula:
		return newNebula(cfg.Nebula, bus, rng)
	case state.Infinite:
		return newInfinite(cfg.Infinite)
	default:
		return newPoint(cfg.Point, bus, rng)
	}
}

// Parse maps a level identifier ("0".."5" or "infinite") to a dimension,
// defaulting unknown input to dimension 0.
func Parse(id string) state.Dimension {
	switch id {
	case "1":
		return state.Line
	case "2":
		return state.Plane
	case "3":
		return state.Space
	case "4":
		return state.Fold
	case "5":
		return state.Nebula
	case "infinite":
		return state.Infinite
	default:
		return state.Point
	}
}

// Info describes a dimension for listing commands and menus.
type Info struct {
	ID       string
	Title    string
	Controls string
}

// List returns the dimensions in ascension order with display metadata.
func List() []Info {
	controls := map[state.Dimension]string{
		state.Point:    "1-4 cycle color; match the border on the beat",
		state.Line:     "1-4 cycle color; f to phase through black points",
		state.Plane:    "a/d move; j/l rotate; [/] cycle shape",
		state.Space:    "wasd drift; j/l align rotation; 1-4 cycle color",
		state.Fold:     "e/c expand/contract; j/l and w/s rotate; 1-4 color",
		state.Nebula:   "t/g tune density; e/c scale; 1-4 color",
		state.Infinite: "be still",
	}
	infos := make([]Info, 0, len(state.Dimensions))
	for _, d := range state.Dimensions {
		infos = append(infos, Info{
			ID:       d.String(),
			Title:    d.Title(),
			Controls: controls[d],
		})
	}
	return infos
}
