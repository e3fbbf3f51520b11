package dimension

import (
	"github.com/arkadyvolkov/tui-ascend/internal/config"
	"github.com/arkadyvolkov/tui-ascend/internal/core"
	"github.com/arkadyvolkov/tui-ascend/internal/render"
	"github.com/arkadyvolkov/tui-ascend/internal/state"
)

// infiniteModule is the terminal stage. There is nothing to match and
// nothing to dodge: update only advances the stillness timer the driver
// watches to trigger the return to dimension 0. Ascension and death are
// both overridden to false.
type infiniteModule struct {
	cfg config.InfiniteTuning
}

func newInfinite(cfg config.InfiniteTuning) *infiniteModule {
	return &infiniteModule{cfg: cfg}
}

func (m *infiniteModule) Dimension() state.Dimension { return state.Infinite }

func (m *infiniteModule) Init(s *state.GameState) {
	s.ResetKinematics(0, 0)
	s.Dimension = state.Infinite
	s.Entities = nil
	s.Symbol = "∞"
	s.StillnessTimer = 0
}

func (m *infiniteModule) Update(s *state.GameState, _ core.InputFrame, dt float64) {
	s.StillnessTimer += dt
}

func (m *infiniteModule) CheckAscension(_ *state.GameState) bool { return false }

func (m *infiniteModule) CheckDeath(_ *state.GameState) bool { return false }

func (m *infiniteModule) SpawnEntities() []state.Entity { return nil }

func (m *infiniteModule) Render(dst render.Surface, s *state.GameState) {
	w, h := dst.Size()
	cx, cy := float64(w)/2, float64(h)/2

	progress := core.ClampF(s.StillnessTimer/m.cfg.Hold, 0, 1)
	dst.Tunnel(s.StillnessTimer*6, core.White, 0.3+0.4*progress)
	dst.Glow(cx, cy, 3, s.Color, 1-progress)
	dst.GlowText(w/2-1, h/2, s.Symbol, core.White, progress)
	dst.Vignette(progress)
}
