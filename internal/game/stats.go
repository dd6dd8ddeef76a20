package game

import (
	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/annel0/voxel-sandbox/internal/world/entity"
)

// secondCounters копит события текущей секунды
type secondCounters struct {
	ticks    int
	frames   int
	rebuilds int
}

// PlayerStats - положение и режимы игрока
type PlayerStats struct {
	Position [3]float32 `json:"position"`
	Yaw      float32    `json:"yaw"`
	Pitch    float32    `json:"pitch"`
	OnGround bool       `json:"on_ground"`
	CanFly   bool       `json:"can_fly"`
	NoClip   bool       `json:"no_clip"`
}

// TargetStats - блок под прицелом
type TargetStats struct {
	Position [3]int `json:"position"`
	Face     string `json:"face"`
	Block    string `json:"block"`
}

// Stats - снимок состояния игры для отладочного сервера.
type Stats struct {
	Tick          uint64       `json:"tick"`
	TPS           int          `json:"tps"`
	FPS           int          `json:"fps"`
	Rebuilds      int          `json:"rebuilds_per_second"`
	ChunksTotal   int          `json:"chunks_total"`
	ChunksDirty   int          `json:"chunks_dirty"`
	Zombies       int          `json:"zombies"`
	Loaded        bool         `json:"loaded_from_storage"`
	SelectedBlock string       `json:"selected_block"`
	Player        PlayerStats  `json:"player"`
	Target        *TargetStats `json:"target,omitempty"`
}

// Snapshot возвращает копию последнего опубликованного снимка.
// Безопасен для вызова из любой горутины.
func (g *Game) Snapshot() Stats {
	g.statsMu.RLock()
	defer g.statsMu.RUnlock()

	s := g.stats
	if s.Target != nil {
		t := *s.Target
		s.Target = &t
	}
	return s
}

// rollSecond публикует посекундные счётчики и обнуляет их
func (g *Game) rollSecond() {
	c := g.counters
	g.counters = secondCounters{}

	g.metrics.SetRates(c.ticks, c.frames)
	for kind, n := range g.zombies.CountByType() {
		g.metrics.SetEntities(kind.String(), n)
	}
	g.metrics.SetEntities(entity.EntityTypePlayer.String(), 1)

	g.publishStatsWith(c)
	g.log.Debug("📊 %d TPS, %d FPS, перестроено слоёв %d, грязных чанков %d, зомби %d",
		c.ticks, c.frames, c.rebuilds, g.cache.DirtyCount(), g.zombies.Len())
}

func (g *Game) publishStats() { g.publishStatsWith(secondCounters{}) }

func (g *Game) publishStatsWith(c secondCounters) {
	p := g.player
	s := Stats{
		Tick:          g.tick,
		TPS:           c.ticks,
		FPS:           c.frames,
		Rebuilds:      c.rebuilds,
		ChunksTotal:   g.cache.ChunkCount(),
		ChunksDirty:   g.cache.DirtyCount(),
		Zombies:       g.zombies.Len(),
		Loaded:        g.loaded,
		SelectedBlock: blockName(g.selected),
		Player: PlayerStats{
			Position: [3]float32{p.Position[0], p.Position[1], p.Position[2]},
			Yaw:      p.Yaw,
			Pitch:    p.Pitch,
			OnGround: p.OnGround,
			CanFly:   p.CanFly,
			NoClip:   p.NoClip,
		},
	}
	if g.hasTarget {
		pos := g.target.Pos
		s.Target = &TargetStats{
			Position: [3]int{pos.X, pos.Y, pos.Z},
			Face:     g.target.Face.String(),
			Block:    blockName(g.grid.Block(pos)),
		}
	}

	g.statsMu.Lock()
	g.stats = s
	g.statsMu.Unlock()
}

func blockName(id block.BlockID) string {
	if kind, ok := block.Get(id); ok {
		return kind.Name
	}
	return "unknown"
}
