package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/annel0/voxel-sandbox/internal/config"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/metrics"
	"github.com/annel0/voxel-sandbox/internal/physics"
	"github.com/annel0/voxel-sandbox/internal/render"
	"github.com/annel0/voxel-sandbox/internal/storage"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	_ "github.com/annel0/voxel-sandbox/internal/world/block/implementations"
	"github.com/annel0/voxel-sandbox/internal/world/entity"
)

// maxCatchUpTicks ограничивает число тиков, догоняемых за одну итерацию цикла.
const maxCatchUpTicks = 10

// Options - внешние зависимости игры. Нулевые значения допустимы.
type Options struct {
	Store   storage.WorldStore // nil - мир не сохраняется
	Backend render.Backend     // nil - HeadlessBackend
	Metrics *metrics.Collector // nil - без метрик
	Rand    *rand.Rand         // nil - из world.seed
	Noise   world.NoiseSource  // nil - по world.noise
}

// Game владеет миром, кешем мешей и сущностями и гоняет их в одном потоке.
type Game struct {
	cfg     *config.Config
	grid    *world.Grid
	cache   *render.ChunkMeshCache
	backend render.Backend
	store   storage.WorldStore
	metrics *metrics.Collector
	rng     *rand.Rand
	log     *logging.Logger

	player  *entity.Player
	zombies *entity.Collection
	loaded  bool

	target    physics.HitResult
	hasTarget bool
	selected  block.BlockID

	tick     uint64
	counters secondCounters

	actions chan Action

	statsMu sync.RWMutex
	stats   Stats
}

// New загружает или генерирует мир и расставляет сущности.
func New(cfg *config.Config, opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.World.ResolveSeed()))
	}

	noise := opts.Noise
	if noise == nil {
		noise = world.NewNoise(cfg.World.Noise, rng)
	}

	var store world.Store
	if opts.Store != nil {
		store = opts.Store
	}
	grid, loaded := world.Open(cfg.World.Width, cfg.World.Height, cfg.World.Depth, store, world.NewWorldGenerator(noise))

	cache := render.NewChunkMeshCache(grid)
	grid.SetListener(cache)

	backend := opts.Backend
	if backend == nil {
		backend = &render.HeadlessBackend{}
	}

	g := &Game{
		cfg:      cfg,
		grid:     grid,
		cache:    cache,
		backend:  backend,
		store:    opts.Store,
		metrics:  opts.Metrics,
		rng:      rng,
		log:      logging.GetGameLogger(),
		player:   entity.NewPlayer(grid, rng),
		zombies:  entity.NewCollection(),
		loaded:   loaded,
		selected: hotbar[0],
		actions:  make(chan Action, 64),
	}

	centerX, centerZ := float32(cfg.World.Width)/2, float32(cfg.World.Height)/2
	for i := 0; i < cfg.Game.Zombies; i++ {
		z := entity.NewZombie(grid, rng)
		z.SetPosition(centerX, z.Position[1], centerZ)
		g.zombies.Add(z)
	}

	g.publishStats()
	g.log.Info("🎮 Игра готова: мир %dx%dx%d, чанков %d, зомби %d",
		cfg.World.Width, cfg.World.Height, cfg.World.Depth, cache.ChunkCount(), g.zombies.Len())
	return g
}

// Grid возвращает сетку мира
func (g *Game) Grid() *world.Grid { return g.grid }

// Cache возвращает кеш мешей чанков
func (g *Game) Cache() *render.ChunkMeshCache { return g.cache }

// Player возвращает игрока
func (g *Game) Player() *entity.Player { return g.player }

// Zombies возвращает коллекцию зомби
func (g *Game) Zombies() *entity.Collection { return g.zombies }

// Loaded сообщает, был ли мир загружен из хранилища
func (g *Game) Loaded() bool { return g.loaded }

// Target возвращает блок под прицелом на последнем тике
func (g *Game) Target() (physics.HitResult, bool) { return g.target, g.hasTarget }

// Update выполняет один тик симуляции.
func (g *Game) Update() {
	g.drainActions()

	g.target, g.hasTarget = g.player.Raytrace(g.grid, g.cfg.Game.Reach)

	ts := g.grid.Tick(g.rng)
	g.player.Tick(g.grid)
	if removed := g.zombies.Tick(g.grid); removed > 0 {
		g.log.Debug("🧟 Удалено упавших зомби: %d", removed)
	}

	g.tick++
	g.counters.ticks++
	g.metrics.ObserveTick(ts.Visits, ts.Updates)
}

// RenderFrame рисует оба слоя мира через бэкенд с общим бюджетом перестроек.
func (g *Game) RenderFrame() *render.Frame {
	frame := render.NewFrame(g.cfg.Game.RebuildBudget)
	g.cache.Render(frame, render.LayerLit, g.backend)
	g.cache.Render(frame, render.LayerShaded, g.backend)

	g.counters.frames++
	g.counters.rebuilds += frame.Rebuilt()
	g.metrics.ObserveFrame(frame.Rebuilt(), g.cache.DirtyCount())
	return frame
}

// Run крутит цикл с фиксированным шагом до отмены ctx. После выхода мир сохраняется.
func (g *Game) Run(ctx context.Context) error {
	interval := g.cfg.Game.TickInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	second := time.NewTicker(time.Second)
	defer second.Stop()

	g.log.Info("▶️ Игровой цикл запущен: %d TPS", g.cfg.Game.TicksPerSecond)

	last := time.Now()
	var lag time.Duration
	for {
		select {
		case <-ctx.Done():
			g.log.Info("🛑 Игровой цикл остановлен на тике %d", g.tick)
			g.saveBestEffort()
			return nil
		case now := <-ticker.C:
			lag += now.Sub(last)
			last = now

			steps := 0
			for lag >= interval && steps < maxCatchUpTicks {
				g.Update()
				lag -= interval
				steps++
			}
			if steps == maxCatchUpTicks && lag >= interval {
				g.log.Warn("⚠️ Цикл не успевает, пропущено %v", lag)
				lag = 0
			}
			g.RenderFrame()
		case <-second.C:
			g.rollSecond()
		}
	}
}

// Close закрывает хранилище мира.
func (g *Game) Close() error {
	if g.store == nil {
		return nil
	}
	return g.store.Close()
}
