package world

import (
	"math/rand"

	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// blockTickCost - сколько единиц объёма сетки приходится на одно случайное
// посещение блока. Частота тиков не зависит от размера мира.
const blockTickCost = 400

// TickStats - итог одного вызова Tick.
type TickStats struct {
	Visits  int // посещённых случайных ячеек
	Updates int // вызванных поведений тика
}

// Tick выполняет случайные обновления блоков за один шаг симуляции.
func (g *Grid) Tick(rng *rand.Rand) TickStats {
	g.unprocessed += g.Volume()
	visits := g.unprocessed / blockTickCost
	g.unprocessed -= visits * blockTickCost

	stats := TickStats{Visits: visits}
	api := &gridBlockAPI{grid: g}
	for i := 0; i < visits; i++ {
		x := rng.Intn(g.width)
		y := rng.Intn(g.depth)
		z := rng.Intn(g.height)

		kind, ok := block.Get(g.BlockAt(x, y, z))
		if !ok || kind.Tick == nil {
			continue
		}
		kind.Tick(api, posOf(x, y, z), rng)
		stats.Updates++
	}
	return stats
}
