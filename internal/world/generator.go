package world

import "github.com/annel0/voxel-sandbox/internal/world/block"

// Уровни детализации полей шума
const (
	heightNoiseLevels = 0
	coarseNoiseLevels = 1

	// controlThreshold - ниже этого значения контрольного поля используется
	// только первое поле высот.
	controlThreshold = 128
)

// WorldGenerator генерирует ландшафт мира
type WorldGenerator struct {
	noise NoiseSource
}

// NewWorldGenerator создаёт новый генератор мира поверх источника шума
func NewWorldGenerator(noise NoiseSource) *WorldGenerator {
	return &WorldGenerator{noise: noise}
}

// Generate заполняет сетку ландшафтом. Байты пишутся напрямую, без
// уведомлений; индекс высоты пересчитывается в конце.
func (wg *WorldGenerator) Generate(g *Grid) {
	w, h, d := g.width, g.height, g.depth

	heights1 := wg.noise.Read(w, h, heightNoiseLevels)
	heights2 := wg.noise.Read(w, h, heightNoiseLevels)
	control := wg.noise.Read(w, h, coarseNoiseLevels)
	rock := wg.noise.Read(w, h, coarseNoiseLevels)

	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			col := x + z*w
			surface, rockTop := columnHeights(heights1[col], heights2[col], control[col], rock[col], d)
			for y := 0; y < d; y++ {
				g.blocks[g.index(x, y, z)] = byte(columnBlock(y, surface, rockTop))
			}
		}
	}

	g.calculateHeightMap()
}

// columnHeights возвращает высоту поверхности и верх каменного слоя столбца.
func columnHeights(h1, h2, control, rock, depth int) (surface, rockTop int) {
	if control < controlThreshold {
		h2 = h1
	}
	surface = max(h1, h2)/8 + depth/3
	rockTop = rock/8 + depth/3
	if rockTop > surface-2 {
		rockTop = surface - 2
	}
	return surface, rockTop
}

func columnBlock(y, surface, rockTop int) block.BlockID {
	switch {
	case y <= rockTop:
		return block.StoneBlockID
	case y == surface:
		return block.GrassBlockID
	case y < surface:
		return block.DirtBlockID
	default:
		return block.AirBlockID
	}
}
