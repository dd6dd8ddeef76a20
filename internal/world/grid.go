package world

import (
	"github.com/annel0/voxel-sandbox/internal/physics"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/annel0/voxel-sandbox/internal/world/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxDepth - наибольшая высота мира: индекс высоты хранится в int16.
const MaxDepth = 1 << 15

// Grid - плотная воксельная сетка фиксированного размера.
//
// Width - протяжённость по X, Height - по Z, Depth - по Y (вертикаль).
// Блок (x, y, z) хранится в blocks[(y*Height+z)*Width+x]. Для каждого
// столбца (x, z) поддерживается индекс высоты: y верхнего непустого блока или -1.
type Grid struct {
	width  int
	height int
	depth  int

	blocks    []byte
	heightmap []int16

	listener    ChunkListener
	unprocessed int
}

// NewGrid создаёт пустую сетку. Размеры не меняются за время жизни сетки.
func NewGrid(width, height, depth int) *Grid {
	g := &Grid{
		width:     width,
		height:    height,
		depth:     depth,
		blocks:    make([]byte, width*height*depth),
		heightmap: make([]int16, width*height),
	}
	for i := range g.heightmap {
		g.heightmap[i] = -1
	}
	return g
}

// Width возвращает размер по X.
func (g *Grid) Width() int { return g.width }

// Height возвращает размер по Z.
func (g *Grid) Height() int { return g.height }

// Depth возвращает размер по Y.
func (g *Grid) Depth() int { return g.depth }

// Bounds возвращает (width, height, depth).
func (g *Grid) Bounds() (int, int, int) { return g.width, g.height, g.depth }

// Volume возвращает число ячеек сетки.
func (g *Grid) Volume() int { return len(g.blocks) }

// IsOutOfBounds проверяет выход координат за пределы сетки.
func (g *Grid) IsOutOfBounds(x, y, z int) bool {
	return x < 0 || y < 0 || z < 0 || x >= g.width || y >= g.depth || z >= g.height
}

func (g *Grid) index(x, y, z int) int {
	return (y*g.height+z)*g.width + x
}

// BlockAt возвращает блок в позиции. Вне сетки - воздух.
func (g *Grid) BlockAt(x, y, z int) block.BlockID {
	if g.IsOutOfBounds(x, y, z) {
		return block.AirBlockID
	}
	return block.BlockID(g.blocks[g.index(x, y, z)])
}

// Block - BlockAt для vec.Vec3.
func (g *Grid) Block(pos vec.Vec3) block.BlockID {
	return g.BlockAt(pos.X, pos.Y, pos.Z)
}

// SetBlock записывает блок, пересчитывает высоту столбца и уведомляет
// слушателя. Вне сетки ничего не делает и возвращает false.
func (g *Grid) SetBlock(x, y, z int, id block.BlockID) bool {
	if g.IsOutOfBounds(x, y, z) {
		return false
	}
	g.blocks[g.index(x, y, z)] = byte(id)
	g.calculateColumn(x, z)
	g.notifyChangesOfBlock(x, y, z)
	return true
}

// IsLit сообщает, открыт ли блок небу. Вне сетки - true.
func (g *Grid) IsLit(x, y, z int) bool {
	if g.IsOutOfBounds(x, y, z) {
		return true
	}
	return y >= int(g.heightmap[x+z*g.width])
}

// Brightness возвращает освещённость: 1.0 для открытых небу блоков, иначе 0.5.
func (g *Grid) Brightness(x, y, z int) float32 {
	if g.IsLit(x, y, z) {
		return 1.0
	}
	return 0.5
}

// HeightAt возвращает индекс высоты столбца (x, z) или -1 вне сетки.
func (g *Grid) HeightAt(x, z int) int {
	if x < 0 || z < 0 || x >= g.width || z >= g.height {
		return -1
	}
	return int(g.heightmap[x+z*g.width])
}

// RaytraceBlock ищет блок, в который упирается отрезок start→end.
func (g *Grid) RaytraceBlock(start, end mgl64.Vec3) (physics.HitResult, bool) {
	return physics.Raytrace(g, start, end)
}

// SolidBoxes возвращает коробки непустых блоков, покрываемых region.
func (g *Grid) SolidBoxes(region cube.Box) []cube.Box {
	return physics.SolidBoxes(g, region)
}

// RecalculateHeightMap пересчитывает индекс высоты всей сетки и сообщает
// слушателю обо всех чанках.
func (g *Grid) RecalculateHeightMap() {
	g.calculateHeightMap()
	g.notifyAll()
}

func (g *Grid) calculateHeightMap() {
	for z := 0; z < g.height; z++ {
		for x := 0; x < g.width; x++ {
			g.calculateColumn(x, z)
		}
	}
}

func (g *Grid) calculateColumn(x, z int) {
	y := g.depth - 1
	for ; y >= 0; y-- {
		if g.blocks[g.index(x, y, z)] != byte(block.AirBlockID) {
			break
		}
	}
	g.heightmap[x+z*g.width] = int16(y)
}
