package render

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// GridView - то, что кэшу мешей нужно от сетки. Кэш только читает сетку.
type GridView interface {
	BlockAt(x, y, z int) block.BlockID
	Brightness(x, y, z int) float32
	ChunkCounts() (xs, ys, zs int)
}

// Backend принимает геометрию и рисует её (GPU или заглушка).
type Backend interface {
	// Upload вызывается после перестройки слоя чанка.
	Upload(c *Chunk, layer Layer, mesh *Mesh)
	// Draw рисует непустой актуальный слой чанка.
	Draw(c *Chunk, layer Layer, mesh *Mesh)
}

// ChunkMeshCache делит сетку на чанки и перестраивает их меши по мере
// поступления уведомлений об изменениях, не больше бюджета кадра.
type ChunkMeshCache struct {
	grid       GridView
	xs, ys, zs int
	chunks     []*Chunk
	scratch    *VertexBuffer
}

// NewChunkMeshCache создаёт все чанки сразу; изначально все они грязные.
func NewChunkMeshCache(grid GridView) *ChunkMeshCache {
	xs, ys, zs := grid.ChunkCounts()
	c := &ChunkMeshCache{
		grid:   grid,
		xs:     xs,
		ys:     ys,
		zs:     zs,
		chunks: make([]*Chunk, xs*ys*zs),
	}
	for x := 0; x < xs; x++ {
		for y := 0; y < ys; y++ {
			for z := 0; z < zs; z++ {
				c.chunks[c.index(x, y, z)] = newChunk(vec.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return c
}

func (c *ChunkMeshCache) index(x, y, z int) int {
	return (x+y*c.xs)*c.zs + z
}

// ChunkCount возвращает число чанков.
func (c *ChunkMeshCache) ChunkCount() int { return len(c.chunks) }

// Chunk возвращает чанк по координатам или nil.
func (c *ChunkMeshCache) Chunk(x, y, z int) *Chunk {
	if x < 0 || y < 0 || z < 0 || x >= c.xs || y >= c.ys || z >= c.zs {
		return nil
	}
	return c.chunks[c.index(x, y, z)]
}

// OnChunkModified помечает чанк грязным. Координаты вне сетки игнорируются.
func (c *ChunkMeshCache) OnChunkModified(cx, cy, cz int) {
	if chunk := c.Chunk(cx, cy, cz); chunk != nil {
		chunk.MarkDirty()
	}
}

// DirtyCount возвращает число чанков, ожидающих перестройки.
func (c *ChunkMeshCache) DirtyCount() int {
	n := 0
	for _, chunk := range c.chunks {
		if chunk.dirty {
			n++
		}
	}
	return n
}

// Render выполняет проход отрисовки слоя layer. Видимые грязные чанки
// перестраиваются, пока хватает бюджета кадра (оба слоя за раз); чанк,
// оставшийся грязным, в этом кадре не рисуется.
func (c *ChunkMeshCache) Render(frame *Frame, layer Layer, backend Backend) {
	for _, chunk := range c.chunks {
		if !frame.visible(chunk.Box) {
			continue
		}
		if chunk.dirty && frame.take(layerCount) {
			c.rebuild(chunk, backend)
		}
		if chunk.dirty {
			continue
		}
		mesh := &chunk.layers[layer]
		if mesh.VertexCount > 0 {
			backend.Draw(chunk, layer, mesh)
			frame.drawn++
		}
	}
}

func (c *ChunkMeshCache) rebuild(chunk *Chunk, backend Backend) {
	if c.scratch == nil {
		c.scratch = NewVertexBuffer(MaxChunkVertices)
	}
	chunk.rebuild(c.grid, c.scratch)
	for layer := Layer(0); layer < layerCount; layer++ {
		backend.Upload(chunk, layer, &chunk.layers[layer])
	}
}
