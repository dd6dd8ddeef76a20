package render

import (
	"slices"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/annel0/voxel-sandbox/internal/world/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Chunk - кубическая ячейка сетки 32×32×32 с двумя слоями меша.
type Chunk struct {
	Coords vec.Vec3
	Box    cube.Box

	dirty  bool
	layers [layerCount]Mesh
}

func newChunk(coords vec.Vec3) *Chunk {
	origin := coords.Vec3f().Mul(vec.ChunkSize)
	return &Chunk{
		Coords: coords,
		Box:    cube.Box{Min: origin, Max: origin.Add(mgl32.Vec3{vec.ChunkSize, vec.ChunkSize, vec.ChunkSize})},
		dirty:  true,
	}
}

// Dirty сообщает, ожидает ли чанк перестройки.
func (c *Chunk) Dirty() bool { return c.dirty }

// MarkDirty помечает чанк для перестройки.
func (c *Chunk) MarkDirty() { c.dirty = true }

// Mesh возвращает текущий меш слоя.
func (c *Chunk) Mesh(layer Layer) *Mesh { return &c.layers[layer] }


// rebuild перестраивает оба слоя, используя общий буфер scratch.
func (c *Chunk) rebuild(grid GridView, scratch *VertexBuffer) {
	for layer := Layer(0); layer < layerCount; layer++ {
		scratch.Reset()
		c.tessellate(grid, scratch, layer)
		c.layers[layer] = Mesh{
			VertexCount: scratch.Count(),
			Data:        slices.Clone(scratch.Bytes()),
		}
	}
	c.dirty = false
}

func (c *Chunk) tessellate(grid GridView, buf *VertexBuffer, layer Layer) {
	base := vec.Vec3{X: c.Coords.X * vec.ChunkSize, Y: c.Coords.Y * vec.ChunkSize, Z: c.Coords.Z * vec.ChunkSize}
	for y := 0; y < vec.ChunkSize; y++ {
		for z := 0; z < vec.ChunkSize; z++ {
			for x := 0; x < vec.ChunkSize; x++ {
				local := vec.Vec3{X: x, Y: y, Z: z}
				pos := base.Add(local)
				id := grid.BlockAt(pos.X, pos.Y, pos.Z)
				if id == block.AirBlockID {
					continue
				}
				tessellateBlock(grid, buf, id, pos, local, layer)
			}
		}
	}
}
