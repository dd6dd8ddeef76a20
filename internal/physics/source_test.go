package physics

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// mapSource - разреженный мир для тестов физики.
type mapSource struct {
	width, height, depth int
	blocks               map[vec.Vec3]block.BlockID
}

func newMapSource(width, height, depth int) *mapSource {
	return &mapSource{width: width, height: height, depth: depth, blocks: make(map[vec.Vec3]block.BlockID)}
}

func (m *mapSource) set(x, y, z int, id block.BlockID) {
	m.blocks[vec.Vec3{X: x, Y: y, Z: z}] = id
}

func (m *mapSource) BlockAt(x, y, z int) block.BlockID {
	if x < 0 || y < 0 || z < 0 || x >= m.width || y >= m.depth || z >= m.height {
		return block.AirBlockID
	}
	return m.blocks[vec.Vec3{X: x, Y: y, Z: z}]
}

func (m *mapSource) Bounds() (int, int, int) {
	return m.width, m.height, m.depth
}
