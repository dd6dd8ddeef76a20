package world

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// gridBlockAPI реализует block.BlockAPI поверх сетки
type gridBlockAPI struct {
	grid *Grid
}

// BlockAPI возвращает block.BlockAPI для поведения блоков.
func (g *Grid) BlockAPI() block.BlockAPI {
	return &gridBlockAPI{grid: g}
}

// GetBlockID возвращает ID блока по мировым координатам
func (api *gridBlockAPI) GetBlockID(pos vec.Vec3) block.BlockID {
	return api.grid.BlockAt(pos.X, pos.Y, pos.Z)
}

// SetBlock устанавливает блок через единственную точку изменения сетки
func (api *gridBlockAPI) SetBlock(pos vec.Vec3, id block.BlockID) {
	api.grid.SetBlock(pos.X, pos.Y, pos.Z, id)
}

// IsLit сообщает, открыт ли блок небу
func (api *gridBlockAPI) IsLit(pos vec.Vec3) bool {
	return api.grid.IsLit(pos.X, pos.Y, pos.Z)
}

func posOf(x, y, z int) vec.Vec3 {
	return vec.Vec3{X: x, Y: y, Z: z}
}
