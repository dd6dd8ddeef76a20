package implementations

import "github.com/annel0/voxel-sandbox/internal/world/block"

// Регистрируем все типы блоков при импорте пакета
func init() {
	block.Register(Stone)
	block.Register(Grass)
	block.Register(Dirt)
	block.Register(Cobblestone)
	block.Register(Planks)
}
