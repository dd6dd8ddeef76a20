package implementations

import "github.com/annel0/voxel-sandbox/internal/world/block"

// Dirt - земля. Сама не тикает, но трава распространяется на открытую небу землю.
var Dirt = block.Kind{
	ID:       block.DirtBlockID,
	Name:     "Dirt",
	Textures: block.UniformTextures(2),
}
