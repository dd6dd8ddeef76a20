package implementations

import "github.com/annel0/voxel-sandbox/internal/world/block"

// Stone - камень, основной материал ниже уровня земли.
var Stone = block.Kind{
	ID:       block.StoneBlockID,
	Name:     "Stone",
	Textures: block.UniformTextures(5),
}

// Cobblestone - булыжник, доступен для установки игроком.
var Cobblestone = block.Kind{
	ID:       block.CobblestoneBlockID,
	Name:     "Cobblestone",
	Textures: block.UniformTextures(1),
}

// Planks - доски, доступны для установки игроком.
var Planks = block.Kind{
	ID:       block.PlanksBlockID,
	Name:     "Planks",
	Textures: block.UniformTextures(4),
}
