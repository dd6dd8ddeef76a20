package implementations

import (
	"math/rand"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
)

// grassSpreadAttempts - сколько соседних клеток трава пробует захватить за тик.
const grassSpreadAttempts = 4

// Grass - трава: низ как у земли, верх зелёный, бока с травяной кромкой.
var Grass = block.Kind{
	ID:       block.GrassBlockID,
	Name:     "Grass",
	Textures: [6]int{2, 0, 3, 3, 3, 3},
	Tick:     GrassTick,
}

// GrassTick обновляет траву. Открытая небу трава распространяется на соседнюю
// освещённую землю, трава в тени превращается в землю.
func GrassTick(api block.BlockAPI, pos vec.Vec3, rng *rand.Rand) {
	if !api.IsLit(pos) {
		api.SetBlock(pos, block.DirtBlockID)
		return
	}

	for i := 0; i < grassSpreadAttempts; i++ {
		target := vec.Vec3{
			X: pos.X + rng.Intn(3) - 1,
			Y: pos.Y + rng.Intn(5) - 3,
			Z: pos.Z + rng.Intn(3) - 1,
		}
		if api.GetBlockID(target) == block.DirtBlockID && api.IsLit(target) {
			api.SetBlock(target, block.GrassBlockID)
		}
	}
}
