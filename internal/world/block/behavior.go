package block

import (
	"math/rand"

	"github.com/annel0/voxel-sandbox/internal/vec"
)

// TickFunc - поведение блока при случайном тике. Источник случайности
// передаётся явно, чтобы тики были воспроизводимы в тестах.
type TickFunc func(api BlockAPI, pos vec.Vec3, rng *rand.Rand)

// Kind описывает вид блока: индексы текстур по граням
// (down, up, north, south, west, east) и необязательный тик.
type Kind struct {
	ID       BlockID
	Name     string
	Textures [6]int
	Tick     TickFunc
}

// NeedsTick возвращает true, если у блока есть поведение тика.
func (k Kind) NeedsTick() bool {
	return k.Tick != nil
}

// UniformTextures заполняет все шесть граней одним индексом атласа.
func UniformTextures(index int) [6]int {
	return [6]int{index, index, index, index, index, index}
}
