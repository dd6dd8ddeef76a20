package physics

import (
	"math"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/annel0/voxel-sandbox/internal/world/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BlockSource - всё, что физике нужно знать о мире: чтение блока и размеры.
// Чтение вне мира должно возвращать воздух.
type BlockSource interface {
	BlockAt(x, y, z int) block.BlockID
	// Bounds возвращает размеры мира: width по X, height по Z, depth по Y.
	Bounds() (width, height, depth int)
}

// порядок разрешения осей при движении: Y, затем X, затем Z
var moveAxes = [3]int{1, 0, 2}

// SolidBoxes возвращает единичные коробки всех непустых блоков, которые
// покрывает region. Область предварительно обрезается границами мира.
func SolidBoxes(src BlockSource, region cube.Box) []cube.Box {
	width, height, depth := src.Bounds()

	x0 := clampFloor(region.Min[0], width)
	x1 := clampFloor(region.Max[0]+1, width)
	y0 := clampFloor(region.Min[1], depth)
	y1 := clampFloor(region.Max[1]+1, depth)
	z0 := clampFloor(region.Min[2], height)
	z1 := clampFloor(region.Max[2]+1, height)

	var boxes []cube.Box
	for y := y0; y < y1; y++ {
		for z := z0; z < z1; z++ {
			for x := x0; x < x1; x++ {
				if src.BlockAt(x, y, z) != block.AirBlockID {
					boxes = append(boxes, cube.UnitBox(vec.Vec3{X: x, Y: y, Z: z}))
				}
			}
		}
	}
	return boxes
}

func clampFloor(v float32, limit int) int {
	i := int(math.Floor(float64(v)))
	if i < 0 {
		return 0
	}
	if i > limit {
		return limit
	}
	return i
}

// Movement - результат разрешения движения коробки.
type Movement struct {
	// Box - коробка после применения Delta.
	Box cube.Box
	// Requested - исходный вектор движения.
	Requested mgl32.Vec3
	// Delta - фактически применённое смещение.
	Delta mgl32.Vec3
	// OnGround - движение вниз было остановлено опорой.
	OnGround bool
}

// Collided сообщает, было ли смещение по оси axis урезано столкновением.
func (m Movement) Collided(axis int) bool {
	return m.Delta[axis] != m.Requested[axis]
}

// ResolveMove сдвигает box на motion, не допуская проникновения в твёрдые блоки.
// Кандидаты собираются один раз по коробке, растянутой на всё движение; оси
// разрешаются последовательно (Y, X, Z), и каждая следующая ось видит уже
// сдвинутую коробку.
func ResolveMove(src BlockSource, box cube.Box, motion mgl32.Vec3) Movement {
	obstacles := SolidBoxes(src, box.Grow(motion))

	delta := motion
	for _, axis := range moveAxes {
		for _, obstacle := range obstacles {
			delta[axis] = obstacle.ClipCollide(axis, box, delta[axis])
		}
		box = box.TranslateAxis(axis, delta[axis])
	}

	return Movement{
		Box:       box,
		Requested: motion,
		Delta:     delta,
		OnGround:  motion[1] != delta[1] && motion[1] < 0,
	}
}

// Translate сдвигает коробку без проверки столкновений (режим noclip).
func Translate(box cube.Box, motion mgl32.Vec3) Movement {
	return Movement{
		Box:       box.Translate(motion),
		Requested: motion,
		Delta:     motion,
	}
}
