package world

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/annel0/voxel-sandbox/internal/util"
)

// Генераторы шума, выбираемые world.noise
const (
	NoisePlasma = "plasma"
	NoisePerlin = "perlin"
)

// MinNoiseSize - наименьшая сторона поля: грубая сетка на уровне
// coarseNoiseLevels должна иметь шаг хотя бы в одну клетку.
const MinNoiseSize = 1 << coarseNoiseLevels

// ErrNoiseShape - поле шума не квадратное или сторона не степень двойки.
var ErrNoiseShape = errors.New("недопустимая форма поля шума")

// NoiseSource строит двумерное поле width×height со значениями примерно в
// [0, 256). levels задаёт грубость: чем больше, тем мельче начальная сетка.
type NoiseSource interface {
	Read(width, height, levels int) []int
}

// plasmaFuzz - разброс начальных значений грубой сетки.
const plasmaFuzz = 16

// PlasmaNoise - фрактал смещения средней точки (diamond-square) на торе.
// Поле должно быть квадратным, см. CheckNoiseShape.
type PlasmaNoise struct {
	rng *rand.Rand
}

// NewPlasmaNoise создаёт источник шума поверх переданного генератора.
func NewPlasmaNoise(rng *rand.Rand) *PlasmaNoise {
	return &PlasmaNoise{rng: rng}
}

// CheckNoiseShape проверяет, что генератор сможет построить поле width×height:
// поле квадратное, сторона - степень двойки не меньше MinNoiseSize.
func CheckNoiseShape(width, height int) error {
	if width != height {
		return fmt.Errorf("%w: %dx%d не квадрат", ErrNoiseShape, width, height)
	}
	if width < MinNoiseSize || width&(width-1) != 0 {
		return fmt.Errorf("%w: сторона %d должна быть степенью двойки не меньше %d", ErrNoiseShape, width, MinNoiseSize)
	}
	return nil
}

// NewNoise возвращает генератор шума по имени. Perlin получает сид из rng,
// поэтому один и тот же seed мира даёт один и тот же ландшафт везде.
func NewNoise(kind string, rng *rand.Rand) NoiseSource {
	if kind == NoisePerlin {
		return util.NewPerlinNoise(rng.Int63())
	}
	return NewPlasmaNoise(rng)
}

// Read строит поле шума. Паникует, если форма поля не проходит CheckNoiseShape.
func (p *PlasmaNoise) Read(width, height, levels int) []int {
	if err := CheckNoiseShape(width, height); err != nil {
		panic(err)
	}
	tmp := make([]int, width*height)
	step := width >> levels

	for y := 0; y < height; y += step {
		for x := 0; x < width; x += step {
			tmp[x+y*width] = (p.rng.Intn(256) - 128) * plasmaFuzz
		}
	}

	wmask, hmask := width-1, height-1
	for step = width >> levels; step > 1; step /= 2 {
		val := 256 * (step << levels)
		ss := step / 2

		// Центры квадратов
		for y := 0; y < height; y += step {
			for x := 0; x < width; x += step {
				c := tmp[x%width+y%height*width]
				r := tmp[(x+step)%width+y%height*width]
				d := tmp[x%width+(y+step)%height*width]
				mu := tmp[(x+step)%width+(y+step)%height*width]
				tmp[x+ss+(y+ss)*width] = (c+d+r+mu)/4 + p.rng.Intn(val*2) - val
			}
		}

		// Середины рёбер
		for y := 0; y < height; y += step {
			for x := 0; x < width; x += step {
				c := tmp[x+y*width]
				r := tmp[(x+step)%width+y*width]
				d := tmp[x+(y+step)%height*width]
				mu := tmp[(x+ss)&wmask+((y+ss-step)&hmask)*width]
				ml := tmp[(x+ss-step)&wmask+((y+ss)&hmask)*width]
				m := tmp[(x+ss)%width+(y+ss)%height*width]
				u := (c+r+m+mu)/4 + p.rng.Intn(val*2) - val
				l := (c+d+m+ml)/4 + p.rng.Intn(val*2) - val
				tmp[x+ss+y*width] = u
				tmp[x+(y+ss)*width] = l
			}
		}
	}

	for i, v := range tmp {
		tmp[i] = v/512 + 128
	}
	return tmp
}
