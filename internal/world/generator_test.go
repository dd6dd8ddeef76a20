package world

import (
	"math/rand"
	"testing"

	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNoise возвращает заранее заданные поля по порядку вызовов
type fixedNoise struct {
	fields [][]int
	calls  []int
}

func (f *fixedNoise) Read(width, height, levels int) []int {
	f.calls = append(f.calls, levels)
	field := f.fields[0]
	f.fields = f.fields[1:]
	out := make([]int, width*height)
	for i := range out {
		out[i] = field[i%len(field)]
	}
	return out
}

func TestColumnHeights(t *testing.T) {
	// control < 128: берётся только первое поле
	surface, rockTop := columnHeights(80, 240, 100, 40, 48)
	assert.Equal(t, 80/8+16, surface)
	assert.Equal(t, 40/8+16, rockTop)

	// control >= 128: максимум из двух полей
	surface, _ = columnHeights(80, 240, 128, 40, 48)
	assert.Equal(t, 240/8+16, surface)

	// камень не выше поверхности минус два
	surface, rockTop = columnHeights(0, 0, 0, 255, 48)
	assert.Equal(t, surface-2, rockTop)
}

func TestGenerateColumnLayers(t *testing.T) {
	noise := &fixedNoise{fields: [][]int{{64}, {200}, {0}, {16}}}
	gen := NewWorldGenerator(noise)
	g := NewGrid(4, 4, 32)

	gen.Generate(g)
	assert.Equal(t, []int{0, 0, 1, 1}, noise.calls, "два поля высот и два грубых поля")

	surface := 64/8 + 32/3 // 18
	rockTop := 16/8 + 32/3 // 12
	for y := 0; y < 32; y++ {
		got := g.BlockAt(2, y, 3)
		switch {
		case y <= rockTop:
			assert.Equal(t, block.StoneBlockID, got, "y=%d", y)
		case y < surface:
			assert.Equal(t, block.DirtBlockID, got, "y=%d", y)
		case y == surface:
			assert.Equal(t, block.GrassBlockID, got, "y=%d", y)
		default:
			assert.Equal(t, block.AirBlockID, got, "y=%d", y)
		}
	}
	assert.Equal(t, surface, g.HeightAt(2, 3), "индекс высоты посчитан после генерации")
}

func TestGenerateDoesNotNotify(t *testing.T) {
	g := NewGrid(32, 32, 32)
	l := &recordingListener{}
	g.SetListener(l)

	NewWorldGenerator(NewPlasmaNoise(rand.New(rand.NewSource(1)))).Generate(g)
	assert.Empty(t, l.calls, "генерация пишет байты напрямую")
}

func TestPlasmaNoiseDeterministic(t *testing.T) {
	a := NewPlasmaNoise(rand.New(rand.NewSource(77))).Read(64, 64, 0)
	b := NewPlasmaNoise(rand.New(rand.NewSource(77))).Read(64, 64, 0)
	require.Len(t, a, 64*64)
	assert.Equal(t, a, b, "одинаковый источник случайности даёт одинаковое поле")

	c := NewPlasmaNoise(rand.New(rand.NewSource(78))).Read(64, 64, 0)
	assert.NotEqual(t, a, c)
}

func TestPlasmaNoiseIsCentred(t *testing.T) {
	field := NewPlasmaNoise(rand.New(rand.NewSource(11))).Read(64, 64, 1)

	sum := 0
	for _, v := range field {
		sum += v
	}
	mean := float64(sum) / float64(len(field))
	assert.InDelta(t, 128, mean, 64, "значения группируются вокруг 128")
}

func TestCheckNoiseShape(t *testing.T) {
	assert.NoError(t, CheckNoiseShape(256, 256))
	assert.NoError(t, CheckNoiseShape(MinNoiseSize, MinNoiseSize))

	for _, shape := range [][2]int{{256, 64}, {64, 256}, {1, 1}, {0, 0}, {48, 48}} {
		assert.ErrorIs(t, CheckNoiseShape(shape[0], shape[1]), ErrNoiseShape, "%dx%d", shape[0], shape[1])
	}
}

func TestPlasmaNoiseRejectsNonSquareField(t *testing.T) {
	src := NewPlasmaNoise(rand.New(rand.NewSource(1)))
	assert.Panics(t, func() { src.Read(256, 64, coarseNoiseLevels) })
	assert.Panics(t, func() { src.Read(1, 1, coarseNoiseLevels) })
}

func TestPlasmaNoiseSmallestField(t *testing.T) {
	src := NewPlasmaNoise(rand.New(rand.NewSource(3)))
	assert.Len(t, src.Read(MinNoiseSize, MinNoiseSize, heightNoiseLevels), MinNoiseSize*MinNoiseSize)
	assert.Len(t, src.Read(MinNoiseSize, MinNoiseSize, coarseNoiseLevels), MinNoiseSize*MinNoiseSize)

	g := NewGrid(MinNoiseSize, MinNoiseSize, 8)
	NewWorldGenerator(src).Generate(g)
	assert.GreaterOrEqual(t, g.HeightAt(0, 0), 0)
}

func TestNewNoiseIsReproducibleFromSeed(t *testing.T) {
	for _, kind := range []string{NoisePlasma, NoisePerlin} {
		a := generatedGrid(kind, 9)
		b := generatedGrid(kind, 9)
		assert.Equal(t, a.Checksum(), b.Checksum(), kind)
	}
	assert.IsType(t, &PlasmaNoise{}, NewNoise(NoisePlasma, rand.New(rand.NewSource(1))))
	assert.IsType(t, &PlasmaNoise{}, NewNoise("", rand.New(rand.NewSource(1))))
}

// generatedGrid генерирует мир 32x32x16 из seed так же, как сервер
func generatedGrid(kind string, seed int64) *Grid {
	g := NewGrid(32, 32, 16)
	NewWorldGenerator(NewNoise(kind, rand.New(rand.NewSource(seed)))).Generate(g)
	return g
}
