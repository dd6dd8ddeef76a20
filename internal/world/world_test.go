package world

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	_ "github.com/annel0/voxel-sandbox/internal/world/block/implementations"
	"github.com/annel0/voxel-sandbox/internal/world/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingListener запоминает все уведомления о чанках
type recordingListener struct {
	calls []vec.Vec3
}

func (r *recordingListener) OnChunkModified(cx, cy, cz int) {
	r.calls = append(r.calls, vec.Vec3{X: cx, Y: cy, Z: cz})
}

// memoryStore - хранилище в памяти с проверкой длины
type memoryStore struct {
	data []byte
	err  error
}

func (m *memoryStore) Load(dst []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.data == nil {
		return errors.New("пусто")
	}
	if len(m.data) != len(dst) {
		return errors.New("размер не совпадает")
	}
	copy(dst, m.data)
	return nil
}

func (m *memoryStore) Save(src []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data = append([]byte(nil), src...)
	return nil
}

func TestGrid_SetGetRoundTrip(t *testing.T) {
	g := NewGrid(16, 8, 4)
	for _, p := range []vec.Vec3{{X: 0, Y: 0, Z: 0}, {X: 15, Y: 3, Z: 7}, {X: 3, Y: 2, Z: 5}} {
		require.True(t, g.SetBlock(p.X, p.Y, p.Z, block.PlanksBlockID))
		assert.Equal(t, block.PlanksBlockID, g.BlockAt(p.X, p.Y, p.Z), "блок %v должен читаться обратно", p)
	}
	assert.Equal(t, block.PlanksBlockID, block.BlockID(g.blocks[(2*8+5)*16+3]), "раскладка (y*height+z)*width+x")
}

func TestGrid_OutOfBounds(t *testing.T) {
	g := NewGrid(8, 8, 8)
	before := append([]byte(nil), g.blocks...)

	for _, p := range []vec.Vec3{{X: -1}, {Y: -1}, {Z: -1}, {X: 8}, {Y: 8}, {Z: 8}} {
		assert.True(t, g.IsOutOfBounds(p.X, p.Y, p.Z))
		assert.False(t, g.SetBlock(p.X, p.Y, p.Z, block.StoneBlockID), "запись вне мира игнорируется")
		assert.Equal(t, block.AirBlockID, g.BlockAt(p.X, p.Y, p.Z), "вне мира - воздух")
		assert.True(t, g.IsLit(p.X, p.Y, p.Z))
		assert.Equal(t, float32(1.0), g.Brightness(p.X, p.Y, p.Z))
	}
	assert.Equal(t, before, g.blocks, "сетка не должна измениться")
}

func TestGrid_HeightIndexInvariant(t *testing.T) {
	g := NewGrid(8, 8, 16)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		id := block.AirBlockID
		if rng.Intn(2) == 0 {
			id = block.StoneBlockID
		}
		g.SetBlock(rng.Intn(8), rng.Intn(16), rng.Intn(8), id)
	}

	for x := 0; x < 8; x++ {
		for z := 0; z < 8; z++ {
			want := -1
			for y := 15; y >= 0; y-- {
				if g.BlockAt(x, y, z) != block.AirBlockID {
					want = y
					break
				}
			}
			assert.Equal(t, want, g.HeightAt(x, z), "индекс высоты столбца (%d,%d)", x, z)
			for y := 0; y < 16; y++ {
				assert.Equal(t, y >= want, g.IsLit(x, y, z))
			}
		}
	}
}

func TestGrid_Brightness(t *testing.T) {
	g := NewGrid(4, 4, 8)
	g.SetBlock(1, 5, 1, block.StoneBlockID)

	assert.Equal(t, float32(1.0), g.Brightness(1, 6, 1), "над блоком светло")
	assert.Equal(t, float32(1.0), g.Brightness(1, 5, 1), "сам верхний блок освещён")
	assert.Equal(t, float32(0.5), g.Brightness(1, 4, 1), "под блоком тень")
	assert.Equal(t, float32(1.0), g.Brightness(0, 0, 0), "соседний столбец открыт")
}

func TestGrid_ChunkNotifications(t *testing.T) {
	g := NewGrid(128, 128, 64)
	l := &recordingListener{}
	g.SetListener(l)

	g.SetBlock(40, 40, 40, block.StoneBlockID)
	assert.Equal(t, []vec.Vec3{{X: 1, Y: 1, Z: 1}}, l.calls, "внутренний блок уведомляет только свой чанк")

	l.calls = nil
	g.SetBlock(32, 40, 40, block.StoneBlockID)
	assert.Equal(t, []vec.Vec3{{X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}}, l.calls, "локальный X=0 задевает соседа слева")

	l.calls = nil
	g.SetBlock(63, 40, 40, block.StoneBlockID)
	assert.Equal(t, []vec.Vec3{{X: 1, Y: 1, Z: 1}, {X: 2, Y: 1, Z: 1}}, l.calls, "локальный X=31 задевает соседа справа")

	l.calls = nil
	g.SetBlock(40, 31, 0, block.StoneBlockID)
	assert.Equal(t, []vec.Vec3{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: -1}, {X: 1, Y: 1, Z: 0}}, l.calls,
		"граница по Z и Y уведомляет по одному соседу на ось")

	l.calls = nil
	g.SetBlock(-1, 0, 0, block.StoneBlockID)
	assert.Empty(t, l.calls, "запись вне мира не уведомляет")
}

func TestGrid_SetBlockWithoutListener(t *testing.T) {
	g := NewGrid(4, 4, 4)
	assert.True(t, g.SetBlock(1, 1, 1, block.DirtBlockID))
	assert.Equal(t, 1, g.HeightAt(1, 1))
}

func TestGrid_RecalculateNotifiesEveryChunk(t *testing.T) {
	g := NewGrid(64, 64, 32)
	l := &recordingListener{}
	g.SetListener(l)

	g.RecalculateHeightMap()
	assert.Len(t, l.calls, 2*1*2)
}

func TestGrid_TickBudget(t *testing.T) {
	g := NewGrid(16, 16, 16) // 4096 ячеек
	rng := rand.New(rand.NewSource(1))

	stats := g.Tick(rng)
	assert.Equal(t, 10, stats.Visits, "4096/400 посещений")
	assert.Equal(t, 96, g.unprocessed, "остаток переносится")
	assert.Zero(t, stats.Updates, "в пустом мире нечего тикать")

	stats = g.Tick(rng)
	assert.Equal(t, 10, stats.Visits)
	assert.Equal(t, 192, g.unprocessed)
}

func TestGrid_TickTurnsBuriedGrassToDirt(t *testing.T) {
	g := NewGrid(4, 4, 4)
	for x := 0; x < 4; x++ {
		for z := 0; z < 4; z++ {
			g.SetBlock(x, 0, z, block.GrassBlockID)
			g.SetBlock(x, 1, z, block.StoneBlockID)
		}
	}
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 20000; i++ {
		g.Tick(rng)
	}
	for x := 0; x < 4; x++ {
		for z := 0; z < 4; z++ {
			assert.Equal(t, block.DirtBlockID, g.BlockAt(x, 0, z), "трава под камнем превращается в землю")
		}
	}
}

func TestGrid_RaytraceDelegates(t *testing.T) {
	g := NewGrid(16, 16, 16)
	g.SetBlock(4, 2, 4, block.StoneBlockID)

	hit, ok := g.RaytraceBlock(mgl64.Vec3{4.5, 10, 4.5}, mgl64.Vec3{4.5, 0.5, 4.5})
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 4, Y: 2, Z: 4}, hit.Pos)

	boxes := g.SolidBoxes(cube.UnitBox(hit.Pos))
	require.Len(t, boxes, 1)
	assert.Equal(t, cube.UnitBox(hit.Pos), boxes[0])
}

func TestGrid_SaveLoadRoundTrip(t *testing.T) {
	gen := NewWorldGenerator(NewPlasmaNoise(rand.New(rand.NewSource(5))))
	store := &memoryStore{}

	original, loaded := Open(64, 64, 32, nil, gen)
	require.False(t, loaded)
	require.NoError(t, original.Save(store))

	restored, loaded := Open(64, 64, 32, store, gen)
	require.True(t, loaded, "мир должен загрузиться")
	assert.Equal(t, original.blocks, restored.blocks, "блоки должны совпасть побайтно")
	assert.Equal(t, original.heightmap, restored.heightmap)
	assert.Equal(t, original.Checksum(), restored.Checksum())

	restored.SetBlock(1, 1, 1, block.PlanksBlockID)
	assert.NotEqual(t, original.Checksum(), restored.Checksum())
}

func TestGrid_LoadFailureFallsBackToGeneration(t *testing.T) {
	gen := NewWorldGenerator(NewPlasmaNoise(rand.New(rand.NewSource(5))))
	small := &memoryStore{data: make([]byte, 10)}

	g, loaded := Open(32, 32, 32, small, gen)
	assert.False(t, loaded, "несовпадающий размер отклоняется")
	assert.NotEqual(t, -1, g.HeightAt(0, 0), "мир сгенерирован")

	failing := &memoryStore{err: errors.New("диск недоступен")}
	assert.Error(t, g.Save(failing))
}
