package implementations

import (
	"math/rand"
	"testing"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/stretchr/testify/assert"
)

// mockBlockAPI реализует block.BlockAPI для тестирования
type mockBlockAPI struct {
	blocks map[vec.Vec3]block.BlockID
	dark   map[vec.Vec3]bool
	writes int
}

func newMockBlockAPI() *mockBlockAPI {
	return &mockBlockAPI{
		blocks: make(map[vec.Vec3]block.BlockID),
		dark:   make(map[vec.Vec3]bool),
	}
}

func (m *mockBlockAPI) GetBlockID(pos vec.Vec3) block.BlockID {
	if id, exists := m.blocks[pos]; exists {
		return id
	}
	return block.AirBlockID
}

func (m *mockBlockAPI) SetBlock(pos vec.Vec3, id block.BlockID) {
	m.blocks[pos] = id
	m.writes++
}

func (m *mockBlockAPI) IsLit(pos vec.Vec3) bool {
	return !m.dark[pos]
}

func TestGrassTick_ShadedGrassBecomesDirt(t *testing.T) {
	api := newMockBlockAPI()
	pos := vec.Vec3{X: 5, Y: 10, Z: 5}
	api.SetBlock(pos, block.GrassBlockID)
	api.dark[pos] = true

	GrassTick(api, pos, rand.New(rand.NewSource(1)))

	assert.Equal(t, block.DirtBlockID, api.GetBlockID(pos), "трава в тени должна стать землёй")
}

func TestGrassTick_SpreadsOnlyToLitDirt(t *testing.T) {
	api := newMockBlockAPI()
	pos := vec.Vec3{X: 5, Y: 10, Z: 5}
	api.SetBlock(pos, block.GrassBlockID)

	// Заполняем всю окрестность землёй, половину затеняем
	for dx := -1; dx <= 1; dx++ {
		for dy := -3; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				p := vec.Vec3{X: pos.X + dx, Y: pos.Y + dy, Z: pos.Z + dz}
				if p == pos {
					continue
				}
				api.blocks[p] = block.DirtBlockID
				api.dark[p] = dy < 0
			}
		}
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		GrassTick(api, pos, rng)
	}

	spread := 0
	for p, id := range api.blocks {
		if p == pos || id != block.GrassBlockID {
			continue
		}
		assert.False(t, api.dark[p], "трава не должна расти на затенённой земле %v", p)
		assert.LessOrEqual(t, p.Y, pos.Y+1)
		assert.GreaterOrEqual(t, p.Y, pos.Y-3)
		spread++
	}
	assert.Greater(t, spread, 0, "трава должна распространиться хотя бы раз")
}

func TestGrassTick_IgnoresNonDirtNeighbours(t *testing.T) {
	api := newMockBlockAPI()
	pos := vec.Vec3{X: 0, Y: 0, Z: 0}
	api.SetBlock(pos, block.GrassBlockID)
	api.writes = 0

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		GrassTick(api, pos, rng)
	}
	assert.Zero(t, api.writes, "без земли вокруг трава ничего не меняет")
}

func TestRegistryContents(t *testing.T) {
	grass, ok := block.Get(block.GrassBlockID)
	assert.True(t, ok)
	assert.True(t, grass.NeedsTick())
	assert.Equal(t, [6]int{2, 0, 3, 3, 3, 3}, grass.Textures)

	for _, id := range []block.BlockID{block.StoneBlockID, block.DirtBlockID, block.CobblestoneBlockID, block.PlanksBlockID} {
		kind, ok := block.Get(id)
		assert.True(t, ok, "блок %d должен быть зарегистрирован", id)
		assert.False(t, kind.NeedsTick(), "блок %s не тикает", kind.Name)
	}
	assert.Equal(t, 5, block.TextureIndex(block.StoneBlockID, 3))
	assert.False(t, block.IsValidBlockID(200))
}
