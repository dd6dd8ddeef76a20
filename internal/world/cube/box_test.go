package cube

import (
	"testing"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestGrowExtendsOnlyTowardMotion(t *testing.T) {
	b := NewBox(0, 0, 0, 1, 1, 1).Grow(mgl32.Vec3{-2, 0.5, 0})
	assert.Equal(t, NewBox(-2, 0, 0, 1, 1.5, 1), b)
}

func TestIntersectsIsStrict(t *testing.T) {
	a := UnitBox(vec.Vec3{})
	assert.False(t, a.Intersects(UnitBox(vec.Vec3{X: 1})), "касание гранью не пересечение")
	assert.True(t, a.Intersects(NewBox(0.5, 0.5, 0.5, 2, 2, 2)))
}

func TestClipYCollide(t *testing.T) {
	obstacle := UnitBox(vec.Vec3{})
	body := NewBox(0.2, 1.5, 0.2, 0.8, 3.3, 0.8)

	assert.InDelta(t, -0.5, obstacle.ClipYCollide(body, -2), 1e-6, "падение останавливается на верхней грани")
	assert.InDelta(t, -0.25, obstacle.ClipYCollide(body, -0.25), 1e-6, "малое смещение не меняется")
	assert.InDelta(t, 1.0, obstacle.ClipYCollide(body, 1.0), 1e-6, "движение от препятствия не ограничивается")

	aside := body.TranslateAxis(0, 2)
	assert.InDelta(t, -2, obstacle.ClipYCollide(aside, -2), 1e-6, "без перекрытия по X/Z клиппинга нет")
}

func TestClipXCollideBothDirections(t *testing.T) {
	obstacle := UnitBox(vec.Vec3{X: 5})
	left := NewBox(3, 0, 0, 4, 1, 1)
	right := NewBox(7, 0, 0, 8, 1, 1)

	assert.InDelta(t, 1, obstacle.ClipXCollide(left, 3), 1e-6)
	assert.InDelta(t, -1, obstacle.ClipXCollide(right, -3), 1e-6)
}

func TestFaceHelpers(t *testing.T) {
	assert.Equal(t, FaceUp, FaceDown.Opposite())
	assert.Equal(t, FaceWest, FaceEast.Opposite())
	assert.Equal(t, vec.Vec3{Z: -1}, FaceNorth.Normal())
	assert.Equal(t, 0, FaceEast.Axis())
	assert.True(t, FaceSouth.Positive())
	assert.False(t, FaceDown.Positive())
}
