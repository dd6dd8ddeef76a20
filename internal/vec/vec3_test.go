package vec

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestFloorVec3NegativeCoordinates(t *testing.T) {
	got := FloorVec3(mgl64.Vec3{-0.5, 2.999, -1})
	assert.Equal(t, Vec3{X: -1, Y: 2, Z: -1}, got)
}

func TestChunkSplit(t *testing.T) {
	v := Vec3{X: 33, Y: 31, Z: 64}
	assert.Equal(t, Vec3{X: 1, Y: 0, Z: 2}, v.ToChunkCoords(), "координаты чанка")
	assert.Equal(t, Vec3{X: 1, Y: 31, Z: 0}, v.LocalInChunk(), "локальные координаты")
}

func TestArithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 6, Z: 3}
	assert.Equal(t, Vec3{X: 5, Y: 8, Z: 6}, a.Add(b))
	assert.Equal(t, 25, a.DistanceSquared(b))
	assert.True(t, a.Add(b).Sub(b).Equals(a))
}
