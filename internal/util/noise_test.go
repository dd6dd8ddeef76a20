package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerlinNoiseFieldsAreIndependent(t *testing.T) {
	src := NewPerlinNoise(1234)
	a := src.Read(32, 32, 0)
	b := src.Read(32, 32, 0)

	require.Len(t, a, 32*32)
	assert.NotEqual(t, a, b, "последовательные поля должны отличаться")
}

func TestPerlinNoiseReproducible(t *testing.T) {
	a := NewPerlinNoise(99).Read(16, 16, 1)
	b := NewPerlinNoise(99).Read(16, 16, 1)
	assert.Equal(t, a, b, "одинаковый сид даёт одинаковое поле")

	for _, v := range a {
		assert.GreaterOrEqual(t, v, 128-2*perlinAmplitude)
		assert.LessOrEqual(t, v, 128+2*perlinAmplitude)
	}
}
