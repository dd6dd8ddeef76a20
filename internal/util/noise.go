package util

import (
	"github.com/aquilax/go-perlin"
)

// Параметры шума Перлина
const (
	perlinAlpha   = 2.0 // Сглаживание шума
	perlinBeta    = 2.0 // Частота шума
	perlinOctaves = 3   // Количество октав

	// perlinFeatures - число «холмов» вдоль стороны поля на нулевом уровне.
	perlinFeatures int = 4
	// perlinAmplitude переводит шум [-1, 1] в диапазон поля высот.
	perlinAmplitude = 256
)

// PerlinNoise - источник полей шума на основе шума Перлина. Каждый вызов Read
// даёт независимое поле: сид сдвигается на номер вызова.
type PerlinNoise struct {
	seed  int64
	reads int64
}

// NewPerlinNoise создаёт источник с указанным сидом
func NewPerlinNoise(seed int64) *PerlinNoise {
	return &PerlinNoise{seed: seed}
}

// Read строит поле width×height со значениями около [0, 256).
// Чем больше levels, тем мельче детали.
func (p *PerlinNoise) Read(width, height, levels int) []int {
	gen := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, p.seed+p.reads)
	p.reads++

	features := float64(perlinFeatures << levels)
	out := make([]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nx := float64(x) / float64(width) * features
			ny := float64(y) / float64(height) * features
			out[x+y*width] = int(gen.Noise2D(nx, ny)*perlinAmplitude) + 128
		}
	}
	return out
}
