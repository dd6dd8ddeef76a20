package render

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// VertexSize - размер записи вершины: позиция 3×f32, uv 2×f32, цвет 4×u8.
	VertexSize = 3*4 + 2*4 + 4

	// MaxChunkVertices - вершин в худшем случае: каждая грань каждого вокселя.
	MaxChunkVertices = vec.ChunkSize * vec.ChunkSize * vec.ChunkSize * 6 * 4
)

// VertexBuffer - растущий буфер плотно упакованных вершин (little-endian).
// Используется повторно между перестройками: Reset не освобождает память.
type VertexBuffer struct {
	data  []byte
	count int
}

// NewVertexBuffer создаёт буфер с запасом на vertices вершин.
func NewVertexBuffer(vertices int) *VertexBuffer {
	b := &VertexBuffer{}
	b.Reserve(vertices)
	return b
}

// Reserve гарантирует ёмкость минимум на vertices вершин.
func (b *VertexBuffer) Reserve(vertices int) {
	need := vertices * VertexSize
	if cap(b.data) >= need {
		return
	}
	grown := make([]byte, len(b.data), need)
	copy(grown, b.data)
	b.data = grown
}

// Reset очищает буфер, сохраняя ёмкость.
func (b *VertexBuffer) Reset() {
	b.data = b.data[:0]
	b.count = 0
}

// Vertex дописывает одну вершину.
func (b *VertexBuffer) Vertex(pos mgl32.Vec3, u, v float32, color [4]uint8) {
	off := len(b.data)
	b.data = slices.Grow(b.data, VertexSize)[:off+VertexSize]
	rec := b.data[off:]

	binary.LittleEndian.PutUint32(rec[0:], math.Float32bits(pos[0]))
	binary.LittleEndian.PutUint32(rec[4:], math.Float32bits(pos[1]))
	binary.LittleEndian.PutUint32(rec[8:], math.Float32bits(pos[2]))
	binary.LittleEndian.PutUint32(rec[12:], math.Float32bits(u))
	binary.LittleEndian.PutUint32(rec[16:], math.Float32bits(v))
	copy(rec[20:24], color[:])
	b.count++
}

// Count возвращает число записанных вершин.
func (b *VertexBuffer) Count() int { return b.count }

// Bytes возвращает упакованные данные. Срез действителен до следующего Reset.
func (b *VertexBuffer) Bytes() []byte { return b.data }

// Cap возвращает ёмкость буфера в вершинах.
func (b *VertexBuffer) Cap() int { return cap(b.data) / VertexSize }

// DecodeVertex читает i-ю вершину из упакованных данных.
func DecodeVertex(data []byte, i int) (pos mgl32.Vec3, u, v float32, color [4]uint8) {
	rec := data[i*VertexSize : (i+1)*VertexSize]
	f := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(rec[off:])) }
	pos = mgl32.Vec3{f(0), f(4), f(8)}
	copy(color[:], rec[20:24])
	return pos, f(12), f(16), color
}
