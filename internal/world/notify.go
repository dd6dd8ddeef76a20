package world

import "github.com/annel0/voxel-sandbox/internal/vec"

// ChunkListener получает уведомления об изменении чанков сетки.
// Координаты могут выходить за пределы мира - получатель их игнорирует.
type ChunkListener interface {
	OnChunkModified(cx, cy, cz int)
}

// ChunkListenerFunc адаптирует функцию к ChunkListener.
type ChunkListenerFunc func(cx, cy, cz int)

// OnChunkModified вызывает f.
func (f ChunkListenerFunc) OnChunkModified(cx, cy, cz int) { f(cx, cy, cz) }

// SetListener регистрирует единственного слушателя (nil - отключить).
func (g *Grid) SetListener(l ChunkListener) {
	g.listener = l
}

// ChunkCounts возвращает число чанков по X, Y и Z.
func (g *Grid) ChunkCounts() (int, int, int) {
	return ceilDiv(g.width, vec.ChunkSize), ceilDiv(g.depth, vec.ChunkSize), ceilDiv(g.height, vec.ChunkSize)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// notifyChangesOfBlock уведомляет чанк блока и соседний чанк по каждой оси,
// на границе которой лежит блок.
func (g *Grid) notifyChangesOfBlock(x, y, z int) {
	if g.listener == nil {
		return
	}
	pos := vec.Vec3{X: x, Y: y, Z: z}
	c := pos.ToChunkCoords()
	local := pos.LocalInChunk()

	g.listener.OnChunkModified(c.X, c.Y, c.Z)

	switch local.X {
	case 0:
		g.listener.OnChunkModified(c.X-1, c.Y, c.Z)
	case vec.ChunkSize - 1:
		g.listener.OnChunkModified(c.X+1, c.Y, c.Z)
	}
	switch local.Z {
	case 0:
		g.listener.OnChunkModified(c.X, c.Y, c.Z-1)
	case vec.ChunkSize - 1:
		g.listener.OnChunkModified(c.X, c.Y, c.Z+1)
	}
	switch local.Y {
	case 0:
		g.listener.OnChunkModified(c.X, c.Y-1, c.Z)
	case vec.ChunkSize - 1:
		g.listener.OnChunkModified(c.X, c.Y+1, c.Z)
	}
}

func (g *Grid) notifyAll() {
	if g.listener == nil {
		return
	}
	xs, ys, zs := g.ChunkCounts()
	for cx := 0; cx < xs; cx++ {
		for cy := 0; cy < ys; cy++ {
			for cz := 0; cz < zs; cz++ {
				g.listener.OnChunkModified(cx, cy, cz)
			}
		}
	}
}
