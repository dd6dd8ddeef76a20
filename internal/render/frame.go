package render

import "github.com/annel0/voxel-sandbox/internal/world/cube"

// DefaultRebuildBudget - перестроек слоёв за кадр (5 чанков по 2 слоя).
const DefaultRebuildBudget = 10

// Frame - состояние одного кадра, общее для обоих проходов отрисовки.
type Frame struct {
	// Visible отсекает невидимые чанки; nil - видно всё.
	Visible func(cube.Box) bool

	budget  int
	rebuilt int
	drawn   int
}

// NewFrame создаёт кадр с бюджетом budget перестроек слоёв.
func NewFrame(budget int) *Frame {
	return &Frame{budget: budget}
}

// Rebuilt возвращает число перестроенных за кадр слоёв.
func (f *Frame) Rebuilt() int { return f.rebuilt }

// Drawn возвращает число отрисованных за кадр слоёв чанков.
func (f *Frame) Drawn() int { return f.drawn }

// Remaining возвращает остаток бюджета.
func (f *Frame) Remaining() int { return f.budget - f.rebuilt }

// take списывает n единиц бюджета, если их хватает.
func (f *Frame) take(n int) bool {
	if f.Remaining() < n {
		return false
	}
	f.rebuilt += n
	return true
}

func (f *Frame) visible(b cube.Box) bool {
	return f.Visible == nil || f.Visible(b)
}
