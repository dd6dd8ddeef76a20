package cube

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/go-gl/mathgl/mgl32"
)

// Box - выровненный по осям параллелепипед (AABB). Значимый тип, без идентичности.
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBox создаёт Box по двум углам.
func NewBox(x0, y0, z0, x1, y1, z1 float32) Box {
	return Box{Min: mgl32.Vec3{x0, y0, z0}, Max: mgl32.Vec3{x1, y1, z1}}
}

// UnitBox возвращает единичный куб блока pos.
func UnitBox(pos vec.Vec3) Box {
	min := pos.Vec3f()
	return Box{Min: min, Max: min.Add(mgl32.Vec3{1, 1, 1})}
}

// Grow растягивает коробку только в направлении движения d.
func (b Box) Grow(d mgl32.Vec3) Box {
	for axis := 0; axis < 3; axis++ {
		if d[axis] < 0 {
			b.Min[axis] += d[axis]
		} else {
			b.Max[axis] += d[axis]
		}
	}
	return b
}

// Translate сдвигает коробку на d.
func (b Box) Translate(d mgl32.Vec3) Box {
	return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// TranslateAxis сдвигает коробку вдоль одной оси.
func (b Box) TranslateAxis(axis int, d float32) Box {
	b.Min[axis] += d
	b.Max[axis] += d
	return b
}

// Intersects проверяет строгое пересечение (касание гранями не считается).
func (b Box) Intersects(o Box) bool {
	return o.Max[0] > b.Min[0] && o.Min[0] < b.Max[0] &&
		o.Max[1] > b.Min[1] && o.Min[1] < b.Max[1] &&
		o.Max[2] > b.Min[2] && o.Min[2] < b.Max[2]
}

// overlapsExcept проверяет строгое перекрытие по двум осям, кроме axis.
func (b Box) overlapsExcept(axis int, o Box) bool {
	for a := 0; a < 3; a++ {
		if a == axis {
			continue
		}
		if o.Max[a] <= b.Min[a] || o.Min[a] >= b.Max[a] {
			return false
		}
	}
	return true
}

// ClipCollide ограничивает смещение delta коробки other вдоль оси axis так,
// чтобы она не вошла в b. Учитывается только если other перекрывает b по двум
// другим осям. Модуль смещения никогда не растёт.
func (b Box) ClipCollide(axis int, other Box, delta float32) float32 {
	if !b.overlapsExcept(axis, other) {
		return delta
	}
	if delta > 0 && other.Max[axis] <= b.Min[axis] {
		if limit := b.Min[axis] - other.Max[axis]; limit < delta {
			delta = limit
		}
	}
	if delta < 0 && other.Min[axis] >= b.Max[axis] {
		if limit := b.Max[axis] - other.Min[axis]; limit > delta {
			delta = limit
		}
	}
	return delta
}

// ClipXCollide - ClipCollide по оси X.
func (b Box) ClipXCollide(other Box, dx float32) float32 { return b.ClipCollide(0, other, dx) }

// ClipYCollide - ClipCollide по оси Y.
func (b Box) ClipYCollide(other Box, dy float32) float32 { return b.ClipCollide(1, other, dy) }

// ClipZCollide - ClipCollide по оси Z.
func (b Box) ClipZCollide(other Box, dz float32) float32 { return b.ClipCollide(2, other, dz) }
