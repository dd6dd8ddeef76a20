package physics

import (
	"math"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/annel0/voxel-sandbox/internal/world/cube"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MaxRaytraceSteps ограничивает число пересекаемых клеток за один луч.
	MaxRaytraceSteps = 100

	// неиспользуемая ось получает заведомо большой параметр
	noCrossing = 999.0

	parallelEpsilon = 1e-7
)

// HitResult описывает блок, в который попал луч.
type HitResult struct {
	Pos   vec.Vec3
	Face  cube.Face
	Point mgl64.Vec3
}

// Raytrace проводит отрезок start→end через сетку клетка за клеткой и
// возвращает первую грань непустого блока, которую он пересекает.
func Raytrace(src BlockSource, start, end mgl64.Vec3) (HitResult, bool) {
	target := vec.FloorVec3(end)
	cur := vec.FloorVec3(start)
	p := start

	for step := 0; step <= MaxRaytraceSteps; step++ {
		if math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsNaN(p[2]) {
			return HitResult{}, false
		}

		if src.BlockAt(cur.X, cur.Y, cur.Z) != block.AirBlockID {
			origin := cur.Vec3d()
			if face, point, ok := IntersectUnitCube(p.Sub(origin), end.Sub(origin)); ok {
				return HitResult{Pos: cur, Face: face, Point: point.Add(origin)}, true
			}
		}

		if cur == target {
			return HitResult{}, false
		}

		var next, t [3]float64
		c := [3]int{cur.X, cur.Y, cur.Z}
		e := [3]int{target.X, target.Y, target.Z}
		for axis := 0; axis < 3; axis++ {
			next[axis] = float64(c[axis])
			if e[axis] > c[axis] {
				next[axis]++
			}
			t[axis] = noCrossing
			if e[axis] != c[axis] {
				t[axis] = (next[axis] - p[axis]) / (end[axis] - p[axis])
			}
		}

		axis := 2
		if t[0] < t[1] && t[0] < t[2] {
			axis = 0
		} else if t[1] < t[2] {
			axis = 1
		}
		negative := e[axis] <= c[axis]

		dist := end.Sub(p)
		for a := 0; a < 3; a++ {
			if a == axis {
				p[a] = next[a]
			} else {
				p[a] += dist[a] * t[axis]
			}
		}

		cur = vec.FloorVec3(p)
		if negative {
			switch axis {
			case 0:
				cur.X--
			case 1:
				cur.Y--
			case 2:
				cur.Z--
			}
		}
	}
	return HitResult{}, false
}

// IntersectUnitCube ищет ближайшую к start грань единичного куба [0,1]³,
// которую пересекает отрезок start→end (в локальных координатах клетки).
func IntersectUnitCube(start, end mgl64.Vec3) (cube.Face, mgl64.Vec3, bool) {
	var (
		bestFace  cube.Face
		bestPoint mgl64.Vec3
		bestDist  = math.Inf(1)
		found     bool
	)
	for _, face := range cube.Faces {
		axis := face.Axis()
		plane := 0.0
		if face.Positive() {
			plane = 1
		}
		point, ok := intermediateWithAxis(start, end, axis, plane)
		if !ok || !withinFace(point, axis) {
			continue
		}
		if d := point.Sub(start).Len(); d < bestDist {
			bestFace, bestPoint, bestDist, found = face, point, d, true
		}
	}
	return bestFace, bestPoint, found
}

// intermediateWithAxis возвращает точку отрезка, где координата axis равна value.
func intermediateWithAxis(start, end mgl64.Vec3, axis int, value float64) (mgl64.Vec3, bool) {
	delta := end.Sub(start)
	if delta[axis]*delta[axis] < parallelEpsilon {
		return mgl64.Vec3{}, false
	}
	t := (value - start[axis]) / delta[axis]
	if t < 0 || t > 1 {
		return mgl64.Vec3{}, false
	}
	return start.Add(delta.Mul(t)), true
}

// withinFace проверяет, что точка лежит в пределах грани по двум свободным осям.
func withinFace(p mgl64.Vec3, fixedAxis int) bool {
	for a := 0; a < 3; a++ {
		if a == fixedAxis {
			continue
		}
		if p[a] < 0 || p[a] > 1 {
			return false
		}
	}
	return true
}
