package render

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/annel0/voxel-sandbox/internal/world/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Атлас текстур: сетка 16×16 тайлов по 16 пикселей.
const (
	atlasTiles    = 16
	atlasTileSize = 16
	atlasSize     = atlasTiles * atlasTileSize
)

// faceShade - плоское затенение граней по направлению.
var faceShade = [6]float32{
	cube.FaceDown:  1.0,
	cube.FaceUp:    1.0,
	cube.FaceNorth: 0.8,
	cube.FaceSouth: 0.8,
	cube.FaceWest:  0.6,
	cube.FaceEast:  0.6,
}

// faceCorner - угол грани: смещение внутри единичного куба и выбор u1/v1.
type faceCorner struct {
	pos    mgl32.Vec3
	u1, v1 bool
}

// faceCorners задаёт обход вершин каждой грани.
var faceCorners = [6][4]faceCorner{
	cube.FaceDown: {
		{mgl32.Vec3{0, 0, 0}, false, false},
		{mgl32.Vec3{1, 0, 0}, true, false},
		{mgl32.Vec3{1, 0, 1}, true, true},
		{mgl32.Vec3{0, 0, 1}, false, true},
	},
	cube.FaceUp: {
		{mgl32.Vec3{0, 1, 0}, false, false},
		{mgl32.Vec3{0, 1, 1}, false, true},
		{mgl32.Vec3{1, 1, 1}, true, true},
		{mgl32.Vec3{1, 1, 0}, true, false},
	},
	cube.FaceNorth: {
		{mgl32.Vec3{0, 0, 0}, true, true},
		{mgl32.Vec3{0, 1, 0}, true, false},
		{mgl32.Vec3{1, 1, 0}, false, false},
		{mgl32.Vec3{1, 0, 0}, false, true},
	},
	cube.FaceSouth: {
		{mgl32.Vec3{0, 0, 1}, false, true},
		{mgl32.Vec3{1, 0, 1}, true, true},
		{mgl32.Vec3{1, 1, 1}, true, false},
		{mgl32.Vec3{0, 1, 1}, false, false},
	},
	cube.FaceWest: {
		{mgl32.Vec3{0, 0, 0}, false, true},
		{mgl32.Vec3{0, 0, 1}, true, true},
		{mgl32.Vec3{0, 1, 1}, true, false},
		{mgl32.Vec3{0, 1, 0}, false, false},
	},
	cube.FaceEast: {
		{mgl32.Vec3{1, 0, 0}, true, true},
		{mgl32.Vec3{1, 1, 0}, true, false},
		{mgl32.Vec3{1, 1, 1}, false, false},
		{mgl32.Vec3{1, 0, 1}, false, true},
	},
}

// atlasUV возвращает прямоугольник тайла index в атласе.
func atlasUV(index int) (u0, v0, u1, v1 float32) {
	u := (index % atlasTiles) * atlasTileSize
	v := (index / atlasTiles) * atlasTileSize
	return float32(u) / atlasSize, float32(v) / atlasSize,
		float32(u+atlasTileSize) / atlasSize, float32(v+atlasTileSize) / atlasSize
}

// tessellateBlock дописывает в buf открытые грани блока id, попадающие в слой
// layer. local - позиция блока внутри чанка, pos - в мире. Возвращает число граней.
func tessellateBlock(grid GridView, buf *VertexBuffer, id block.BlockID, pos, local vec.Vec3, layer Layer) int {
	kind, _ := block.Get(id)
	origin := local.Vec3f()
	rendered := 0

	for _, face := range cube.Faces {
		n := pos.Add(face.Normal())
		if grid.BlockAt(n.X, n.Y, n.Z) != block.AirBlockID {
			continue
		}
		brightness := grid.Brightness(n.X, n.Y, n.Z)
		if (brightness == 1.0) != (layer == LayerLit) {
			continue
		}

		light := uint8(brightness * faceShade[face] * 255)
		color := [4]uint8{light, light, light, 255}
		u0, v0, u1, v1 := atlasUV(kind.Textures[face])

		for _, c := range faceCorners[face] {
			u, v := u0, v0
			if c.u1 {
				u = u1
			}
			if c.v1 {
				v = v1
			}
			buf.Vertex(origin.Add(c.pos), u, v, color)
		}
		rendered++
	}
	return rendered
}
