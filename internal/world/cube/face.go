package cube

import "github.com/annel0/voxel-sandbox/internal/vec"

// Face определяет одну из шести граней куба. Числовые значения используются
// как индексы в таблицах текстур блоков.
type Face uint8

const (
	FaceDown Face = iota
	FaceUp
	FaceNorth
	FaceSouth
	FaceWest
	FaceEast
)

// Faces - все грани в каноническом порядке.
var Faces = [6]Face{FaceDown, FaceUp, FaceNorth, FaceSouth, FaceWest, FaceEast}

var faceNormals = [6]vec.Vec3{
	FaceDown:  {X: 0, Y: -1, Z: 0},
	FaceUp:    {X: 0, Y: 1, Z: 0},
	FaceNorth: {X: 0, Y: 0, Z: -1},
	FaceSouth: {X: 0, Y: 0, Z: 1},
	FaceWest:  {X: -1, Y: 0, Z: 0},
	FaceEast:  {X: 1, Y: 0, Z: 0},
}

// Normal возвращает смещение к соседнему блоку за гранью.
func (f Face) Normal() vec.Vec3 {
	return faceNormals[f]
}

// Opposite возвращает противоположную грань.
func (f Face) Opposite() Face {
	return f ^ 1
}

// Axis возвращает индекс оси (0 - X, 1 - Y, 2 - Z), перпендикулярной грани.
func (f Face) Axis() int {
	switch f {
	case FaceWest, FaceEast:
		return 0
	case FaceDown, FaceUp:
		return 1
	default:
		return 2
	}
}

// Positive сообщает, смотрит ли грань в положительную сторону своей оси.
func (f Face) Positive() bool {
	return f&1 == 1
}

func (f Face) String() string {
	switch f {
	case FaceDown:
		return "down"
	case FaceUp:
		return "up"
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceWest:
		return "west"
	case FaceEast:
		return "east"
	}
	return "unknown"
}
