package entity

import (
	"math"
	"math/rand"

	"github.com/annel0/voxel-sandbox/internal/physics"
	"github.com/annel0/voxel-sandbox/internal/world/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// EntityType представляет тип сущности
type EntityType uint16

const (
	EntityTypePlayer EntityType = iota
	EntityTypeZombie
)

// String возвращает имя типа сущности
func (t EntityType) String() string {
	switch t {
	case EntityTypePlayer:
		return "player"
	case EntityTypeZombie:
		return "zombie"
	default:
		return "unknown"
	}
}

const (
	// DefaultWidth и DefaultHeight задают хитбокс сущности.
	DefaultWidth  float32 = 0.6
	DefaultHeight float32 = 1.8

	defaultYaw  float32 = 90
	eyeOffset   float32 = 0.18
	gravity     float32 = 0.08
	jumpImpulse float32 = 0.5

	groundSpeed float32 = 0.1
	airSpeed    float32 = 0.02

	airFriction    float32 = 0.91
	fallFriction   float32 = 0.98
	groundFriction float32 = 0.7

	moveDeadzone float32 = 0.01
)

// World предоставляет сущности доступ к миру: чтение блоков и освещённость столбцов.
type World interface {
	physics.BlockSource
	IsLit(x, y, z int) bool
}

// Entity - общая часть всех сущностей, которой оперирует коллекция.
type Entity interface {
	Type() EntityType
	Base() *Body
	Tick(w World)
}

// Body представляет физическое тело сущности в мире
type Body struct {
	ID           uuid.UUID  // Уникальный идентификатор тела
	Position     mgl32.Vec3 // Позиция ног (центр по X/Z, низ хитбокса по Y)
	PrevPosition mgl32.Vec3 // Позиция на предыдущем тике, для интерполяции
	Velocity     mgl32.Vec3
	Size         mgl32.Vec2 // Ширина и высота хитбокса
	Yaw          float32    // Градусы, [-180, 180)
	Pitch        float32    // Градусы, [-90, 90]
	EyeHeight    float32
	Box          cube.Box
	OnGround     bool
	CanFly       bool
	NoClip       bool // Действует только вместе с CanFly

	removed bool
}

// NewBody создаёт тело в случайной точке над миром
func NewBody(w World, rng *rand.Rand) *Body {
	b := &Body{
		ID:        uuid.New(),
		Size:      mgl32.Vec2{DefaultWidth, DefaultHeight},
		Yaw:       defaultYaw,
		EyeHeight: DefaultHeight - eyeOffset,
	}
	b.GoToRandomPosition(w, rng)
	return b
}

// SetPosition переносит тело без проверки столкновений
func (b *Body) SetPosition(x, y, z float32) {
	b.Position = mgl32.Vec3{x, y, z}
	b.PrevPosition = b.Position
	half := b.Size[0] / 2
	b.Box = cube.NewBox(x-half, y, z-half, x+half, y+b.Size[1], z+half)
}

// GoToRandomPosition ставит тело в случайную точку над поверхностью мира
func (b *Body) GoToRandomPosition(w World, rng *rand.Rand) {
	width, height, depth := w.Bounds()
	b.SetPosition(
		rng.Float32()*float32(width),
		float32(depth+10),
		rng.Float32()*float32(height),
	)
}

// Turn поворачивает взгляд: yaw заворачивается в [-180, 180), pitch ограничивается ±90
func (b *Body) Turn(dx, dy float32) {
	b.Yaw = wrapDegrees(b.Yaw+dx, -180, 180)
	b.Pitch = mgl32.Clamp(b.Pitch+dy, -90, 90)
}

func wrapDegrees(deg, low, high float32) float32 {
	span := high - low
	switch {
	case deg < low:
		return deg + span
	case deg >= high:
		return deg - span
	default:
		return deg
	}
}

// Look возвращает единичный вектор направления взгляда
func (b *Body) Look() mgl64.Vec3 {
	yaw := mgl64.DegToRad(-float64(b.Yaw))
	pitch := mgl64.DegToRad(-float64(b.Pitch))
	cosPitch := -math.Cos(pitch)
	return mgl64.Vec3{
		math.Sin(yaw) * cosPitch,
		math.Sin(pitch),
		math.Cos(yaw) * cosPitch,
	}
}

// InterpolatedPosition интерполирует позицию между двумя тиками, partial в [0, 1]
func (b *Body) InterpolatedPosition(partial float32) mgl32.Vec3 {
	return b.PrevPosition.Add(b.Position.Sub(b.PrevPosition).Mul(partial))
}

// CameraPosition возвращает позицию глаз; partial=1 даёт текущий тик
func (b *Body) CameraPosition(partial float32) mgl64.Vec3 {
	p := b.InterpolatedPosition(partial)
	return mgl64.Vec3{float64(p[0]), float64(p[1] + b.EyeHeight), float64(p[2])}
}

// Move сдвигает тело с учётом столкновений; столкнувшиеся оси гасят скорость
func (b *Body) Move(w World, motion mgl32.Vec3) {
	var m physics.Movement
	if b.CanFly && b.NoClip {
		m = physics.Translate(b.Box, motion)
	} else {
		m = physics.ResolveMove(w, b.Box, motion)
		for axis := 0; axis < 3; axis++ {
			if m.Collided(axis) {
				b.Velocity[axis] = 0
			}
		}
	}

	b.Box = m.Box
	b.OnGround = m.OnGround
	b.Position = mgl32.Vec3{
		(b.Box.Min[0] + b.Box.Max[0]) / 2,
		b.Box.Min[1],
		(b.Box.Min[2] + b.Box.Max[2]) / 2,
	}
}

// MoveRelative добавляет к скорости шаг в плоскости XZ относительно yaw.
// Слишком короткий ввод игнорируется.
func (b *Body) MoveRelative(xd, zd, speed float32) {
	dist := xd*xd + zd*zd
	if dist < moveDeadzone {
		return
	}
	scale := speed / float32(math.Sqrt(float64(dist)))
	xd *= scale
	zd *= scale

	yaw := float64(mgl32.DegToRad(b.Yaw))
	sin := float32(math.Sin(yaw))
	cos := float32(math.Cos(yaw))
	b.Velocity[0] += xd*cos - zd*sin
	b.Velocity[2] += zd*cos + xd*sin
}

// IsLit сообщает, освещён ли столбец на уровне глаз
func (b *Body) IsLit(w World) bool {
	return w.IsLit(int(b.Position[0]), int(b.Position[1]+b.EyeHeight), int(b.Position[2]))
}

// Remove помечает тело на удаление из коллекции
func (b *Body) Remove() { b.removed = true }

// Removed сообщает, помечено ли тело на удаление
func (b *Body) Removed() bool { return b.removed }

// speed возвращает скорость разгона для текущего состояния
func (b *Body) speed() float32 {
	if b.OnGround || b.CanFly {
		return groundSpeed
	}
	return airSpeed
}

// step выполняет общую часть тика после выбора направления: разгон, движение и трение
func (b *Body) step(w World, xd, zd float32) {
	b.MoveRelative(xd, zd, b.speed())
	b.Move(w, b.Velocity)

	vertical := fallFriction
	if b.CanFly {
		vertical = airFriction
	}
	b.Velocity = mgl32.Vec3{
		b.Velocity[0] * airFriction,
		b.Velocity[1] * vertical,
		b.Velocity[2] * airFriction,
	}

	if b.OnGround {
		b.Velocity = mgl32.Vec3{b.Velocity[0] * groundFriction, 0, b.Velocity[2] * groundFriction}
	}
}
