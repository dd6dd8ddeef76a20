package entity

import (
	"math/rand"

	"github.com/annel0/voxel-sandbox/internal/physics"
)

// Action - дискретное действие игрока на один тик.
type Action uint8

const (
	ActionForward Action = 1 << iota
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
	ActionDescend
)

// Input - набор действий, активных в текущем тике
type Input uint8

// Has сообщает, активно ли действие
func (in Input) Has(a Action) bool { return Input(a)&in != 0 }

// With возвращает набор с добавленным действием
func (in Input) With(a Action) Input { return in | Input(a) }

// Without возвращает набор без действия
func (in Input) Without(a Action) Input { return in &^ Input(a) }

// Player представляет игрока, управляемого вводом
type Player struct {
	*Body
	Input Input // Действия на следующий тик
}

// NewPlayer создаёт игрока в случайной точке над миром
func NewPlayer(w World, rng *rand.Rand) *Player {
	return &Player{Body: NewBody(w, rng)}
}

// Type возвращает тип сущности
func (p *Player) Type() EntityType { return EntityTypePlayer }

// Base возвращает физическое тело игрока
func (p *Player) Base() *Body { return p.Body }

// Tick применяет текущий ввод, гравитацию и трение
func (p *Player) Tick(w World) {
	p.PrevPosition = p.Position

	var xd, zd float32
	if p.Input.Has(ActionForward) {
		zd--
	}
	if p.Input.Has(ActionBack) {
		zd++
	}
	if p.Input.Has(ActionLeft) {
		xd--
	}
	if p.Input.Has(ActionRight) {
		xd++
	}

	if (p.OnGround || p.CanFly) && p.Input.Has(ActionJump) {
		p.Velocity[1] = jumpImpulse
	}
	if p.Input.Has(ActionDescend) {
		p.Velocity[1] = -jumpImpulse
	}
	if !p.CanFly {
		p.Velocity[1] -= gravity
	}

	p.step(w, xd, zd)
}

// Raytrace ищет блок, на который смотрит игрок, в пределах reach
func (p *Player) Raytrace(w World, reach float64) (physics.HitResult, bool) {
	start := p.CameraPosition(1)
	end := start.Add(p.Look().Mul(reach))
	return physics.Raytrace(w, start, end)
}
