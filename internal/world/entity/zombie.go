package entity

import (
	"math"
	"math/rand"
)

const (
	zombieYawDamping  = 0.99
	zombieYawJitter   = 0.01
	zombieJumpChance  = 0.01
	zombieTimeOffsets = 1239813
)

// Zombie бродит по миру, плавно меняя направление и иногда подпрыгивая
type Zombie struct {
	*Body
	YawVelocity float64
	TimeOffset  float32 // Сдвиг фазы анимации

	rng *rand.Rand
}

// NewZombie создаёт зомби в случайной точке над миром
func NewZombie(w World, rng *rand.Rand) *Zombie {
	return &Zombie{
		Body:       NewBody(w, rng),
		TimeOffset: rng.Float32() * zombieTimeOffsets,
		rng:        rng,
	}
}

// Type возвращает тип сущности
func (z *Zombie) Type() EntityType { return EntityTypeZombie }

// Base возвращает физическое тело зомби
func (z *Zombie) Base() *Body { return z.Body }

// Tick выполняет блуждание: дрейф курса, случайный прыжок, гравитация и трение
func (z *Zombie) Tick(w World) {
	z.PrevPosition = z.Position

	z.Yaw += float32(z.YawVelocity)
	z.YawVelocity *= zombieYawDamping
	r := z.rng
	z.YawVelocity += (r.Float64() - r.Float64()) * r.Float64() * r.Float64() * zombieYawJitter

	// курс зомби трактуется в радианах
	xd := float32(math.Sin(float64(z.Yaw)))
	zd := float32(math.Cos(float64(z.Yaw)))

	if z.OnGround && r.Float64() < zombieJumpChance {
		z.Velocity[1] = jumpImpulse
	}
	z.Velocity[1] -= gravity

	z.step(w, xd, zd)
}
