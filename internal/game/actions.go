package game

import (
	"fmt"

	"github.com/annel0/voxel-sandbox/internal/world/block"
	"github.com/annel0/voxel-sandbox/internal/world/cube"
	"github.com/annel0/voxel-sandbox/internal/world/entity"
)

// MouseSensitivity переводит смещение курсора в градусы поворота.
const MouseSensitivity float32 = 0.08

// hotbar - блоки, выбираемые клавишами 1-4.
var hotbar = [...]block.BlockID{
	block.StoneBlockID,
	block.DirtBlockID,
	block.CobblestoneBlockID,
	block.PlanksBlockID,
}

// Action - команда, которую можно передать в цикл из другой горутины.
type Action string

const (
	ActionSave         Action = "save"
	ActionRespawn      Action = "respawn"
	ActionSpawnZombie  Action = "spawn_zombie"
	ActionToggleFly    Action = "toggle_fly"
	ActionToggleNoClip Action = "toggle_noclip"
	ActionBreak        Action = "break"
	ActionPlace        Action = "place"
)

// Actions перечисляет все команды
var Actions = []Action{
	ActionSave, ActionRespawn, ActionSpawnZombie, ActionToggleFly,
	ActionToggleNoClip, ActionBreak, ActionPlace,
}

// ParseAction проверяет имя команды
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("неизвестная команда %q", name)
}

// Submit ставит команду в очередь; она выполнится в начале следующего тика.
// Возвращает false, если очередь переполнена.
func (g *Game) Submit(a Action) bool {
	select {
	case g.actions <- a:
		return true
	default:
		return false
	}
}

func (g *Game) drainActions() {
	for {
		select {
		case a := <-g.actions:
			g.Perform(a)
		default:
			return
		}
	}
}

// Perform выполняет команду немедленно. Вызывать только из потока цикла.
func (g *Game) Perform(a Action) {
	switch a {
	case ActionSave:
		g.saveBestEffort()
	case ActionRespawn:
		g.Respawn()
	case ActionSpawnZombie:
		g.SpawnZombie()
	case ActionToggleFly:
		g.ToggleFly()
	case ActionToggleNoClip:
		g.ToggleNoClip()
	case ActionBreak:
		g.BreakBlock()
	case ActionPlace:
		g.PlaceBlock()
	}
}

// SetInput задаёт действия движения игрока на следующий тик
func (g *Game) SetInput(in entity.Input) { g.player.Input = in }

// Turn поворачивает взгляд игрока по смещению курсора
func (g *Game) Turn(dx, dy float32) {
	g.player.Turn(dx*MouseSensitivity, dy*MouseSensitivity)
}

// SelectBlock выбирает блок по слоту 1-4
func (g *Game) SelectBlock(slot int) bool {
	if slot < 1 || slot > len(hotbar) {
		return false
	}
	g.selected = hotbar[slot-1]
	return true
}

// Selected возвращает выбранный для установки блок
func (g *Game) Selected() block.BlockID { return g.selected }

// BreakBlock заменяет блок под прицелом воздухом
func (g *Game) BreakBlock() bool {
	if !g.hasTarget {
		return false
	}
	p := g.target.Pos
	if !g.grid.SetBlock(p.X, p.Y, p.Z, block.AirBlockID) {
		return false
	}
	g.hasTarget = false
	g.metrics.BlockEdit("break")
	return true
}

// PlaceBlock ставит выбранный блок к грани под прицелом, если он не пересечёт игрока
func (g *Game) PlaceBlock() bool {
	if !g.hasTarget {
		return false
	}
	p := g.target.Pos.Add(g.target.Face.Normal())
	if cube.UnitBox(p).Intersects(g.player.Box) {
		return false
	}
	if !g.grid.SetBlock(p.X, p.Y, p.Z, g.selected) {
		return false
	}
	g.metrics.BlockEdit("place")
	return true
}

// ToggleFly переключает полёт игрока
func (g *Game) ToggleFly() {
	g.player.CanFly = !g.player.CanFly
	g.log.Debug("🕊️ Полёт: %v", g.player.CanFly)
}

// ToggleNoClip переключает прохождение сквозь блоки (действует в полёте)
func (g *Game) ToggleNoClip() {
	g.player.NoClip = !g.player.NoClip
	g.log.Debug("👻 Noclip: %v", g.player.NoClip)
}

// Respawn переносит игрока в случайную точку над миром
func (g *Game) Respawn() {
	g.player.GoToRandomPosition(g.grid, g.rng)
}

// SpawnZombie ставит нового зомби в позицию игрока
func (g *Game) SpawnZombie() *entity.Zombie {
	z := entity.NewZombie(g.grid, g.rng)
	pos := g.player.Position
	z.SetPosition(pos[0], pos[1], pos[2])
	g.zombies.Add(z)
	return z
}

// Save сохраняет мир в хранилище
func (g *Game) Save() error {
	if g.store == nil {
		return nil
	}
	err := g.grid.Save(g.store)
	g.metrics.WorldSaved(err)
	return err
}

// saveBestEffort сохраняет мир, только логируя ошибку
func (g *Game) saveBestEffort() {
	if g.store == nil {
		return
	}
	if err := g.Save(); err != nil {
		g.log.Warn("⚠️ Не удалось сохранить мир: %v", err)
		return
	}
	g.log.Info("💾 Мир сохранён")
}
