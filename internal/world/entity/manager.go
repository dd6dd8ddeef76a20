package entity

// FallLimit - высота, ниже которой тела удаляются из коллекции.
const FallLimit float32 = -100

// Collection хранит сущности мира и тикает их по порядку.
// Удаление во время обхода только помечает тело; компакция выполняется
// после завершения прохода.
type Collection struct {
	entities []Entity
}

// NewCollection создаёт пустую коллекцию
func NewCollection() *Collection {
	return &Collection{}
}

// Add добавляет сущность в конец коллекции
func (c *Collection) Add(e Entity) {
	c.entities = append(c.entities, e)
}

// Len возвращает количество сущностей
func (c *Collection) Len() int { return len(c.entities) }

// Each вызывает fn для каждой сущности в порядке добавления
func (c *Collection) Each(fn func(Entity)) {
	for _, e := range c.entities {
		fn(e)
	}
}

// Tick тикает все сущности, затем удаляет упавшие за FallLimit и помеченные.
// Возвращает число удалённых.
func (c *Collection) Tick(w World) int {
	for _, e := range c.entities {
		e.Tick(w)
		if body := e.Base(); body.Position[1] < FallLimit {
			body.Remove()
		}
	}
	return c.compact()
}

func (c *Collection) compact() int {
	kept := c.entities[:0]
	for _, e := range c.entities {
		if !e.Base().Removed() {
			kept = append(kept, e)
		}
	}
	removed := len(c.entities) - len(kept)
	clear(c.entities[len(kept):])
	c.entities = kept
	return removed
}

// CountByType возвращает количество сущностей каждого типа
func (c *Collection) CountByType() map[EntityType]int {
	stats := make(map[EntityType]int)
	for _, e := range c.entities {
		stats[e.Type()]++
	}
	return stats
}
