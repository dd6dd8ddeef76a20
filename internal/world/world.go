package world

import (
	"fmt"
	"time"

	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/cespare/xxhash/v2"
)

// Store хранит сырой дамп массива блоков (порядок совпадает с памятью сетки).
// Load должен вернуть ошибку, если сохранённые данные не совпадают с dst по
// длине.
type Store interface {
	Load(dst []byte) error
	Save(src []byte) error
}

// Checksum возвращает xxhash массива блоков в порядке хранения.
func (g *Grid) Checksum() uint64 {
	return xxhash.Sum64(g.blocks)
}

// Save записывает блоки сетки в хранилище.
func (g *Grid) Save(store Store) error {
	if err := store.Save(g.blocks); err != nil {
		return fmt.Errorf("ошибка сохранения мира %dx%dx%d: %w", g.width, g.height, g.depth, err)
	}
	return nil
}

// Load читает блоки из хранилища. При ошибке сетка не меняется.
// После успешной загрузки индекс высоты пересчитывается.
func (g *Grid) Load(store Store) error {
	buf := make([]byte, len(g.blocks))
	if err := store.Load(buf); err != nil {
		return fmt.Errorf("ошибка загрузки мира %dx%dx%d: %w", g.width, g.height, g.depth, err)
	}
	copy(g.blocks, buf)
	g.RecalculateHeightMap()
	return nil
}

// Open создаёт сетку, загружая её из хранилища, а при неудаче генерируя
// заново. Второе значение сообщает, был ли мир загружен.
func Open(width, height, depth int, store Store, gen *WorldGenerator) (*Grid, bool) {
	g := NewGrid(width, height, depth)

	if store != nil {
		if err := g.Load(store); err == nil {
			logging.Info("💾 Мир %dx%dx%d загружен из хранилища", width, height, depth)
			return g, true
		} else {
			logging.Warn("⚠️ Мир не загружен, генерируем новый: %v", err)
		}
	}

	start := time.Now()
	gen.Generate(g)
	logging.Info("🌍 Мир %dx%dx%d сгенерирован за %v", width, height, depth, time.Since(start))
	return g, false
}
