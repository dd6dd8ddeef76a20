package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/annel0/voxel-sandbox/internal/config"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/storage"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/annel0/voxel-sandbox/internal/world/block"
	_ "github.com/annel0/voxel-sandbox/internal/world/block/implementations"
	"github.com/dustin/go-humanize"
)

func main() {
	var (
		configPath = flag.String("config", "", "Путь к YAML конфигу (по умолчанию $GAME_CONFIG)")
		seed       = flag.Int64("seed", 0, "Seed генерации (перекрывает world.seed)")
		noise      = flag.String("noise", "", "Генератор шума: plasma | perlin")
		save       = flag.Bool("save", false, "Сохранить мир в настроенное хранилище")
		inspect    = flag.Bool("inspect", false, "Загрузить сохранённый мир вместо генерации")
		list       = flag.Bool("list", false, "Перечислить миры в BadgerDB")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if *noise != "" {
		cfg.World.Noise = *noise
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}
	logging.SetLevel(logging.WARN)

	if *list {
		listLevels(cfg)
		return
	}

	var store storage.WorldStore
	if *save || *inspect {
		store, err = openStore(cfg)
		if err != nil {
			log.Fatalf("❌ Ошибка открытия хранилища: %v", err)
		}
		defer store.Close()
	}

	w, h, d := cfg.World.Width, cfg.World.Height, cfg.World.Depth
	grid := world.NewGrid(w, h, d)

	if *inspect {
		if err := grid.Load(store); err != nil {
			log.Fatalf("❌ Ошибка загрузки мира: %v", err)
		}
		fmt.Printf("Загружен мир %dx%dx%d\n", w, h, d)
	} else {
		worldSeed := cfg.World.ResolveSeed()
		src := world.NewNoise(cfg.World.Noise, rand.New(rand.NewSource(worldSeed)))

		start := time.Now()
		world.NewWorldGenerator(src).Generate(grid)
		fmt.Printf("Сгенерирован мир %dx%dx%d (seed %d, шум %s) за %v\n",
			w, h, d, worldSeed, cfg.World.Noise, time.Since(start).Round(time.Millisecond))
	}

	report(grid)

	if *save {
		if err := grid.Save(store); err != nil {
			log.Fatalf("❌ Ошибка сохранения мира: %v", err)
		}
		if fs, ok := store.(*storage.FileStore); ok {
			if info, err := os.Stat(fs.Path()); err == nil {
				fmt.Printf("Сохранено в %s (%s)\n", fs.Path(), humanize.Bytes(uint64(info.Size())))
			}
		} else {
			fmt.Println("Сохранено в BadgerDB")
		}
	}
}

func openStore(cfg *config.Config) (storage.WorldStore, error) {
	return storage.Open(storage.Options{
		Backend:    cfg.Storage.Backend,
		FilePath:   cfg.World.SavePath,
		BadgerPath: cfg.Storage.BadgerPath,
		Width:      cfg.World.Width,
		Height:     cfg.World.Height,
		Depth:      cfg.World.Depth,
	})
}

func listLevels(cfg *config.Config) {
	store, err := storage.NewBadgerStore(cfg.Storage.BadgerPath, cfg.World.Width, cfg.World.Height, cfg.World.Depth)
	if err != nil {
		log.Fatalf("❌ Ошибка открытия BadgerDB: %v", err)
	}
	defer store.Close()

	levels, err := store.Levels()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	for _, key := range levels {
		fmt.Println(key)
	}
}

// report печатает гистограмму блоков, диапазон высот и контрольную сумму
func report(grid *world.Grid) {
	w, h, d := grid.Bounds()

	var counts [block.MaxKinds]int
	for y := 0; y < d; y++ {
		for z := 0; z < h; z++ {
			for x := 0; x < w; x++ {
				counts[grid.BlockAt(x, y, z)]++
			}
		}
	}

	minH, maxH := d, -1
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			top := grid.HeightAt(x, z)
			minH = min(minH, top)
			maxH = max(maxH, top)
		}
	}

	total := grid.Volume()
	for id, n := range counts {
		if n == 0 {
			continue
		}
		name := fmt.Sprintf("#%d", id)
		if kind, ok := block.Get(block.BlockID(id)); ok {
			name = kind.Name
		}
		fmt.Printf("  %-12s %12s  %5.1f%%\n", name, humanize.Comma(int64(n)), 100*float64(n)/float64(total))
	}
	fmt.Printf("Высоты поверхности: %d..%d\n", minH, maxH)
	fmt.Printf("Контрольная сумма: %016x\n", grid.Checksum())
}
