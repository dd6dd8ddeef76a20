package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-sandbox/internal/api"
	"github.com/annel0/voxel-sandbox/internal/config"
	"github.com/annel0/voxel-sandbox/internal/game"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/metrics"
	"github.com/annel0/voxel-sandbox/internal/storage"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "Путь к YAML конфигу (по умолчанию $GAME_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	// Инициализируем систему логирования
	if cfg.Logging.File {
		if err := logging.InitDefaultLogger("server"); err != nil {
			log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
		}
	} else {
		logging.InitConsoleLogger("server")
	}
	defer logging.CloseDefaultLogger()

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		logging.Warn("⚠️ %v, используется INFO", err)
		level = logging.INFO
	}
	logging.SetLevel(level)
	logging.GetLoggerManager().Configure(cfg.Logging.File, level)
	defer func() {
		if err := logging.GetLoggerManager().CloseAll(); err != nil {
			log.Printf("⚠️ %v", err)
		}
	}()

	logging.Info("🎮 Запуск воксельной песочницы: мир %dx%dx%d (%s блоков), шум %s, хранилище %s",
		cfg.World.Width, cfg.World.Height, cfg.World.Depth,
		humanize.Comma(int64(cfg.World.Width*cfg.World.Height*cfg.World.Depth)),
		cfg.World.Noise, cfg.Storage.Backend)

	// === ХРАНИЛИЩЕ ===
	store, err := storage.Open(storage.Options{
		Backend:    cfg.Storage.Backend,
		FilePath:   cfg.World.SavePath,
		BadgerPath: cfg.Storage.BadgerPath,
		Width:      cfg.World.Width,
		Height:     cfg.World.Height,
		Depth:      cfg.World.Depth,
	})
	if err != nil {
		logging.Error("❌ Ошибка открытия хранилища: %v", err)
		return
	}

	// === МЕТРИКИ ===
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector("voxel", registry)

	// === ИГРА ===
	g := game.New(cfg, game.Options{Store: store, Metrics: collector})
	defer func() {
		if err := g.Close(); err != nil {
			logging.Error("❌ Ошибка закрытия хранилища: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return g.Run(ctx) })

	// === ОТЛАДОЧНЫЙ СЕРВЕР ===
	if cfg.Server.Enabled {
		sampler, err := metrics.NewProcessSampler()
		if err != nil {
			logging.Warn("⚠️ Статистика процесса недоступна: %v", err)
		}

		debug := api.NewDebugServer(api.Config{
			Addr:     cfg.Server.DebugAddr(),
			Source:   g,
			Registry: registry,
			Sampler:  sampler,
		})
		debug.Start()
		logging.Info("   ❤️  Health check: http://localhost%s/health", cfg.Server.DebugAddr())

		group.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return debug.Stop(shutdownCtx)
		})
	}

	logging.Info("✅ Все сервисы запущены")

	if err := group.Wait(); err != nil {
		logging.Error("❌ Ошибка при остановке: %v", err)
	}
	logging.Info("👋 Сервер успешно остановлен")
}
