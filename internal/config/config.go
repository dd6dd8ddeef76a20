package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/annel0/voxel-sandbox/internal/world"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDimensions - размеры мира должны быть положительными степенями двойки.
	ErrInvalidDimensions = errors.New("некорректные размеры мира")
	// ErrInvalidTickRate - частота тиков должна быть положительной.
	ErrInvalidTickRate = errors.New("некорректная частота тиков")
	// ErrInvalidBackend - неизвестный бэкенд хранилища или генератор шума.
	ErrInvalidBackend = errors.New("некорректное значение параметра")
)

// Config корневая структура конфигурации приложения.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Storage StorageConfig `yaml:"storage"`
	Game    GameConfig    `yaml:"game"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

type WorldConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Depth    int    `yaml:"depth"`
	Seed     int64  `yaml:"seed"`  // 0 - от текущего времени
	Noise    string `yaml:"noise"` // plasma | perlin
	SavePath string `yaml:"save_path"`
}

type StorageConfig struct {
	Backend    string `yaml:"backend"` // file | badger
	BadgerPath string `yaml:"badger_path"`
}

type GameConfig struct {
	TicksPerSecond int     `yaml:"ticks_per_second"`
	RebuildBudget  int     `yaml:"rebuild_budget"`
	Zombies        int     `yaml:"zombies"`
	Reach          float64 `yaml:"reach"`
}

type ServerConfig struct {
	Enabled   bool `yaml:"enabled"`
	DebugPort int  `yaml:"debug_port"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  bool   `yaml:"file"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:    256,
			Height:   256,
			Depth:    64,
			Noise:    world.NoisePlasma,
			SavePath: "level.dat",
		},
		Storage: StorageConfig{
			Backend:    "file",
			BadgerPath: "data/world",
		},
		Game: GameConfig{
			TicksPerSecond: 20,
			RebuildBudget:  10,
			Zombies:        10,
			Reach:          8,
		},
		Server: ServerConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// GetDebugPort возвращает порт отладочного HTTP сервера с поддержкой fallback значений
func (s *ServerConfig) GetDebugPort() int {
	return getPortWithEnvFallback(s.DebugPort, "DEBUG_PORT", 8090)
}

// DebugAddr возвращает адрес для net/http listener
func (s *ServerConfig) DebugAddr() string {
	return fmt.Sprintf(":%d", s.GetDebugPort())
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// ResolveSeed возвращает seed мира; нулевой seed заменяется текущим временем
func (w *WorldConfig) ResolveSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	return time.Now().UnixNano()
}

// TickInterval возвращает длительность одного тика симуляции
func (g *GameConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(g.TicksPerSecond)
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV GAME_CONFIG, иначе возвращает дефолты.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return cfg, nil // конфиг не задан - использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать конфиг %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфига %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	for _, d := range []struct {
		name  string
		value int
	}{
		{"width", c.World.Width},
		{"height", c.World.Height},
		{"depth", c.World.Depth},
	} {
		if d.value <= 0 || d.value&(d.value-1) != 0 {
			return fmt.Errorf("%w: %s=%d должно быть положительной степенью двойки", ErrInvalidDimensions, d.name, d.value)
		}
	}
	if err := world.CheckNoiseShape(c.World.Width, c.World.Height); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}
	if c.World.Depth > world.MaxDepth {
		return fmt.Errorf("%w: depth=%d больше %d", ErrInvalidDimensions, c.World.Depth, world.MaxDepth)
	}

	if c.Game.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTickRate, c.Game.TicksPerSecond)
	}

	switch c.World.Noise {
	case world.NoisePlasma, world.NoisePerlin:
	default:
		return fmt.Errorf("%w: world.noise=%q", ErrInvalidBackend, c.World.Noise)
	}

	switch c.Storage.Backend {
	case "file", "badger":
	default:
		return fmt.Errorf("%w: storage.backend=%q", ErrInvalidBackend, c.Storage.Backend)
	}
	return nil
}
