package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/annel0/voxel-sandbox/internal/game"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/metrics"
	"github.com/annel0/voxel-sandbox/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// GameSource - то, что отладочному серверу нужно от игры.
// Snapshot и Submit безопасны для вызова из HTTP-горутин.
type GameSource interface {
	Snapshot() game.Stats
	Submit(a game.Action) bool
}

// DebugServer - отладочный HTTP сервер: здоровье, статистика и метрики
type DebugServer struct {
	router  *gin.Engine
	server  *http.Server
	source  GameSource
	sampler *metrics.ProcessSampler
}

// Config содержит конфигурацию для отладочного сервера
type Config struct {
	Addr     string               // адрес для запуска сервера
	Source   GameSource           // источник снимков игры
	Registry *prometheus.Registry // метрики для /metrics
	Sampler  *metrics.ProcessSampler
}

// GenericResponse - общий формат JSON ответа
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// StatsResponse - содержимое ответа /stats
type StatsResponse struct {
	Game    game.Stats            `json:"game"`
	Process *metrics.ProcessStats `json:"process,omitempty"`
}

// NewDebugServer создает новый отладочный сервер
func NewDebugServer(config Config) *DebugServer {
	if config.Addr == "" {
		config.Addr = ":8090"
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	loggerMw := middleware.NewRequestLogger()
	router.Use(loggerMw.Handler())

	promMw := middleware.NewPrometheusMiddleware("debug_api", config.Registry)
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router, config.Registry)

	ds := &DebugServer{
		router:  router,
		source:  config.Source,
		sampler: config.Sampler,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	ds.setupRoutes()
	return ds
}

// setupRoutes настраивает маршруты
func (ds *DebugServer) setupRoutes() {
	ds.router.GET("/health", ds.handleHealth)
	ds.router.GET("/stats", ds.handleStats)
	ds.router.POST("/actions/:name", ds.handleAction)
}

// Handler возвращает http.Handler сервера
func (ds *DebugServer) Handler() http.Handler { return ds.router }

// handleHealth отвечает на проверку живости
func (ds *DebugServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// handleStats возвращает последний снимок игры и ресурсы процесса
func (ds *DebugServer) handleStats(c *gin.Context) {
	if ds.source == nil {
		c.JSON(http.StatusServiceUnavailable, GenericResponse{
			Success: false,
			Message: "Игра не запущена",
		})
		return
	}

	resp := StatsResponse{Game: ds.source.Snapshot()}
	if ds.sampler != nil {
		stats := ds.sampler.Sample()
		resp.Process = &stats
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Статистика получена",
		Data:    resp,
	})
}

// handleAction ставит команду в очередь игрового цикла
func (ds *DebugServer) handleAction(c *gin.Context) {
	action, err := game.ParseAction(c.Param("name"))
	if err != nil {
		markAction(c, "unknown", "unknown")
		c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	if ds.source == nil || !ds.source.Submit(action) {
		markAction(c, string(action), "rejected")
		c.JSON(http.StatusServiceUnavailable, GenericResponse{
			Success: false,
			Message: "Очередь команд недоступна",
		})
		return
	}

	markAction(c, string(action), "queued")
	c.JSON(http.StatusAccepted, GenericResponse{
		Success: true,
		Message: fmt.Sprintf("Команда %s принята", action),
	})
}

// Start запускает сервер в отдельной горутине
func (ds *DebugServer) Start() {
	go func() {
		logging.GetAPILogger().Info("🔧 Отладочный HTTP сервер доступен по адресу %s", ds.server.Addr)
		if err := ds.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.GetAPILogger().Error("❌ Ошибка отладочного HTTP сервера: %v", err)
		}
	}()
}

// Stop плавно останавливает сервер
func (ds *DebugServer) Stop(ctx context.Context) error {
	return ds.server.Shutdown(ctx)
}

func markAction(c *gin.Context, name, result string) {
	c.Set(middleware.ActionNameKey, name)
	c.Set(middleware.ActionResultKey, result)
}
