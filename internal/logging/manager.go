package logging

import (
	"fmt"
	"sort"
	"sync"
)

// LoggerManager выдаёт логгеры подсистем (game, storage, api) и держит
// их до общего закрытия при остановке сервера.
type LoggerManager struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
	toFile  bool
	level   LogLevel
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = &LoggerManager{
			loggers: make(map[string]*Logger),
			level:   INFO,
		}
	})
	return globalManager
}

// Configure задаёт режим для логгеров, созданных после вызова, и
// переводит уже созданные на новый уровень.
func (lm *LoggerManager) Configure(toFile bool, level LogLevel) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.toFile = toFile
	lm.level = level
	for _, logger := range lm.loggers {
		logger.SetLevel(level)
	}
}

// GetLogger возвращает логгер компонента, создавая его при первом обращении.
// Если файл логов создать не удалось, компонент пишет только в консоль.
func (lm *LoggerManager) GetLogger(component string) *Logger {
	lm.mu.RLock()
	logger, exists := lm.loggers[component]
	lm.mu.RUnlock()
	if exists {
		return logger
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()

	if logger, exists := lm.loggers[component]; exists {
		return logger
	}

	if lm.toFile {
		var err error
		logger, err = NewLogger(component)
		if err != nil {
			Default().Warn("⚠️ Не удалось создать файловый логгер %s: %v", component, err)
			logger = nil
		}
	}
	if logger == nil {
		logger = NewConsoleLogger(component)
	}
	logger.SetLevel(lm.level)

	lm.loggers[component] = logger
	return logger
}

// CloseAll закрывает все логгеры компонентов
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var lastErr error
	for component, logger := range lm.loggers {
		if err := logger.Close(); err != nil {
			lastErr = fmt.Errorf("ошибка закрытия логгера %s: %w", component, err)
		}
	}
	lm.loggers = make(map[string]*Logger)
	return lastErr
}

// Components возвращает отсортированный список созданных логгеров
func (lm *LoggerManager) Components() []string {
	lm.mu.RLock()
	defer lm.mu.RUnlock()

	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

func Component(name string) *Logger {
	return GetLoggerManager().GetLogger(name)
}

func GetGameLogger() *Logger {
	return Component("game")
}

func GetStorageLogger() *Logger {
	return Component("storage")
}

func GetAPILogger() *Logger {
	return Component("api")
}
