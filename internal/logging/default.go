package logging

import "sync"

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewConsoleLogger("main")
)

// InitDefaultLogger заменяет логгер по умолчанию файловым логгером компонента.
func InitDefaultLogger(component string) error {
	logger, err := NewLogger(component)
	if err != nil {
		return err
	}
	setDefault(logger)
	return nil
}

// InitConsoleLogger заменяет логгер по умолчанию консольным (без файла).
func InitConsoleLogger(component string) {
	setDefault(NewConsoleLogger(component))
}

// CloseDefaultLogger закрывает файл логгера по умолчанию.
func CloseDefaultLogger() {
	defaultMu.RLock()
	logger := defaultLogger
	defaultMu.RUnlock()
	_ = logger.Close()
}

// Default возвращает текущий логгер по умолчанию.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetLevel задаёт уровень консоли логгера по умолчанию.
func SetLevel(level LogLevel) {
	Default().SetLevel(level)
}

func setDefault(logger *Logger) {
	defaultMu.Lock()
	old := defaultLogger
	level := old.Level()
	defaultLogger = logger
	defaultMu.Unlock()

	logger.SetLevel(level)
	_ = old.Close()
}

func Trace(format string, args ...interface{}) { Default().Trace(format, args...) }
func Debug(format string, args ...interface{}) { Default().Debug(format, args...) }
func Info(format string, args ...interface{})  { Default().Info(format, args...) }
func Warn(format string, args ...interface{})  { Default().Warn(format, args...) }
func Error(format string, args ...interface{}) { Default().Error(format, args...) }
