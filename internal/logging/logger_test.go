package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"trace":   TRACE,
		"DEBUG":   DEBUG,
		"":        INFO,
		"warning": WARN,
		" error ": ERROR,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, "уровень %q должен разбираться", in)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err, "неизвестный уровень должен давать ошибку")
}

func TestWriterLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("test", &buf)

	logger.Debug("скрыто")
	assert.Empty(t, buf.String(), "DEBUG не должен попадать в консоль при уровне INFO")

	logger.Info("блок %d", 3)
	assert.Contains(t, buf.String(), "[INFO] [test] блок 3")

	buf.Reset()
	logger.SetLevel(TRACE)
	logger.Trace("видно")
	assert.Contains(t, buf.String(), "[TRACE]")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() { logger.Info("ничего") })
}

func TestManagerReusesComponentLoggers(t *testing.T) {
	lm := &LoggerManager{loggers: make(map[string]*Logger), level: INFO}

	game := lm.GetLogger("game")
	assert.Same(t, game, lm.GetLogger("game"))
	lm.GetLogger("api")
	assert.Equal(t, []string{"api", "game"}, lm.Components())

	lm.Configure(false, DEBUG)
	assert.Equal(t, DEBUG, game.Level(), "уровень применяется к уже созданным логгерам")
	assert.Equal(t, DEBUG, lm.GetLogger("storage").Level())

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.Components())
}
