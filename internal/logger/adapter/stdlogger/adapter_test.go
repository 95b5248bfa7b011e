package stdlogger_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marogo-civils/marogo-web/internal/logger"
	"github.com/marogo-civils/marogo-web/internal/logger/adapter/stdlogger"
)

func TestAdapterLevels(t *testing.T) {
	out := captureAdapterOutput(t, "info", func(l *stdlogger.StdLogger) {
		l.Debugf("level %s", "debug")
		l.Infof("level %s", "info")
		l.Warningf("level %s", "warning")
		l.Errorf("level %s", "error")
		l.Printf("gorm uses %s", "Printf")
	})

	// the logger runs at info, debug must be filtered
	assert.NotContains(t, out, "level debug")
	assert.Contains(t, out, "level info")
	assert.Contains(t, out, "level warning")
	assert.Contains(t, out, "level error")
	assert.Contains(t, out, "gorm uses Printf")
}

func TestAdapterSilentWithoutOutputs(t *testing.T) {
	quiet := captureAdapterOutputWith(t, logger.Log{
		LogLevel:    "info",
		ServiceName: "test",
		AppName:     "test",
	}, func(l *stdlogger.StdLogger) {
		l.Infof("nobody listens")
	})

	assert.Empty(t, quiet)
}

func captureAdapterOutput(t *testing.T, level string, emit func(*stdlogger.StdLogger)) string {
	t.Helper()

	return captureAdapterOutputWith(t, logger.Log{
		LogLevel:    level,
		ServiceName: "test",
		AppName:     "test",
		Console:     logger.Console{Enabled: true},
	}, emit)
}

func captureAdapterOutputWith(t *testing.T, cfg logger.Log, emit func(*stdlogger.StdLogger)) string {
	t.Helper()

	stdout, stderr := os.Stdout, os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w
	os.Stderr = w

	defer func() {
		os.Stdout = stdout
		os.Stderr = stderr
	}()

	require.NoError(t, logger.Init(cfg))
	emit(stdlogger.New())

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	require.NoError(t, w.Close())

	return <-outC
}
