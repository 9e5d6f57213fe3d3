package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/curbside/pkg/cli/config"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
)

func TestLoggerConfigure(t *testing.T) {
	t.Run("json output to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		closer, err := config.NewLoggerForTest("info", "json", path).Configure()
		gt.NoError(t, err).Required()

		logging.Default().Info("hello", "day", "2024-03-12")
		closer()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).Contains(`"msg":"hello"`)
		gt.String(t, string(data)).Contains(`"day":"2024-03-12"`)
	})

	t.Run("console output", func(t *testing.T) {
		closer, err := config.NewLoggerForTest("debug", "console", "stderr").Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := config.NewLoggerForTest("verbose", "json", "stdout").Configure()
		gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := config.NewLoggerForTest("info", "xml", "stdout").Configure()
		gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
	})
}
