package cli_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/curbside/pkg/cli"
)

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out", "export.json")

	err := cli.Run(context.Background(), []string{
		"curbside",
		"--log-output", filepath.Join(dir, "app.log"),
		"export",
		"--repository-backend", "memory",
		"--output", out,
	}, "test")
	gt.NoError(t, err).Required()

	data, err := os.ReadFile(out)
	gt.NoError(t, err).Required()

	var doc map[string]json.RawMessage
	gt.NoError(t, json.Unmarshal(data, &doc)).Required()
	gt.Map(t, doc).HasKey("exportedAt")
	gt.Map(t, doc).HasKey("entries")
	gt.Map(t, doc).HasKey("counters")
}

func TestRunInvalidBackend(t *testing.T) {
	dir := t.TempDir()
	err := cli.Run(context.Background(), []string{
		"curbside",
		"--log-output", filepath.Join(dir, "app.log"),
		"export",
		"--repository-backend", "mongodb",
		"--output", filepath.Join(dir, "export.json"),
	}, "test")
	gt.Error(t, err)
}
