package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/curbside/pkg/cli/config"
	"github.com/secmon-lab/curbside/pkg/domain/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadAppFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "valid label overrides",
			content: `
[[action]]
id = "BIN_OUT"
label = "Bin emptied"

[[action]]
id = "RECYCLE_TO_CURB"
label = "Blue bin out"
`,
		},
		{
			name:    "empty file",
			content: ``,
		},
		{
			name: "unknown action",
			content: `
[[action]]
id = "MOP_FLOOR"
label = "Mop"
`,
			wantErr: config.ErrUnknownAction,
		},
		{
			name: "missing label",
			content: `
[[action]]
id = "NEW_BAG"
`,
			wantErr: config.ErrMissingLabel,
		},
		{
			name: "duplicate action",
			content: `
[[action]]
id = "NEW_BAG"
label = "a"

[[action]]
id = "NEW_BAG"
label = "b"
`,
			wantErr: config.ErrDuplicateActionID,
		},
		{
			name:    "broken TOML",
			content: `[[action]`,
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadAppFile(writeConfig(t, tt.content))
			if tt.wantErr == nil {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err)
			gt.Bool(t, errors.Is(err, tt.wantErr)).True()
		})
	}
}

func TestAppConfigConfigure(t *testing.T) {
	t.Run("default catalog without config file", func(t *testing.T) {
		catalog, err := config.NewAppConfigForTest("").Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, catalog.Label(types.ActionTypeBinOut)).Equal("Trash taken to bin")
	})

	t.Run("labels come from config file", func(t *testing.T) {
		path := writeConfig(t, `
[[action]]
id = "BIN_OUT"
label = "Bin emptied"
`)
		catalog, err := config.NewAppConfigForTest(path).Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, catalog.Label(types.ActionTypeBinOut)).Equal("Bin emptied")
		gt.Value(t, catalog.Label(types.ActionTypeNewBag)).Equal("New trash bag inserted")
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := config.NewAppConfigForTest(filepath.Join(t.TempDir(), "nope.toml")).Configure()
		gt.Error(t, err)
	})
}
