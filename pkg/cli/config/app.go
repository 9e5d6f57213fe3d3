package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/curbside/pkg/domain/model"
	"github.com/secmon-lab/curbside/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// AppConfig holds the --config flag and the file it points to
type AppConfig struct {
	path string
}

func (x *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Destination: &x.path,
			Sources:     cli.EnvVars("CURBSIDE_CONFIG"),
		},
	}
}

// AppFile represents the TOML configuration file
type AppFile struct {
	Actions []Action `toml:"action"`
}

// Action overrides the display label of one action type
type Action struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
}

// Validate checks if the Action is valid
func (a *Action) Validate() error {
	if !types.ActionType(a.ID).IsValid() {
		return goerr.Wrap(ErrUnknownAction, "invalid action", goerr.V(ActionIDKey, a.ID))
	}
	if a.Label == "" {
		return goerr.Wrap(ErrMissingLabel, "action label is required", goerr.V(ActionIDKey, a.ID))
	}
	return nil
}

// Validate checks if the AppFile is valid
func (f *AppFile) Validate() error {
	seen := make(map[string]bool)
	for i, a := range f.Actions {
		if err := a.Validate(); err != nil {
			return goerr.Wrap(err, "invalid action", goerr.V(ActionIndexKey, i))
		}
		if seen[a.ID] {
			return goerr.Wrap(ErrDuplicateActionID, "duplicate action ID", goerr.V(ActionIDKey, a.ID))
		}
		seen[a.ID] = true
	}
	return nil
}

// Catalog converts the file into an action catalog
func (f *AppFile) Catalog() *model.ActionCatalog {
	overrides := make(map[types.ActionType]string, len(f.Actions))
	for _, a := range f.Actions {
		overrides[types.ActionType(a.ID)] = a.Label
	}
	return model.NewActionCatalog(overrides)
}

// LoadAppFile loads the application configuration from a TOML file
func LoadAppFile(path string) (*AppFile, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var file AppFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path),
			goerr.V("error", err.Error()))
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &file, nil
}

// Configure returns the action catalog. Without --config the default labels are used.
func (x *AppConfig) Configure() (*model.ActionCatalog, error) {
	if x.path == "" {
		return model.NewActionCatalog(nil), nil
	}

	file, err := LoadAppFile(x.path)
	if err != nil {
		return nil, err
	}

	return file.Catalog(), nil
}
