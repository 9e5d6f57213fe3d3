package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidConfig     = goerr.New("invalid configuration")
	ErrUnknownAction     = goerr.New("unknown action type")
	ErrDuplicateActionID = goerr.New("duplicate action ID")
	ErrMissingLabel      = goerr.New("label is required")
)

// Context keys for error values
const (
	ConfigPathKey  = "config_path"
	ActionIDKey    = "action_id"
	ActionIndexKey = "action_index"
)
