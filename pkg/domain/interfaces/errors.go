package interfaces

import "errors"

// ErrNotFound is wrapped by every repository when a record addressed by ID does not exist
var ErrNotFound = errors.New("not found")
