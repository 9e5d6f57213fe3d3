package model

import (
	"time"

	"github.com/secmon-lab/curbside/pkg/domain/types"
)

// EntryEventKind describes which mutation produced an EntryEvent
type EntryEventKind string

const (
	EntryEventLogged     EntryEventKind = "logged"
	EntryEventApproved   EntryEventKind = "approved"
	EntryEventUnapproved EntryEventKind = "unapproved"
	EntryEventUndone     EntryEventKind = "undone"
)

// EntryEvent is emitted to notifiers after a successful mutation
type EntryEvent struct {
	Kind       EntryEventKind   `json:"kind"`
	Date       types.Day        `json:"date"`
	Action     types.ActionType `json:"type"`
	Affected   int              `json:"affected"`
	OccurredAt time.Time        `json:"occurredAt"`
}
