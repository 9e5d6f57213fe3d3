package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/curbside/pkg/domain/types"
)

// EntryID identifies one physical ActionEntry record
type EntryID string

// NewEntryID generates a new unique EntryID
func NewEntryID() EntryID {
	return EntryID(uuid.New().String())
}

// Entry is one logged occurrence of a chore on a day. Several entries may share
// the same (Date, Action) pair; their number is the logged count.
type Entry struct {
	ID        EntryID          `json:"id"`
	Date      types.Day        `json:"date"`
	Action    types.ActionType `json:"type"`
	Approved  bool             `json:"approved"`
	CreatedAt time.Time        `json:"createdAt"`
}
