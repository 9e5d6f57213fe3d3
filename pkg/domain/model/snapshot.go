package model

import "time"

// Snapshot is a full dump of every stored record
type Snapshot struct {
	ExportedAt time.Time       `json:"exportedAt"`
	Entries    []*Entry        `json:"entries"`
	Counters   []*DailyCounter `json:"counters"`
}
