package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CounterID identifies a DailyCounter record
type CounterID string

// NewCounterID generates a new unique CounterID
func NewCounterID() CounterID {
	return CounterID(uuid.New().String())
}

// MaxCounterCount bounds a single counter so rollup sums over any calendar
// range stay within int.
const MaxCounterCount = math.MaxInt32

// DailyCounter is the legacy single-counter record: one per local day, holding
// how many times the trash was taken out. Count is always >= 1; a counter that
// would drop to zero is deleted instead.
type DailyCounter struct {
	ID        CounterID `json:"id"`
	Date      time.Time `json:"date"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
