package memory

import (
	"github.com/secmon-lab/curbside/pkg/domain/interfaces"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = interfaces.ErrNotFound

type Memory struct {
	entry   *entryRepository
	counter *counterRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		entry:   newEntryRepository(),
		counter: newCounterRepository(),
	}
}

func (m *Memory) Entry() interfaces.EntryRepository {
	return m.entry
}

func (m *Memory) Counter() interfaces.CounterRepository {
	return m.counter
}

func (m *Memory) Close() error {
	return nil
}
