package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Entry() EntryRepository
	Counter() CounterRepository

	// Close releases the underlying store connection
	Close() error
}
