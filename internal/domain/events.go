package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFilterChanged EventType = "FilterChanged"
	EventRecordsLoaded EventType = "RecordsLoaded"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FilterChangedEvent is emitted every time the query text is replaced
type FilterChangedEvent struct {
	Query   string
	Visible int
	Total   int
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// RecordsLoadedEvent is emitted once the record list is available
type RecordsLoadedEvent struct {
	Count  int
	Source string // "seed" or "config"
}

func (e RecordsLoadedEvent) Type() EventType { return EventRecordsLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
