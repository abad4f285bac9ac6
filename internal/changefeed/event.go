package changefeed

// EventType mirrors the Postgres TG_OP values emitted by the
// notify_table_change trigger.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Event is a change notification for a single table. It carries no row
// payload: consumers treat any event as "something changed, refetch".
type Event struct {
	Table string    `json:"table"`
	Type  EventType `json:"event_type"`
}
