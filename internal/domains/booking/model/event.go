package model

import "time"

type EventType string

const (
	EventCreated  EventType = "bookings.created"
	EventImported EventType = "bookings.imported"
	EventReset    EventType = "bookings.reset"
)

// Event announces a change to the booking collection.
type Event struct {
	Type       EventType `json:"type"`
	References []string  `json:"references,omitempty"`
	Count      int       `json:"count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// References lists the distinct references of records in first-seen order.
func References(records []BookingRecord) []string {
	seen := make(map[string]struct{}, len(records))
	refs := make([]string, 0, len(records))

	for _, r := range records {
		if _, ok := seen[r.Reference]; ok {
			continue
		}

		seen[r.Reference] = struct{}{}
		refs = append(refs, r.Reference)
	}

	return refs
}
