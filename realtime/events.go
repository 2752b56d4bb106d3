package realtime

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// TableOrders and TableServiceRequests name the tables admin panels
	// watch; every event triggers a client-side re-fetch of that list.
	TableOrders          = "orders"
	TableServiceRequests = "service_requests"

	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ChangeEvent announces that a row in a table changed. Clients do not
// distinguish actions today, but the payload carries enough to do so.
type ChangeEvent struct {
	Table      string    `json:"table"`
	HotelID    string    `json:"hotel_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Subject returns the bus subject for changes to table rows of one hotel.
func Subject(table, hotelID string) string {
	return fmt.Sprintf("changes.%s.%s", table, hotelID)
}

// SubjectAll matches changes to a table across every hotel.
func SubjectAll(table string) string {
	return fmt.Sprintf("changes.%s.*", table)
}

// PublishChange marshals and publishes a change event for a table row.
func PublishChange(bus Bus, table, hotelID, action string) error {
	evt := ChangeEvent{
		Table:      table,
		HotelID:    hotelID,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}
	return bus.Publish(Subject(table, hotelID), data)
}
