package jobs

import "github.com/google/uuid"

// newEventID generates a time-ordered id for dispatched lifecycle events.
func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
