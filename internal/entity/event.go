package entity

import "context"

type EventType string

const (
	EventTypeBirthday   EventType = "birthday"
	EventTypeWedding    EventType = "wedding"
	EventTypeCorporate  EventType = "corporate"
	EventTypeGraduation EventType = "graduation"
	EventTypeOther      EventType = "other"
)

type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusCanceled  EventStatus = "canceled"
	EventStatusDone      EventStatus = "done"
)

// Event é uma reserva do espaço. ClientID aponta (sem foreign key) para o
// Lead que originou a reserva; um Lead apagado deixa a referência pendurada
// e isso é comportamento documentado, não bug.
type Event struct {
	ID        string  `json:"id,omitempty"`
	Title     string  `json:"title"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	ClientID  *string `json:"client_id,omitempty"`
}

type EventRepositoryInterface interface {
	Create(ctx context.Context, event *Event) (*Event, error)
}

func KnownEventType(t string) bool {
	switch EventType(t) {
	case EventTypeBirthday, EventTypeWedding, EventTypeCorporate, EventTypeGraduation, EventTypeOther:
		return true
	}
	return false
}
