package database

import (
	"context"

	"github.com/matheusvll/casaflor-api/internal/entity"
)

const eventsTable = "events"

type EventRepository struct {
	Store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{Store: store}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	return Add(ctx, r.Store, eventsTable, *event)
}
