package repository

import (
	"context"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"event-management/internal/models"
)

// EventRepository adds the event-specific read queries on top of the
// generic contract.
type EventRepository struct {
	*Repository[models.Event]
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{NewRepository[models.Event](store, "event_id")}
}

// GetEventsByOrganizer returns an organizer's events, newest first.
func (r *EventRepository) GetEventsByOrganizer(ctx context.Context, organizerID int64) ([]models.Event, error) {
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("organizer_id = ?", organizerID)
		},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("date DESC")
		},
	})
}

// GetEventsByCategory matches the category case-insensitively, newest
// first.
func (r *EventRepository) GetEventsByCategory(ctx context.Context, category string) ([]models.Event, error) {
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("lower(category) = lower(?)", category)
		},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("date DESC")
		},
	})
}

// GetUpcomingEvents returns events strictly after the given time,
// soonest first.
func (r *EventRepository) GetUpcomingEvents(ctx context.Context, after time.Time) ([]models.Event, error) {
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("date > ?", after)
		},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("date ASC")
		},
	})
}

// SearchEvents does a case-insensitive substring match over name,
// category and location. A blank term means "no filter" and returns
// the full set.
func (r *EventRepository) SearchEvents(ctx context.Context, term string) ([]models.Event, error) {
	if strings.TrimSpace(term) == "" {
		return r.GetAll(ctx)
	}

	pattern := "%" + strings.ToLower(term) + "%"
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("lower(name) LIKE ?", pattern).
				WhereOr("lower(category) LIKE ?", pattern).
				WhereOr("lower(location) LIKE ?", pattern)
		},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("date DESC")
		},
	})
}
