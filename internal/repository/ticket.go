package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"event-management/internal/models"
)

// TicketRepository layers relationship-heavy ticket queries and the
// status transition on top of the generic contract.
type TicketRepository struct {
	*Repository[models.Ticket]
}

func NewTicketRepository(store *Store) *TicketRepository {
	return &TicketRepository{NewRepository[models.Ticket](store, "ticket_id")}
}

// GetByID shadows the generic lookup to attach the ticket's Event and
// User. Returns (nil, nil) when the id does not resolve.
func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*models.Ticket, error) {
	ticket := new(models.Ticket)
	err := r.Store().Bun.NewSelect().
		Model(ticket).
		Relation("Event").
		Relation("User").
		Where("ticket_id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// GetTicketsByUser returns a user's tickets with the Event attached,
// newest booking first.
func (r *TicketRepository) GetTicketsByUser(ctx context.Context, userID int64) ([]models.Ticket, error) {
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("t.user_id = ?", userID)
		},
		Include: []string{"Event"},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("booking_date DESC")
		},
	})
}

// GetTicketsByEvent returns an event's tickets with the User attached,
// newest booking first.
func (r *TicketRepository) GetTicketsByEvent(ctx context.Context, eventID int64) ([]models.Ticket, error) {
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("t.event_id = ?", eventID)
		},
		Include: []string{"User"},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("booking_date DESC")
		},
	})
}

// GetTicketsByStatus returns all tickets in the given lifecycle state
// with both relations attached, newest booking first.
func (r *TicketRepository) GetTicketsByStatus(ctx context.Context, status models.TicketStatus) ([]models.Ticket, error) {
	return r.Get(ctx, Query{
		Filter: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("t.status = ?", status)
		},
		Include: []string{"Event", "User"},
		OrderBy: func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("booking_date DESC")
		},
	})
}

// UpdateTicketStatus overwrites a ticket's status and applies it
// immediately as one self-contained statement, leaving the unit of
// work's staged buffer untouched. Returns (false, nil) for an unknown
// id.
func (r *TicketRepository) UpdateTicketStatus(ctx context.Context, ticketID int64, status models.TicketStatus) (bool, error) {
	res, err := r.Store().Bun.NewUpdate().
		Model((*models.Ticket)(nil)).
		Set("status = ?", status).
		Where("ticket_id = ?", ticketID).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
