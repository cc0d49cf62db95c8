package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	EventID     int64     `bun:"event_id,pk,autoincrement"`
	Name        string    `bun:"name,notnull"`
	Category    string    `bun:"category,notnull"`
	Location    string    `bun:"location,notnull"`
	Date        time.Time `bun:"date,notnull"`
	OrganizerID int64     `bun:"organizer_id,notnull"`

	Organizer *User `bun:"rel:belongs-to,join:organizer_id=user_id"`

	Tickets       []*Ticket       `bun:"rel:has-many,join:event_id=event_id"`
	Notifications []*Notification `bun:"rel:has-many,join:event_id=event_id"`
	Feedback      []*Feedback     `bun:"rel:has-many,join:event_id=event_id"`
}
