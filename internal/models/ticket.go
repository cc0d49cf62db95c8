package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Ticket struct {
	bun.BaseModel `bun:"table:tickets,alias:t"`

	TicketID     int64        `bun:"ticket_id,pk,autoincrement"`
	EventID      int64        `bun:"event_id,notnull"`
	UserID       int64        `bun:"user_id,notnull"`
	TicketType   string       `bun:"ticket_type"`
	Price        float64      `bun:"price"`
	PurchaseDate time.Time    `bun:"purchase_date,notnull"`
	BookingDate  time.Time    `bun:"booking_date,notnull,nullzero,default:current_timestamp"`
	Status       TicketStatus `bun:"status,notnull,default:0"`
	Notes        string       `bun:"notes"`

	Event *Event `bun:"rel:belongs-to,join:event_id=event_id"`
	User  *User  `bun:"rel:belongs-to,join:user_id=user_id"`
}
