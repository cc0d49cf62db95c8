package models

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	UserID        int64    `bun:"user_id,pk,autoincrement"`
	Name          string   `bun:"name,notnull"`
	Email         string   `bun:"email,notnull"`
	PasswordHash  string   `bun:"password_hash,notnull"`
	ContactNumber string   `bun:"contact_number"`
	Role          UserRole `bun:"role,notnull"`

	// Non-owning views over the child tables, populated only when a
	// query asks for them.
	OrganizedEvents []*Event        `bun:"rel:has-many,join:user_id=organizer_id"`
	Tickets         []*Ticket       `bun:"rel:has-many,join:user_id=user_id"`
	Notifications   []*Notification `bun:"rel:has-many,join:user_id=user_id"`
	Feedback        []*Feedback     `bun:"rel:has-many,join:user_id=user_id"`
}
