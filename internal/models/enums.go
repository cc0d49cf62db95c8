package models

// TicketStatus tracks a ticket through its lifecycle. New tickets start
// as Reserved; transitions are driven by the caller.
type TicketStatus int

const (
	TicketReserved TicketStatus = iota
	TicketConfirmed
	TicketCancelled
	TicketUsed
)

func (s TicketStatus) String() string {
	switch s {
	case TicketReserved:
		return "Reserved"
	case TicketConfirmed:
		return "Confirmed"
	case TicketCancelled:
		return "Cancelled"
	case TicketUsed:
		return "Used"
	default:
		return "Unknown"
	}
}

// UserRole distinguishes regular users from administrators.
type UserRole int

const (
	RoleUser UserRole = iota
	RoleAdmin
)

func (r UserRole) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	default:
		return "User"
	}
}
