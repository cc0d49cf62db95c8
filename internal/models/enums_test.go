package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"event-management/internal/models"
)

func TestTicketStatusString(t *testing.T) {
	assert.Equal(t, "Reserved", models.TicketReserved.String())
	assert.Equal(t, "Confirmed", models.TicketConfirmed.String())
	assert.Equal(t, "Cancelled", models.TicketCancelled.String())
	assert.Equal(t, "Used", models.TicketUsed.String())
	assert.Equal(t, "Unknown", models.TicketStatus(42).String())
}

func TestTicketStatusZeroValueIsReserved(t *testing.T) {
	var ticket models.Ticket
	assert.Equal(t, models.TicketReserved, ticket.Status)
}

func TestUserRoleString(t *testing.T) {
	assert.Equal(t, "User", models.RoleUser.String())
	assert.Equal(t, "Admin", models.RoleAdmin.String())
}
