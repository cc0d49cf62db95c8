// Development tool: rebuilds the schema straight from the bun models
// and seeds a handful of rows. Production schema changes go through the
// versioned SQL migrations instead.
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"event-management/internal/config"
	"event-management/internal/models"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.Load()

	sqldb, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to open Postgres: %v", err)
	}
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	log.Println("Dropping tables...")
	dropTables(ctx, db)

	log.Println("Creating tables...")
	createTables(ctx, db)

	log.Println("Seeding sample data...")
	if err := seedData(ctx, db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done.")
}

func dropTables(ctx context.Context, db *bun.DB) {
	// Reverse dependency order.
	tables := []interface{}{
		(*models.Notification)(nil),
		(*models.Feedback)(nil),
		(*models.Ticket)(nil),
		(*models.Event)(nil),
		(*models.User)(nil),
	}
	for _, m := range tables {
		_, _ = db.NewDropTable().Model(m).IfExists().Cascade().Exec(ctx)
	}
}

func createTables(ctx context.Context, db *bun.DB) {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Event)(nil),
		(*models.Ticket)(nil),
		(*models.Feedback)(nil),
		(*models.Notification)(nil),
	}
	for _, m := range tables {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			log.Fatalf("Failed to create table for %T: %v", m, err)
		}
	}
}

func seedData(ctx context.Context, db *bun.DB) error {
	users := []models.User{
		{Name: "Alice Organizer", Email: "alice@example.com", PasswordHash: "$2a$10$seedhashalice", ContactNumber: "+1-555-0100", Role: models.RoleAdmin},
		{Name: "Bob Attendee", Email: "bob@example.com", PasswordHash: "$2a$10$seedhashbob", ContactNumber: "+1-555-0101", Role: models.RoleUser},
	}
	if _, err := db.NewInsert().Model(&users).Exec(ctx); err != nil {
		return err
	}

	events := []models.Event{
		{Name: "Summer Fest 2026", Category: "Music", Location: "Riverside Park", Date: time.Now().AddDate(0, 1, 0), OrganizerID: users[0].UserID},
		{Name: "Go Meetup", Category: "Tech", Location: "Downtown Hub", Date: time.Now().AddDate(0, 0, 7), OrganizerID: users[0].UserID},
	}
	if _, err := db.NewInsert().Model(&events).Exec(ctx); err != nil {
		return err
	}

	tickets := []models.Ticket{
		{EventID: events[0].EventID, UserID: users[1].UserID, TicketType: "Standard", Price: 49.99, PurchaseDate: time.Now(), Status: models.TicketReserved},
		{EventID: events[1].EventID, UserID: users[1].UserID, TicketType: "VIP", Price: 149.99, PurchaseDate: time.Now(), Status: models.TicketConfirmed},
	}
	if _, err := db.NewInsert().Model(&tickets).Exec(ctx); err != nil {
		return err
	}

	feedback := models.Feedback{
		EventID:            events[1].EventID,
		UserID:             users[1].UserID,
		Rating:             5,
		Comments:           "Great talks.",
		SubmittedTimestamp: time.Now(),
	}
	if _, err := db.NewInsert().Model(&feedback).Exec(ctx); err != nil {
		return err
	}

	eventID := events[0].EventID
	notification := models.Notification{
		UserID:    users[1].UserID,
		EventID:   &eventID,
		Type:      "BookingConfirmation",
		Title:     "Ticket reserved",
		Message:   "Your ticket for Summer Fest 2026 is reserved.",
		CreatedAt: time.Now(),
	}
	if _, err := db.NewInsert().Model(&notification).Exec(ctx); err != nil {
		return err
	}

	return nil
}
