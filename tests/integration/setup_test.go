//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/natthaphon/eventpass/internal/models"
	"github.com/natthaphon/eventpass/internal/repository"
	"github.com/natthaphon/eventpass/internal/service"
	"github.com/natthaphon/eventpass/pkg/payment"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "eventpass_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	testDB.Exec("DROP TABLE IF EXISTS tickets")
	testDB.Exec("DROP TABLE IF EXISTS orders")
	testDB.Exec("DROP TABLE IF EXISTS rsvps")
	testDB.Exec("DROP TABLE IF EXISTS events")
	testDB.Exec("DROP TABLE IF EXISTS users")

	if err := testDB.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.RSVP{},
		&models.Order{},
		&models.Ticket{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS tickets")
	testDB.Exec("DROP TABLE IF EXISTS orders")
	testDB.Exec("DROP TABLE IF EXISTS rsvps")
	testDB.Exec("DROP TABLE IF EXISTS events")
	testDB.Exec("DROP TABLE IF EXISTS users")

	os.Exit(code)
}

func cleanTables() {
	testDB.Exec("DELETE FROM tickets")
	testDB.Exec("DELETE FROM orders")
	testDB.Exec("DELETE FROM rsvps")
	testDB.Exec("DELETE FROM events")
	testDB.Exec("DELETE FROM users")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func createTestUser(t *testing.T, id string, gender *string) *models.User {
	t.Helper()
	user := &models.User{
		ID:     id,
		Email:  id + "@example.com",
		Name:   id,
		Gender: gender,
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func createTestEvent(t *testing.T, hostID string, maxParticipants *int, price float64) *models.Event {
	t.Helper()
	event := &models.Event{
		HostID:          hostID,
		Title:           "Golang Meetup Bangkok",
		Date:            time.Now().Add(48 * time.Hour),
		RSVPDeadline:    time.Now().Add(24 * time.Hour),
		Location:        "True Digital Park",
		Visibility:      models.VisibilityPublic,
		Audience:        models.AudienceAll,
		MaxParticipants: maxParticipants,
		Price:           price,
		Published:       true,
	}
	require.NoError(t, testDB.Create(event).Error)
	return event
}

func newAdmissionService() service.AdmissionService {
	return service.NewAdmissionService(
		repository.NewRSVPRepository(testDB),
		repository.NewEventRepository(testDB),
		repository.NewUserRepository(testDB),
		nil,
	)
}

func newModerationService() service.ModerationService {
	return service.NewModerationService(
		repository.NewRSVPRepository(testDB),
		repository.NewEventRepository(testDB),
		nil,
	)
}

func newCheckoutService(gw payment.Gateway) service.CheckoutService {
	return service.NewCheckoutService(
		repository.NewOrderRepository(testDB),
		repository.NewTicketRepository(testDB),
		repository.NewEventRepository(testDB),
		repository.NewUserRepository(testDB),
		gw,
		nil,
		"http://localhost:3000",
	)
}

func newCheckinService() service.CheckinService {
	return service.NewCheckinService(repository.NewTicketRepository(testDB), nil)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
