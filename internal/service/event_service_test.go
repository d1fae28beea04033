package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/natthaphon/eventpass/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn       func(ctx context.Context, event *models.Event) error
	saveFn         func(ctx context.Context, event *models.Event) error
	findByIDFn     func(ctx context.Context, id string) (*models.Event, error)
	findUpcomingFn func(ctx context.Context) ([]models.Event, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventRepo) Save(ctx context.Context, event *models.Event) error {
	return m.saveFn(ctx, event)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) FindUpcoming(ctx context.Context) ([]models.Event, error) {
	return m.findUpcomingFn(ctx)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	upsertFn   func(ctx context.Context, user *models.User) error
	findByIDFn func(ctx context.Context, id string) (*models.User, error)
}

func (m *mockUserRepo) Upsert(ctx context.Context, user *models.User) error {
	return m.upsertFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}

// --- Tests ---

func sampleEvent() *models.Event {
	date := time.Date(2026, 9, 12, 19, 0, 0, 0, time.UTC)
	return &models.Event{
		Title:        "Sunset Run Bangkok",
		Date:         date,
		RSVPDeadline: date.Add(-2 * time.Hour),
		Location:     "Lumphini Park",
		Visibility:   models.VisibilityPublic,
		Audience:     models.AudienceAll,
		Price:        0,
		Published:    true,
	}
}

func hostRepo() *mockUserRepo {
	return &mockUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Email: "host@example.com"}, nil
		},
	}
}

func TestCreateEvent_Success(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *models.Event) error {
			event.ID = "evt-1"
			return nil
		},
	}

	svc := NewEventService(repo, hostRepo(), nil, nil) // nil publisher = skip RabbitMQ
	event := sampleEvent()

	err := svc.CreateEvent(context.Background(), "host-1", event)

	assert.NoError(t, err)
	assert.Equal(t, "evt-1", event.ID)
	assert.Equal(t, "host-1", event.HostID)
}

func TestCreateEvent_DeadlineAfterDate(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, hostRepo(), nil, nil)
	event := sampleEvent()
	event.RSVPDeadline = event.Date.Add(time.Hour)

	err := svc.CreateEvent(context.Background(), "host-1", event)

	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestCreateEvent_UnknownHost(t *testing.T) {
	users := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewEventService(&mockEventRepo{}, users, nil, nil)

	err := svc.CreateEvent(context.Background(), "ghost", sampleEvent())

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateEvent_RepoError(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, event *models.Event) error {
			return errors.New("db connection failed")
		},
	}

	svc := NewEventService(repo, hostRepo(), nil, nil)

	err := svc.CreateEvent(context.Background(), "host-1", sampleEvent())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db connection failed")
}

func TestGetEvent_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewEventService(repo, hostRepo(), nil, nil)
	event, err := svc.GetEvent(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrEventNotFound)
	assert.Nil(t, event)
}

func TestUpdateEvent_NotHost(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			e := sampleEvent()
			e.ID = id
			e.HostID = "host-1"
			return e, nil
		},
	}

	svc := NewEventService(repo, hostRepo(), nil, nil)
	_, err := svc.UpdateEvent(context.Background(), "evt-1", "someone-else", EventUpdate{})

	assert.ErrorIs(t, err, ErrNotHost)
}

func TestUpdateEvent_AppliesFields(t *testing.T) {
	var saved *models.Event
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			e := sampleEvent()
			e.ID = id
			e.HostID = "host-1"
			return e, nil
		},
		saveFn: func(ctx context.Context, event *models.Event) error {
			saved = event
			return nil
		},
	}

	svc := NewEventService(repo, hostRepo(), nil, nil)

	title := "Sunrise Run Bangkok"
	cap := 25
	event, err := svc.UpdateEvent(context.Background(), "evt-1", "host-1", EventUpdate{
		Title:           &title,
		MaxParticipants: &cap,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Sunrise Run Bangkok", event.Title)
	assert.Equal(t, 25, *event.MaxParticipants)
	assert.Same(t, event, saved)
}

func TestListEvents_Empty(t *testing.T) {
	repo := &mockEventRepo{
		findUpcomingFn: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{}, nil
		},
	}

	svc := NewEventService(repo, hostRepo(), nil, nil)
	events, err := svc.ListEvents(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, events)
}
