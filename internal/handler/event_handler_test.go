package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/natthaphon/eventpass/internal/dto"
	"github.com/natthaphon/eventpass/internal/middleware"
	"github.com/natthaphon/eventpass/internal/models"
	"github.com/natthaphon/eventpass/internal/service"
	"github.com/stretchr/testify/assert"
)

type mockEventService struct {
	createFn func(ctx context.Context, hostID string, event *models.Event) error
	updateFn func(ctx context.Context, eventID, hostID string, upd service.EventUpdate) (*models.Event, error)
	getFn    func(ctx context.Context, id string) (*models.Event, error)
	listFn   func(ctx context.Context) ([]models.Event, error)
	statusFn func(ctx context.Context, id string) (*service.EventStatus, error)
}

func (m *mockEventService) CreateEvent(ctx context.Context, hostID string, event *models.Event) error {
	return m.createFn(ctx, hostID, event)
}
func (m *mockEventService) UpdateEvent(ctx context.Context, eventID, hostID string, upd service.EventUpdate) (*models.Event, error) {
	return m.updateFn(ctx, eventID, hostID, upd)
}
func (m *mockEventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return m.getFn(ctx, id)
}
func (m *mockEventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return m.listFn(ctx)
}
func (m *mockEventService) EventStatus(ctx context.Context, id string) (*service.EventStatus, error) {
	return m.statusFn(ctx, id)
}

func eventContext(t *testing.T, method, target, callerID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if callerID != "" {
		req.Header.Set(middleware.HeaderUserID, callerID)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateEvent_Success(t *testing.T) {
	var captured *models.Event
	svc := &mockEventService{
		createFn: func(ctx context.Context, hostID string, event *models.Event) error {
			assert.Equal(t, "host-1", hostID)
			event.ID = "evt-1"
			captured = event
			return nil
		},
	}

	date := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	body := fmt.Sprintf(`{"title":"City Trail Run","date":%q,"location":"Lumpini Park","max_participants":30,"price":12.5}`,
		date.Format(time.RFC3339))

	c, rec := eventContext(t, http.MethodPost, "/api/v1/events", "host-1", body)
	h := NewEventHandler(svc)
	err := middleware.CallerIdentity()(h.CreateEvent)(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotNil(t, captured)
	assert.Equal(t, date.Add(-defaultDeadlineHours*time.Hour), captured.RSVPDeadline)
	assert.Equal(t, models.VisibilityPublic, captured.Visibility)
	assert.Equal(t, models.AudienceAll, captured.Audience)
	assert.True(t, captured.Published)

	var resp dto.EventResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "evt-1", resp.ID)
	assert.Equal(t, 12.5, resp.Price)
}

func TestCreateEvent_ExplicitDeadlineWins(t *testing.T) {
	var captured *models.Event
	svc := &mockEventService{
		createFn: func(ctx context.Context, hostID string, event *models.Event) error {
			captured = event
			return nil
		},
	}

	date := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	deadline := date.Add(-24 * time.Hour)
	body := fmt.Sprintf(`{"title":"Board Game Night","date":%q,"rsvp_deadline":%q}`,
		date.Format(time.RFC3339), deadline.Format(time.RFC3339))

	c, rec := eventContext(t, http.MethodPost, "/api/v1/events", "host-1", body)
	h := NewEventHandler(svc)
	err := middleware.CallerIdentity()(h.CreateEvent)(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, deadline, captured.RSVPDeadline)
	assert.Equal(t, "TBD", captured.Location)
}

func TestCreateEvent_MissingTitle(t *testing.T) {
	c, _ := eventContext(t, http.MethodPost, "/api/v1/events", "host-1",
		fmt.Sprintf(`{"date":%q}`, time.Now().Add(time.Hour).Format(time.RFC3339)))
	h := NewEventHandler(&mockEventService{})
	err := middleware.CallerIdentity()(h.CreateEvent)(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateEvent_InvalidSchedule(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, hostID string, event *models.Event) error {
			return service.ErrInvalidSchedule
		},
	}

	date := time.Now().Add(24 * time.Hour)
	deadline := date.Add(time.Hour)
	body := fmt.Sprintf(`{"title":"Late Cutoff","date":%q,"rsvp_deadline":%q}`,
		date.Format(time.RFC3339), deadline.Format(time.RFC3339))

	c, _ := eventContext(t, http.MethodPost, "/api/v1/events", "host-1", body)
	h := NewEventHandler(svc)
	err := middleware.CallerIdentity()(h.CreateEvent)(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUpdateEvent_NotHost(t *testing.T) {
	svc := &mockEventService{
		updateFn: func(ctx context.Context, eventID, hostID string, upd service.EventUpdate) (*models.Event, error) {
			return nil, service.ErrNotHost
		},
	}

	c, _ := eventContext(t, http.MethodPatch, "/api/v1/events/evt-1", "stranger", `{"title":"Hijacked"}`)
	c.SetParamNames("id")
	c.SetParamValues("evt-1")

	h := NewEventHandler(svc)
	err := middleware.CallerIdentity()(h.UpdateEvent)(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestGetEvent_NotFound(t *testing.T) {
	svc := &mockEventService{
		getFn: func(ctx context.Context, id string) (*models.Event, error) {
			return nil, service.ErrEventNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewEventHandler(svc)
	err := h.GetEvent(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetEventStatus_ReportsSeats(t *testing.T) {
	max := 10
	seats := 7
	svc := &mockEventService{
		statusFn: func(ctx context.Context, id string) (*service.EventStatus, error) {
			return &service.EventStatus{
				Event:          &models.Event{ID: id, Title: "Meetup", MaxParticipants: &max},
				ConfirmedCount: 3,
				PendingCount:   2,
				SeatsAvailable: &seats,
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/evt-1/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("evt-1")

	h := NewEventHandler(svc)
	err := h.GetEventStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.EventStatusResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ConfirmedCount)
	assert.Equal(t, int64(2), resp.PendingCount)
	assert.NotNil(t, resp.SeatsAvailable)
	assert.Equal(t, 7, *resp.SeatsAvailable)
}

func TestListEvents_Empty(t *testing.T) {
	svc := &mockEventService{
		listFn: func(ctx context.Context) ([]models.Event, error) {
			return []models.Event{}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewEventHandler(svc)
	err := h.ListEvents(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
