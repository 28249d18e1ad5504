package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

// fakeEventService is an in-memory EventService used to exercise the
// controller without a database.
type fakeEventService struct {
	events map[int64]*models.Event
	nextID int64
}

func newFakeEventService() *fakeEventService {
	return &fakeEventService{events: map[int64]*models.Event{}, nextID: 1}
}

func (s *fakeEventService) GetEvents(_ context.Context, status models.EventStatus, page, size int) ([]*models.Event, int64, error) {
	var result []*models.Event
	for _, e := range s.events {
		if status == "" || e.Status == status {
			result = append(result, e)
		}
	}
	return result, int64(len(result)), nil
}

func (s *fakeEventService) GetEventByID(_ context.Context, id int64) (*models.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return e, nil
}

func (s *fakeEventService) CreateEvent(_ context.Context, event *models.Event) (*models.Event, error) {
	event.ID = s.nextID
	s.nextID++
	event.CreatedAt = time.Now()
	s.events[event.ID] = event
	return event, nil
}

func (s *fakeEventService) UpdateEvent(_ context.Context, event *models.Event) (*models.Event, error) {
	if _, ok := s.events[event.ID]; !ok {
		return nil, apperrors.ErrEventNotFound
	}
	s.events[event.ID] = event
	return event, nil
}

func (s *fakeEventService) DeleteEvent(_ context.Context, id int64) error {
	if _, ok := s.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

func newEventRouter(svc *fakeEventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewEventController(svc)
	router := gin.New()
	router.GET("/events", c.GetEvents)
	router.GET("/events/:id", c.GetEventByID)
	router.POST("/events", c.CreateEvent)
	router.PUT("/events/:id", c.UpdateEvent)
	router.DELETE("/events/:id", c.DeleteEvent)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateThenGetEvent(t *testing.T) {
	router := newEventRouter(newFakeEventService())

	rec := doJSON(router, "POST", "/events", gin.H{
		"title":    "Housing Open Day",
		"date":     "2026-10-01T10:00:00Z",
		"location": "Seoul",
		"status":   "upcoming",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data models.Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.Data.ID)

	rec = doJSON(router, "GET", "/events/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched struct {
		Data models.Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "Housing Open Day", fetched.Data.Title)
	assert.Equal(t, models.EventStatus("upcoming"), fetched.Data.Status)
}

func TestGetEventNotFound(t *testing.T) {
	router := newEventRouter(newFakeEventService())

	rec := doJSON(router, "GET", "/events/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_001")
}

func TestGetEventInvalidID(t *testing.T) {
	router := newEventRouter(newFakeEventService())

	rec := doJSON(router, "GET", "/events/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEventsPagination(t *testing.T) {
	svc := newFakeEventService()
	router := newEventRouter(svc)
	for i := 0; i < 3; i++ {
		doJSON(router, "POST", "/events", gin.H{"title": "Event", "date": "2026-10-01T10:00:00Z"})
	}

	rec := doJSON(router, "GET", "/events?page=1&size=20", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Items      []models.Event `json:"items"`
			Pagination struct {
				TotalItems int64 `json:"totalItems"`
				TotalPages int   `json:"totalPages"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Items, 3)
	assert.Equal(t, int64(3), resp.Data.Pagination.TotalItems)
	assert.Equal(t, 1, resp.Data.Pagination.TotalPages)
}

func TestUpdateEvent(t *testing.T) {
	router := newEventRouter(newFakeEventService())
	doJSON(router, "POST", "/events", gin.H{"title": "Before", "date": "2026-10-01T10:00:00Z"})

	rec := doJSON(router, "PUT", "/events/1", gin.H{"title": "After", "date": "2026-10-02T10:00:00Z"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "After")

	rec = doJSON(router, "PUT", "/events/99", gin.H{"title": "Missing", "date": "2026-10-02T10:00:00Z"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteEvent(t *testing.T) {
	svc := newFakeEventService()
	router := newEventRouter(svc)
	doJSON(router, "POST", "/events", gin.H{"title": "Event", "date": "2026-10-01T10:00:00Z"})

	rec := doJSON(router, "DELETE", "/events/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.events)

	rec = doJSON(router, "DELETE", "/events/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
