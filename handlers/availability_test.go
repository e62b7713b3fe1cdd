package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mindwell/models"
	"mindwell/services/availability"

	"github.com/gin-gonic/gin"
)

type stubAvailabilityService struct {
	report *models.RegenerationReport
	err    error

	lastTherapistID string
	bulkCalls       int
}

func (s *stubAvailabilityService) RegenerateForTherapist(ctx context.Context, therapistID string) (*models.RegenerationReport, error) {
	s.lastTherapistID = therapistID
	return s.report, s.err
}

func (s *stubAvailabilityService) RegenerateAll(ctx context.Context) (*models.RegenerationReport, error) {
	s.bulkCalls++
	return s.report, s.err
}

type stubSlotRepo struct {
	slots []models.AvailabilitySlot
	err   error
}

func (s *stubSlotRepo) FindTakenSlots(ctx context.Context, therapistIDs []string, startDate, endDate string) ([]models.TakenSlotRef, error) {
	return nil, nil
}

func (s *stubSlotRepo) DeleteAvailableSlots(ctx context.Context, therapistIDs []string, startDate, endDate string) (int64, error) {
	return 0, nil
}

func (s *stubSlotRepo) InsertSlots(ctx context.Context, slots []models.AvailabilitySlot) error {
	return nil
}

func (s *stubSlotRepo) GetByTherapistAndRange(ctx context.Context, therapistID, startDate, endDate string) ([]models.AvailabilitySlot, error) {
	return s.slots, s.err
}

func (s *stubSlotRepo) EnsureIndexes() error { return nil }

const testTherapistID = "3e7c2f6a-9f1e-4d2b-8c5a-1b2d3e4f5a6b"

func postJSON(handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegenerateHandler(t *testing.T) {
	svc := &stubAvailabilityService{report: &models.RegenerationReport{
		TherapistsProcessed: 1, Created: 15, PreservedTaken: 2,
	}}
	h := NewAvailabilityHandler(svc, &stubSlotRepo{})

	w := postJSON(h.RegenerateHandler, "/api/availability/regenerate",
		`{"therapistId":"`+testTherapistID+`"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if svc.lastTherapistID != testTherapistID {
		t.Errorf("service called with %q", svc.lastTherapistID)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["created"] != float64(15) || resp["preservedTaken"] != float64(2) {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestRegenerateHandlerRejectsBadPayload(t *testing.T) {
	svc := &stubAvailabilityService{}
	h := NewAvailabilityHandler(svc, &stubSlotRepo{})

	tests := []struct {
		name string
		body string
	}{
		{"missing therapistId", `{}`},
		{"non-uuid therapistId", `{"therapistId":"not-a-uuid"}`},
		{"malformed json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(h.RegenerateHandler, "/api/availability/regenerate", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
	if svc.lastTherapistID != "" {
		t.Errorf("service invoked despite invalid payload")
	}
}

func TestRegenerateHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"schedule missing", availability.ErrScheduleNotFound, http.StatusNotFound},
		{"no days configured", availability.ErrNoScheduleDays, http.StatusBadRequest},
		{"storage failure", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAvailabilityHandler(&stubAvailabilityService{err: tt.err}, &stubSlotRepo{})
			w := postJSON(h.RegenerateHandler, "/api/availability/regenerate",
				`{"therapistId":"`+testTherapistID+`"}`)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRegenerateAllHandler(t *testing.T) {
	svc := &stubAvailabilityService{report: &models.RegenerationReport{
		TherapistsProcessed: 7, Created: 210, PreservedTaken: 12,
	}}
	h := NewAvailabilityHandler(svc, &stubSlotRepo{})

	w := postJSON(h.RegenerateAllHandler, "/api/availability/regenerate-all", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if svc.bulkCalls != 1 {
		t.Errorf("bulk regeneration called %d times", svc.bulkCalls)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp["therapistsProcessed"] != float64(7) {
		t.Errorf("unexpected body: %v", resp)
	}
}

func TestGetSlotsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubSlotRepo{slots: []models.AvailabilitySlot{
		{TherapistID: testTherapistID, Date: "2025-06-02", Hour: "09:00:00", State: models.SlotStateAvailable},
	}}
	h := NewAvailabilityHandler(&stubAvailabilityService{}, repo)

	router := gin.New()
	router.GET("/api/availability/:therapistId", h.GetSlotsHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/availability/"+testTherapistID+"?from=2025-06-01&to=2025-06-30", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Slots []models.AvailabilitySlot `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(resp.Slots) != 1 || resp.Slots[0].Hour != "09:00:00" {
		t.Errorf("unexpected slots: %+v", resp.Slots)
	}
}

func TestGetSlotsHandlerRepositoryFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubSlotRepo{err: errors.New("db down")}
	h := NewAvailabilityHandler(&stubAvailabilityService{}, repo)

	router := gin.New()
	router.GET("/api/availability/:therapistId", h.GetSlotsHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/availability/"+testTherapistID+"?from=2025-06-01&to=2025-06-30", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message != "Failed to fetch availability slots" || resp.Details != "db down" {
		t.Errorf("unexpected error body: %+v", resp)
	}
}

func TestGetSlotsHandlerRequiresRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAvailabilityHandler(&stubAvailabilityService{}, &stubSlotRepo{})

	router := gin.New()
	router.GET("/api/availability/:therapistId", h.GetSlotsHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/"+testTherapistID, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
