// File: handlers/availability_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edspire/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAvailabilityService records the last Reseed call and returns canned data.
type fakeAvailabilityService struct {
	reseedTutorID string
	reseedCount   int
	reseedTZ      string
	reseedName    string
	reseedErr     error

	statusResult *models.TutorStatus
	slots        []models.AvailabilitySlot
}

func (f *fakeAvailabilityService) Status(_ context.Context, tutorID string, _ time.Time) (*models.TutorStatus, error) {
	if f.statusResult == nil {
		return &models.TutorStatus{Status: models.StatusOffline}, nil
	}
	return f.statusResult, nil
}

func (f *fakeAvailabilityService) Upcoming(_ context.Context, tutorID string) ([]models.AvailabilitySlot, error) {
	return f.slots, nil
}

func (f *fakeAvailabilityService) Reseed(_ context.Context, tutorID string, count int, tz, tutorName string) ([]models.AvailabilitySlot, error) {
	f.reseedTutorID = tutorID
	f.reseedCount = count
	f.reseedTZ = tz
	f.reseedName = tutorName
	if f.reseedErr != nil {
		return nil, f.reseedErr
	}
	return f.slots, nil
}

func seedRouter(svc *fakeAvailabilityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(svc)
	r.POST("/api/availability/seed", h.SeedHandler)
	r.GET("/api/availability/:tutorId/status", h.StatusHandler)
	r.GET("/api/availability/:tutorId", h.UpcomingHandler)
	return r
}

func TestSeedRejectsMissingUserID(t *testing.T) {
	svc := &fakeAvailabilityService{}
	r := seedRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/availability/seed", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["ok"])
	assert.NotEmpty(t, body["error"])
	assert.Empty(t, svc.reseedTutorID, "generator must not run without a userId")
}

func TestSeedAppliesDefaults(t *testing.T) {
	svc := &fakeAvailabilityService{}
	r := seedRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/availability/seed?userId=t1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "t1", svc.reseedTutorID)
	assert.Equal(t, 3, svc.reseedCount)
	assert.Equal(t, "Asia/Kuala_Lumpur", svc.reseedTZ)
}

func TestSeedHonorsExplicitParams(t *testing.T) {
	svc := &fakeAvailabilityService{}
	r := seedRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/availability/seed?userId=t1&count=6&tz=UTC&name=Demo+Tutor", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 6, svc.reseedCount)
	assert.Equal(t, "UTC", svc.reseedTZ)
	assert.Equal(t, "Demo Tutor", svc.reseedName)
}

func TestSeedRejectsMalformedCount(t *testing.T) {
	svc := &fakeAvailabilityService{}
	r := seedRouter(svc)

	for _, raw := range []string{"abc", "-1", "2.5"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/availability/seed?userId=t1&count="+raw, nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, "count=%s", raw)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["ok"])
	}
}

func TestSeedReturnsCreatedSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := &fakeAvailabilityService{
		slots: []models.AvailabilitySlot{
			{ID: "s1", TutorID: "t1", Start: now, End: now.Add(time.Hour), Timezone: "UTC"},
		},
	}
	r := seedRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/availability/seed?userId=t1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK      bool                      `json:"ok"`
		Created []models.AvailabilitySlot `json:"created"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	require.Len(t, body.Created, 1)
	assert.Equal(t, "s1", body.Created[0].ID)
}

func TestSeedGeneratorFailure(t *testing.T) {
	svc := &fakeAvailabilityService{reseedErr: errors.New("store down")}
	r := seedRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/availability/seed?userId=t1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["ok"])
	assert.NotContains(t, body["error"], "store down", "internal errors stay generic")
}

func TestStatusEndpoint(t *testing.T) {
	svc := &fakeAvailabilityService{
		statusResult: &models.TutorStatus{Status: models.StatusBusy, NextAvailable: "Sep 1, 2:00 PM"},
	}
	r := seedRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/t1/status", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body models.TutorStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.StatusBusy, body.Status)
	assert.Equal(t, "Sep 1, 2:00 PM", body.NextAvailable)
}
