package list_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultService/internal/service/bookings/models"
)

type fakeService struct {
	result *models.BookingListResponse
	err    error

	lastReq *models.ListBookingsRequest
}

func (f *fakeService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	f.lastReq = req
	return f.result, f.err
}

type fakeSweep struct {
	sessions int
}

func (f *fakeSweep) StartSession() {
	f.sessions++
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestHandle_StartsSweepSessionOnSuccess(t *testing.T) {
	svc := &fakeService{result: &models.BookingListResponse{Bookings: []models.BookingResponse{}}}
	sweep := &fakeSweep{}
	h := NewHandler(svc, sweep, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, sweep.sessions, "successful load opens a new past-due session")
}

func TestHandle_NoSessionOnServiceError(t *testing.T) {
	svc := &fakeService{err: errors.New("db down")}
	sweep := &fakeSweep{}
	h := NewHandler(svc, sweep, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Zero(t, sweep.sessions, "failed load must not open a session")
}

func TestHandle_InvalidDateFrom(t *testing.T) {
	svc := &fakeService{}
	sweep := &fakeSweep{}
	h := NewHandler(svc, sweep, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?dateFrom=15-10-2025", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastReq)
	assert.Zero(t, sweep.sessions)
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &fakeService{result: &models.BookingListResponse{Bookings: []models.BookingResponse{}}}
	h := NewHandler(svc, &fakeSweep{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?status=pending&dateFrom=2025-10-01&dateTo=2025-10-31", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastReq)
	require.NotNil(t, svc.lastReq.Status)
	assert.Equal(t, "pending", *svc.lastReq.Status)
	require.NotNil(t, svc.lastReq.DateFrom)
	assert.Equal(t, "2025-10-01", svc.lastReq.DateFrom.Format("2006-01-02"))
	require.NotNil(t, svc.lastReq.DateTo)
	assert.Equal(t, "2025-10-31", svc.lastReq.DateTo.Format("2006-01-02"))
}
