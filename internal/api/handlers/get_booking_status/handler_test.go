package get_booking_status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	gotCode string
	resp    *models.StatusResponse
	err     error
}

func (f *fakeService) GetStatus(_ context.Context, code string) (*models.StatusResponse, error) {
	f.gotCode = code
	return f.resp, f.err
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/status/{code}", h.Handle).Methods(http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler_OK(t *testing.T) {
	svc := &fakeService{resp: &models.StatusResponse{
		Code:    "SLN-AB12CD",
		Date:    "2025-03-10",
		Time:    "10:00",
		Service: "haircut",
		Status:  "pending",
	}}
	h := NewHandler(svc, logger.NewNop())

	w := serve(h, "/api/v1/status/sln-ab12cd")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sln-ab12cd", svc.gotCode)
	assert.JSONEq(t, `{"code":"SLN-AB12CD","date":"2025-03-10","time":"10:00","service":"haircut","stylist":null,"status":"pending"}`, w.Body.String())
}

func TestHandler_NotFound(t *testing.T) {
	h := NewHandler(&fakeService{err: appointments.ErrNotFound}, logger.NewNop())

	w := serve(h, "/api/v1/status/NOPE")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"NotFound"`)
}

func TestHandler_Internal(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop())

	w := serve(h, "/api/v1/status/SLN-AB12CD")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
