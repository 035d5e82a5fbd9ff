package get_blocked_phones

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/blocklist/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	resp *models.BlockedPhoneListResponse
	err  error
}

func (f *fakeService) List(_ context.Context) (*models.BlockedPhoneListResponse, error) {
	return f.resp, f.err
}

func TestHandler(t *testing.T) {
	h := NewHandler(&fakeService{resp: &models.BlockedPhoneListResponse{Phones: []models.BlockedPhoneResponse{}}}, logger.NewNop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/blocked-phones", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"phones":[]}`, w.Body.String())

	h = NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop())
	w = httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/blocked-phones", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
