package get_available_stylists

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableStylists "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_stylists"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeUseCase struct {
	got  *getAvailableStylists.Request
	resp *getAvailableStylists.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableStylists.Request) (*getAvailableStylists.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestHandler_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableStylists.Response{Stylists: []string{"Iva", "Maria"}}}
	h := NewHandler(uc, logger.NewNop())
	w := httptest.NewRecorder()

	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/available-stylists?date=2025-03-10&time=10:00", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Iva","Maria"]`, w.Body.String())
	assert.Equal(t, "10:00", uc.got.Time)
}

func TestHandler_EmptyIsArray(t *testing.T) {
	h := NewHandler(&fakeUseCase{resp: &getAvailableStylists.Response{}}, logger.NewNop())
	w := httptest.NewRecorder()

	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/available-stylists?date=2025-03-10&time=10:00", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"missing time", "/api/v1/available-stylists?date=2025-03-10", nil, http.StatusBadRequest, "MissingField"},
		{"invalid date", "/api/v1/available-stylists?date=x&time=10:00", getAvailableStylists.ErrInvalidDate, http.StatusBadRequest, "InvalidDate"},
		{"invalid time", "/api/v1/available-stylists?date=2025-03-10&time=23:00", getAvailableStylists.ErrInvalidTime, http.StatusBadRequest, "InvalidTime"},
		{"store", "/api/v1/available-stylists?date=2025-03-10&time=10:00", errors.New("db down"), http.StatusInternalServerError, "StoreUnavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			w := httptest.NewRecorder()

			h.Handle(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"kind":"`+tt.wantKind+`"`)
		})
	}
}
