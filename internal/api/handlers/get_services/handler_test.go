package get_services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/salon/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	catalog *models.CatalogResponse
}

func (f fakeService) GetCatalog() *models.CatalogResponse {
	return f.catalog
}

func TestHandler(t *testing.T) {
	h := NewHandler(fakeService{catalog: &models.CatalogResponse{
		Services:  []models.ServiceItem{{Name: "haircut", Price: 30}},
		WorkHours: []string{"09:00", "10:00"},
		Stylists:  []string{"Iva"},
	}}, logger.NewNop())
	w := httptest.NewRecorder()

	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"services":[{"name":"haircut","price":30}],"workHours":["09:00","10:00"],"stylists":["Iva"]}`, w.Body.String())
}
