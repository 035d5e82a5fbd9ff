package get_services

import (
	"github.com/m04kA/SMC-SalonBooking/internal/service/salon/models"
)

type SalonService interface {
	GetCatalog() *models.CatalogResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
