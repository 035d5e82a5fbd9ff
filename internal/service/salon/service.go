package salon

import (
	"sort"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/salon/models"
)

// Service публичная конфигурация салона
type Service struct {
	catalog *models.CatalogResponse
}

// NewService строит каталог один раз: конфигурация салона неизменяема
func NewService(salon *domain.Salon) *Service {
	services := make([]models.ServiceItem, 0, len(salon.Services))
	for name, price := range salon.Services {
		services = append(services, models.ServiceItem{Name: name, Price: price})
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })

	return &Service{
		catalog: &models.CatalogResponse{
			Services:  services,
			WorkHours: append([]string{}, salon.WorkHours...),
			Stylists:  append([]string{}, salon.Stylists...),
		},
	}
}

// GetCatalog возвращает прайс, сетку и мастеров
func (s *Service) GetCatalog() *models.CatalogResponse {
	return s.catalog
}
