package models

// ServiceItem услуга из прайса
type ServiceItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// CatalogResponse прайс, рабочая сетка и мастера
type CatalogResponse struct {
	Services  []ServiceItem `json:"services"`
	WorkHours []string      `json:"workHours"`
	Stylists  []string      `json:"stylists"`
}
