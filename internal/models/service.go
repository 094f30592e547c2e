package models

// Servicio ofrecido por la barbería. Catálogo estático, sin ciclo de vida.
type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}
