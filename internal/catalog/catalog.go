package catalog

import "github.com/luckybarber/booking-api/internal/models"

// Catálogo estático de servicios. Precios en pesos chilenos.
var services = []models.Service{
	{
		Name:        "Corte Clasico",
		Description: "Corte de pelo a gusto, junto con un perfilado de cejas y barba + aplicación de productos para dar forma y estilizar el cabello + una bebida de cortesía al momento del servicio.",
		Price:       9000,
	},
	{
		Name:        "Corte Premium",
		Description: "Corte de pelo a gusto, junto con un perfilado de cejas y barba, además incluye limpieza, exfoliación e hidratación de la piel + aplicación de productos para dar forma y estilizar el cabello + una bebida de cortesía al momento del servicio.",
		Price:       15000,
	},
	{
		Name:        "Domicilio",
		Description: "Corte de pelo a gusto, junto con un perfilado de cejas y barba + aplicación de productos, todo en la comodidad de su casa (el valor puede aumentar dependiendo de la lejanía del domicilio).",
		Price:       15000,
	},
	{
		Name:        "Tintura",
		Description: "Tintura completa del cabello.",
		Price:       40000,
	},
	{
		Name:        "Ondulacion permanente",
		Description: "Ondulación permanente del cabello.",
		Price:       35000,
	},
}

func Services() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

func Find(name string) (models.Service, bool) {
	for _, s := range services {
		if s.Name == name {
			return s, true
		}
	}
	return models.Service{}, false
}
