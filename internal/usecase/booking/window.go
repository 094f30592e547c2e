package booking

import (
	"time"

	"github.com/luckybarber/booking-api/internal/config"
)

// workWindow proyecta el horario de atención sobre un día concreto, en la
// zona horaria del negocio. Usar el calendario civil (y no offsets UTC
// crudos) deja los cambios de horario de verano en manos de time.Location.
func workWindow(cfg *config.Config, date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()

	start := time.Date(y, m, d, cfg.WorkStartHour, 0, 0, 0, loc)
	end := time.Date(y, m, d, cfg.WorkEndHour, 0, 0, 0, loc)

	return start, end
}

// dayBounds delimita el día completo para consultar el calendario.
func dayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()

	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
