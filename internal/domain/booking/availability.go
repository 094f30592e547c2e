package booking

import (
	"time"

	"github.com/luckybarber/booking-api/internal/models"
)

// TimeSlot es la representación pública de un bloque libre.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots genera los bloques reservables del día: parte en workStart,
// avanza de a slotDuration y descarta todo bloque que no quepa entero
// antes de workEnd o que pise un intervalo ocupado. Todos los instantes
// deben venir en la zona horaria del negocio.
func FreeSlots(
	workStart time.Time,
	workEnd time.Time,
	slotDuration time.Duration,
	busy []models.BusyInterval,
) []models.Slot {

	var slots []models.Slot

	for cur := workStart; !cur.Add(slotDuration).After(workEnd); cur = cur.Add(slotDuration) {
		slot := models.Slot{
			Start: cur,
			End:   cur.Add(slotDuration),
		}

		if !Overlaps(slot.Start, slot.End, busy) {
			slots = append(slots, slot)
		}
	}

	return slots
}

// Overlaps aplica el test clásico de intervalos semiabiertos:
// start < busy.End && end > busy.Start.
func Overlaps(start, end time.Time, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}
