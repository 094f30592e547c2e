package booking

import (
	"context"
	"time"

	"github.com/luckybarber/booking-api/internal/config"
	domain "github.com/luckybarber/booking-api/internal/domain/booking"
	"github.com/luckybarber/booking-api/internal/httperr"
	"github.com/luckybarber/booking-api/internal/timezone"
)

type GetAvailability struct {
	calendar domain.Calendar
	cfg      *config.Config
}

func NewGetAvailability(calendar domain.Calendar, cfg *config.Config) *GetAvailability {
	return &GetAvailability{
		calendar: calendar,
		cfg:      cfg,
	}
}

// Execute calcula los bloques libres del día contra los intervalos
// ocupados del calendario externo.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
) ([]domain.TimeSlot, error) {

	loc := timezone.Location(uc.cfg.Timezone)

	dayStart, dayEnd := dayBounds(date, loc)

	busy, err := uc.calendar.ListBusy(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, httperr.ErrCollaborator("calendar", err)
	}

	workStart, workEnd := workWindow(uc.cfg, date, loc)

	free := domain.FreeSlots(workStart, workEnd, uc.cfg.SlotDuration(), busy)

	slots := make([]domain.TimeSlot, 0, len(free))
	for _, s := range free {
		slots = append(slots, domain.TimeSlot{
			Start: s.Start.Format("15:04"),
			End:   s.End.Format("15:04"),
		})
	}

	return slots, nil
}
