package booking

import (
	"context"
	"strings"

	"github.com/luckybarber/booking-api/internal/audit"
	"github.com/luckybarber/booking-api/internal/config"
	domain "github.com/luckybarber/booking-api/internal/domain/booking"
	"github.com/luckybarber/booking-api/internal/httperr"
	"github.com/luckybarber/booking-api/internal/models"
	"github.com/luckybarber/booking-api/internal/timezone"
)

type CancelBookingInput struct {
	Email  string
	RowNum int
	Reason string
}

type CancelBooking struct {
	calendar domain.Calendar
	ledger   domain.Ledger
	audit    *audit.Dispatcher
	cfg      *config.Config
}

func NewCancelBooking(
	calendar domain.Calendar,
	ledger domain.Ledger,
	auditor *audit.Dispatcher,
	cfg *config.Config,
) *CancelBooking {
	return &CancelBooking{
		calendar: calendar,
		ledger:   ledger,
		audit:    auditor,
		cfg:      cfg,
	}
}

// Execute cancela una reserva: borra el evento del calendario (tolerando
// que ya no exista) y marca la fila con estado, fecha y motivo. No hay
// des-cancelación.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelBookingInput,
) (*models.BookingRecord, error) {

	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, httperr.ErrBusiness("missing_reason")
	}

	email, ok := domain.SanitizeEmail(in.Email)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	rawRows, err := uc.ledger.Rows(ctx)
	if err != nil {
		return nil, httperr.ErrCollaborator("ledger", err)
	}

	rec, found := findRow(parseRows(rawRows), in.RowNum, email)
	if !found {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if rec.EventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, rec.EventID); err != nil {
			return nil, httperr.ErrCollaborator("calendar", err)
		}
	}

	now := timezone.NowIn(uc.cfg.Timezone)

	rec.Status = string(domain.StatusCancelled)
	rec.CancelledAt = now.Format("2006-01-02 15:04:05")
	rec.CancelReason = reason

	if err := uc.ledger.UpdateTrailing(
		ctx,
		rec.RowNum,
		rec.Status,
		rec.OriginAddress,
		rec.CancelledAt,
		rec.CancelReason,
	); err != nil {
		return nil, &httperr.PartialFailureError{
			Done: []string{"calendar"},
			Step: "ledger",
			Err:  err,
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action: "booking_cancelled",
		Entity: "booking",
		Ref:    rec.EventID,
		Metadata: map[string]string{
			"email":  email,
			"reason": reason,
		},
	})

	return &rec, nil
}

func findRow(records []models.BookingRecord, rowNum int, email string) (models.BookingRecord, bool) {
	for _, rec := range records {
		if rec.RowNum != rowNum {
			continue
		}
		if !strings.EqualFold(rec.Email, email) {
			return models.BookingRecord{}, false
		}
		if domain.Status(rec.Status) != domain.StatusActive {
			return models.BookingRecord{}, false
		}
		return rec, true
	}
	return models.BookingRecord{}, false
}
