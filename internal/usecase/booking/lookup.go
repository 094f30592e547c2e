package booking

import (
	"context"
	"strings"

	domain "github.com/luckybarber/booking-api/internal/domain/booking"
	"github.com/luckybarber/booking-api/internal/httperr"
	"github.com/luckybarber/booking-api/internal/models"
)

type LookupBookings struct {
	ledger domain.Ledger
}

func NewLookupBookings(ledger domain.Ledger) *LookupBookings {
	return &LookupBookings{ledger: ledger}
}

// Execute lista las reservas ACTIVE de un correo, con su número de fila
// para poder cancelarlas después.
func (uc *LookupBookings) Execute(
	ctx context.Context,
	rawEmail string,
) ([]models.BookingRecord, error) {

	email, ok := domain.SanitizeEmail(rawEmail)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	rawRows, err := uc.ledger.Rows(ctx)
	if err != nil {
		return nil, httperr.ErrCollaborator("ledger", err)
	}

	matches := []models.BookingRecord{}
	for _, rec := range parseRows(rawRows) {
		if !strings.EqualFold(rec.Email, email) {
			continue
		}
		if domain.Status(rec.Status) != domain.StatusActive {
			continue
		}
		matches = append(matches, rec)
	}

	return matches, nil
}
