package booking

import (
	"context"
	"testing"

	"github.com/luckybarber/booking-api/internal/httperr"
	"github.com/luckybarber/booking-api/internal/models"
)

func TestLookupBookings(t *testing.T) {
	cancelled := activeLedgerRow("2026-09-02", "12:00", "Juan", "juan@example.com", "")
	cancelled[models.ColStatus] = "CANCELLED"

	led := &fakeLedger{rows: [][]string{
		activeLedgerRow("2026-09-01", "09:45", "Otro", "otro@example.com", ""),
		cancelled,
		{"fila", "rota"},
		activeLedgerRow("2026-09-10", "10:30", "Juan", "Juan@Example.com", ""),
	}}

	uc := NewLookupBookings(led)

	matches, err := uc.Execute(context.Background(), "juan@example.com")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1 (only the ACTIVE row)", len(matches))
	}
	if matches[0].RowNum != 4 {
		t.Errorf("match row = %d, want 4 (sheet position)", matches[0].RowNum)
	}
}

func TestLookupBookingsInvalidEmail(t *testing.T) {
	uc := NewLookupBookings(&fakeLedger{})

	_, err := uc.Execute(context.Background(), "not-an-email")
	if !httperr.IsBusiness(err, "invalid_email") {
		t.Fatalf("got err %v, want invalid_email", err)
	}
}

func TestLookupBookingsNoMatches(t *testing.T) {
	led := &fakeLedger{rows: [][]string{
		activeLedgerRow("2026-09-01", "09:45", "Otro", "otro@example.com", ""),
	}}
	uc := NewLookupBookings(led)

	matches, err := uc.Execute(context.Background(), "nadie@example.com")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}
