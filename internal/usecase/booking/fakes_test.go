package booking

import (
	"context"
	"time"

	"github.com/luckybarber/booking-api/internal/config"
	domain "github.com/luckybarber/booking-api/internal/domain/booking"
	"github.com/luckybarber/booking-api/internal/models"
)

// Dobles en memoria de los colaboradores externos.

type fakeCalendar struct {
	busy []models.BusyInterval

	listErr   error
	createErr error
	deleteErr error

	created []domain.EventInput
	deleted []string

	nextEventID string
}

func (f *fakeCalendar) ListBusy(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.busy, nil
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, in domain.EventInput) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, in)
	if f.nextEventID == "" {
		return "ev-1", nil
	}
	return f.nextEventID, nil
}

func (f *fakeCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	// un evento inexistente también es éxito: borrado idempotente
	f.deleted = append(f.deleted, eventID)
	return nil
}

type trailingUpdate struct {
	rowNum      int
	status      string
	origin      string
	cancelledAt string
	reason      string
}

type fakeLedger struct {
	rows [][]string

	rowsErr   error
	appendErr error
	updateErr error

	appended [][]string
	updates  []trailingUpdate
}

func (f *fakeLedger) Append(ctx context.Context, cells []string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, cells)
	return nil
}

func (f *fakeLedger) Rows(ctx context.Context) ([][]string, error) {
	if f.rowsErr != nil {
		return nil, f.rowsErr
	}
	return f.rows, nil
}

func (f *fakeLedger) UpdateTrailing(ctx context.Context, rowNum int, status, origin, cancelledAt, reason string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, trailingUpdate{
		rowNum:      rowNum,
		status:      status,
		origin:      origin,
		cancelledAt: cancelledAt,
		reason:      reason,
	})
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	err  error
	sent []sentMail
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

var (
	_ domain.Calendar = (*fakeCalendar)(nil)
	_ domain.Ledger   = (*fakeLedger)(nil)
	_ domain.Mailer   = (*fakeMailer)(nil)
)

func testConfig() *config.Config {
	return &config.Config{
		Timezone:        "UTC",
		WorkStartHour:   9,
		WorkEndHour:     18,
		SlotMinutes:     45,
		CooldownHours:   72,
		SessionTTLHours: 24,
	}
}

func activeLedgerRow(date, hour, name, email, addr string) []string {
	return []string{date, hour, name, email, "Corte Clasico", "9000", "ev-old", "ACTIVE", addr, "", ""}
}
