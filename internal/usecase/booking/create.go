package booking

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/luckybarber/booking-api/internal/audit"
	"github.com/luckybarber/booking-api/internal/catalog"
	"github.com/luckybarber/booking-api/internal/config"
	domain "github.com/luckybarber/booking-api/internal/domain/booking"
	"github.com/luckybarber/booking-api/internal/httperr"
	"github.com/luckybarber/booking-api/internal/models"
	"github.com/luckybarber/booking-api/internal/session"
	"github.com/luckybarber/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SessionID string

	Name  string
	Email string

	Date    string // YYYY-MM-DD
	Time    string // HH:mm
	Service string

	// Dirección de red del visitante, si el resolver la entregó.
	OriginAddress string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	calendar domain.Calendar
	ledger   domain.Ledger
	mailer   domain.Mailer
	sessions session.Store
	audit    *audit.Dispatcher
	cfg      *config.Config
}

func NewCreateBooking(
	calendar domain.Calendar,
	ledger domain.Ledger,
	mailer domain.Mailer,
	sessions session.Store,
	auditor *audit.Dispatcher,
	cfg *config.Config,
) *CreateBooking {
	return &CreateBooking{
		calendar: calendar,
		ledger:   ledger,
		mailer:   mailer,
		sessions: sessions,
		audit:    auditor,
		cfg:      cfg,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute corre el flujo completo de una reserva: validación de identidad,
// re-chequeo del bloque contra el calendario, guardia anti-duplicados y
// recién entonces los tres escritos externos, en secuencia, sin rollback.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.BookingRecord, error) {

	// --------------------------------------------------
	// 1. Campos e identidad
	// --------------------------------------------------
	if in.Name == "" || in.Email == "" || in.Date == "" || in.Time == "" || in.Service == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	name := domain.SanitizeName(in.Name)
	if !domain.ValidName(name) {
		return nil, httperr.ErrBusiness("invalid_name")
	}

	email, ok := domain.SanitizeEmail(in.Email)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	svc, ok := catalog.Find(in.Service)
	if !ok {
		return nil, httperr.ErrBusiness("unknown_service")
	}

	// --------------------------------------------------
	// 2. Fecha y hora en la zona del negocio
	// --------------------------------------------------
	loc := timezone.Location(uc.cfg.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	end := start.Add(uc.cfg.SlotDuration())

	workStart, workEnd := workWindow(uc.cfg, start, loc)
	if start.Before(workStart) || end.After(workEnd) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 3. Sesión ya confirmada
	// --------------------------------------------------
	if in.SessionID != "" {
		confirmed, err := uc.sessions.Confirmed(ctx, in.SessionID)
		if err != nil {
			log.Println("session store error:", err)
		} else if confirmed {
			return nil, httperr.ErrBusiness("already_confirmed")
		}
	}

	// --------------------------------------------------
	// 4. El bloque sigue libre
	// --------------------------------------------------
	dayStart, dayEnd := dayBounds(start, loc)

	busy, err := uc.calendar.ListBusy(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, httperr.ErrCollaborator("calendar", err)
	}

	if domain.Overlaps(start, end, busy) {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 5. Guardia anti-duplicados (correo y dirección)
	// --------------------------------------------------
	rawRows, err := uc.ledger.Rows(ctx)
	if err != nil {
		return nil, httperr.ErrCollaborator("ledger", err)
	}

	records := parseRows(rawRows)
	cooldown := uc.cfg.Cooldown()

	if domain.HasRecentBooking(records, domain.ByEmail(email), start, cooldown, loc) {
		return nil, httperr.ErrBusiness("cooldown_email")
	}

	if in.OriginAddress != "" &&
		domain.HasRecentBooking(records, domain.ByAddress(in.OriginAddress), start, cooldown, loc) {
		return nil, httperr.ErrBusiness("cooldown_address")
	}

	// --------------------------------------------------
	// 6. Commit: calendario → planilla → correo
	// --------------------------------------------------
	eventID, err := uc.calendar.CreateEvent(ctx, domain.EventInput{
		Start:    start,
		End:      end,
		Title:    fmt.Sprintf("%s — %s", svc.Name, name),
		Attendee: email,
		Description: fmt.Sprintf(
			"Cliente: %s\nEmail: %s\nServicio: %s\nPrecio: $%d",
			name, email, svc.Name, svc.Price,
		),
	})
	if err != nil {
		return nil, httperr.ErrCollaborator("calendar", err)
	}

	rec := models.BookingRecord{
		Date:          start.Format("2006-01-02"),
		StartTime:     start.Format("15:04"),
		Name:          name,
		Email:         email,
		Service:       svc.Name,
		Price:         strconv.Itoa(svc.Price),
		EventID:       eventID,
		Status:        string(domain.InitialStatus()),
		OriginAddress: in.OriginAddress,
	}

	if err := uc.ledger.Append(ctx, rec.Cells()); err != nil {
		return nil, &httperr.PartialFailureError{
			Done: []string{"calendar"},
			Step: "ledger",
			Err:  err,
		}
	}

	if err := uc.mailer.Send(
		ctx,
		email,
		"Confirmación de cita — Lucky Barber",
		confirmationBody(name, svc.Name, rec.Date, rec.StartTime, svc.Price),
	); err != nil {
		return nil, &httperr.PartialFailureError{
			Done: []string{"calendar", "ledger"},
			Step: "mail",
			Err:  err,
		}
	}

	// --------------------------------------------------
	// 7. Sesión + auditoría
	// --------------------------------------------------
	if in.SessionID != "" {
		if err := uc.sessions.MarkConfirmed(ctx, in.SessionID, uc.cfg.SessionTTL()); err != nil {
			log.Println("session store error:", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action: "booking_created",
		Entity: "booking",
		Ref:    eventID,
		Metadata: map[string]string{
			"email": email,
			"date":  rec.Date,
			"time":  rec.StartTime,
		},
	})

	return &rec, nil
}

func confirmationBody(name, service, date, hour string, price int) string {
	return fmt.Sprintf(
		"<p>Hola %s, tu cita para <b>%s</b> fue confirmada para el %s a las %s. 💈</p>"+
			"<p>Precio: $%d</p>"+
			"<p>¡Te esperamos!</p>",
		name, service, date, hour, price,
	)
}

// parseRows descarta filas que no alcanzan a ser una reserva.
func parseRows(raw [][]string) []models.BookingRecord {
	records := make([]models.BookingRecord, 0, len(raw))
	for i, cells := range raw {
		if rec, ok := models.ParseBookingRow(i+1, cells); ok {
			records = append(records, rec)
		}
	}
	return records
}
