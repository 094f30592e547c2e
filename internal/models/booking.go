package models

import "time"

// ===============================
// Calendar
// ===============================

// Intervalo ocupado en el calendario externo. Nunca se persiste aquí.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Bloque reservable de duración fija dentro del horario de atención.
type Slot struct {
	Start time.Time
	End   time.Time
}

// ===============================
// Ledger
// ===============================

// Columnas fijas de la planilla (A..K).
const (
	ColDate = iota
	ColStartTime
	ColName
	ColEmail
	ColService
	ColPrice
	ColEventID
	ColStatus
	ColOriginAddress
	ColCancelledAt
	ColCancelReason

	LedgerColumns = 11
)

// Una fila de reserva necesita al menos hasta la columna de estado
// para considerarse bien formada.
const minBookingCells = ColStatus + 1

// BookingRecord es una fila de la planilla de reservas.
// Fecha y hora se guardan como texto, igual que en la hoja.
type BookingRecord struct {
	RowNum int `json:"row"` // fila 1-based en la hoja; 0 si aún no fue agregada

	Date      string `json:"date"`       // 2006-01-02
	StartTime string `json:"start_time"` // 15:04

	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Price   string `json:"price"`

	EventID string `json:"event_id"`
	Status  string `json:"status"`

	OriginAddress string `json:"origin_address,omitempty"`
	CancelledAt   string `json:"cancelled_at,omitempty"`
	CancelReason  string `json:"cancel_reason,omitempty"`
}

// ParseBookingRow reconstruye una fila de la hoja. ok=false cuando la fila
// no tiene columnas suficientes para ser una reserva.
func ParseBookingRow(rowNum int, cells []string) (BookingRecord, bool) {
	if len(cells) < minBookingCells {
		return BookingRecord{}, false
	}

	get := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}

	return BookingRecord{
		RowNum:        rowNum,
		Date:          get(ColDate),
		StartTime:     get(ColStartTime),
		Name:          get(ColName),
		Email:         get(ColEmail),
		Service:       get(ColService),
		Price:         get(ColPrice),
		EventID:       get(ColEventID),
		Status:        get(ColStatus),
		OriginAddress: get(ColOriginAddress),
		CancelledAt:   get(ColCancelledAt),
		CancelReason:  get(ColCancelReason),
	}, true
}

// Cells serializa la reserva en el orden posicional de la hoja.
func (r BookingRecord) Cells() []string {
	return []string{
		r.Date,
		r.StartTime,
		r.Name,
		r.Email,
		r.Service,
		r.Price,
		r.EventID,
		r.Status,
		r.OriginAddress,
		r.CancelledAt,
		r.CancelReason,
	}
}

// StartsAt reconstruye el instante de la cita en la zona horaria del negocio.
func (r BookingRecord) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.StartTime, loc)
}
