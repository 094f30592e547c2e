package booking

import (
	"context"
	"time"

	"github.com/luckybarber/booking-api/internal/models"
)

// Colaboradores externos. Las implementaciones reales viven en
// internal/infra/google; los tests usan dobles en memoria.

type EventInput struct {
	Start       time.Time
	End         time.Time
	Title       string
	Description string
	Attendee    string
}

type Calendar interface {
	// ListBusy devuelve los intervalos ocupados entre from y to.
	ListBusy(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.BusyInterval, error)

	// CreateEvent agenda el evento y devuelve su identificador externo.
	CreateEvent(
		ctx context.Context,
		in EventInput,
	) (string, error)

	// DeleteEvent elimina el evento. Un evento ya eliminado por fuera
	// cuenta como éxito (borrado idempotente).
	DeleteEvent(
		ctx context.Context,
		eventID string,
	) error
}

type Ledger interface {
	// Append agrega una fila al final de la planilla.
	Append(
		ctx context.Context,
		cells []string,
	) error

	// Rows devuelve todas las filas, en orden de hoja.
	Rows(
		ctx context.Context,
	) ([][]string, error)

	// UpdateTrailing reescribe las columnas H..K de una fila:
	// estado, dirección de origen, fecha de cancelación y motivo.
	UpdateTrailing(
		ctx context.Context,
		rowNum int,
		status string,
		originAddress string,
		cancelledAt string,
		reason string,
	) error
}

type Mailer interface {
	Send(
		ctx context.Context,
		to string,
		subject string,
		htmlBody string,
	) error
}
