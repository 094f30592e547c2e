package booking

import (
	"strings"
	"time"

	"github.com/luckybarber/booking-api/internal/models"
)

// ===============================
// Guardia anti-duplicados
// ===============================

type IdentityKind int

const (
	IdentityEmail IdentityKind = iota
	IdentityAddress
)

// Identity es el criterio de coincidencia del guardia: correo del cliente
// o dirección de red de origen. Cubrir ambos frena el abuso trivial de
// usar un correo distinto por envío, sin exigir cuentas de usuario.
type Identity struct {
	Kind  IdentityKind
	Value string
}

func ByEmail(email string) Identity {
	return Identity{Kind: IdentityEmail, Value: email}
}

func ByAddress(addr string) Identity {
	return Identity{Kind: IdentityAddress, Value: addr}
}

func (id Identity) matches(rec models.BookingRecord) bool {
	switch id.Kind {
	case IdentityEmail:
		return strings.EqualFold(rec.Email, id.Value)
	case IdentityAddress:
		return rec.OriginAddress == id.Value
	}
	return false
}

// HasRecentBooking recorre todas las filas del ledger y responde si la
// identidad ya tiene una reserva ACTIVE dentro de la ventana de cooldown.
// La ventana es simétrica: también rechaza una reserva nueva *anterior* a
// una existente. Filas con fecha u hora corruptas se saltan; una fila
// histórica rota jamás debe voltear una reserva nueva.
func HasRecentBooking(
	rows []models.BookingRecord,
	identity Identity,
	candidateStart time.Time,
	cooldown time.Duration,
	loc *time.Location,
) bool {

	if identity.Value == "" {
		return false
	}

	for _, rec := range rows {
		if Status(rec.Status) != StatusActive {
			continue
		}
		if !identity.matches(rec) {
			continue
		}

		rowStart, err := rec.StartsAt(loc)
		if err != nil {
			continue
		}

		diff := candidateStart.Sub(rowStart)
		if diff < 0 {
			diff = -diff
		}

		if diff < cooldown {
			return true
		}
	}

	return false
}
