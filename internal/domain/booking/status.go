package booking

// ===============================
// Estado de una reserva
// ===============================

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
)

func InitialStatus() Status {
	return StatusActive
}
