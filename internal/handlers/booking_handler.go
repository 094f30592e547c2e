package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luckybarber/booking-api/internal/catalog"
	"github.com/luckybarber/booking-api/internal/config"
	"github.com/luckybarber/booking-api/internal/httperr"
	"github.com/luckybarber/booking-api/internal/httpresp"
	"github.com/luckybarber/booking-api/internal/timezone"
	usecase "github.com/luckybarber/booking-api/internal/usecase/booking"
)

const sessionCookie = "lb_session"

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	availabilityUC *usecase.GetAvailability
	createUC       *usecase.CreateBooking
	lookupUC       *usecase.LookupBookings
	cancelUC       *usecase.CancelBooking
	cfg            *config.Config
}

func NewBookingHandler(
	availabilityUC *usecase.GetAvailability,
	createUC *usecase.CreateBooking,
	lookupUC *usecase.LookupBookings,
	cancelUC *usecase.CancelBooking,
	cfg *config.Config,
) *BookingHandler {
	return &BookingHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		lookupUC:       lookupUC,
		cancelUC:       cancelUC,
		cfg:            cfg,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Time    string `json:"time" binding:"required"` // HH:mm
	Service string `json:"service" binding:"required"`
}

type CancelBookingRequest struct {
	Email  string `json:"email" binding:"required"`
	Row    int    `json:"row" binding:"required"`
	Reason string `json:"reason"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *BookingHandler) ListServices(c *gin.Context) {
	httpresp.List(c, catalog.Services())
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "La fecha es obligatoria.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(h.cfg.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE
////////////////////////////////////////////////////////

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	rec, err := h.createUC.Execute(
		c.Request.Context(),
		usecase.CreateBookingInput{
			SessionID:     h.ensureSession(c),
			Name:          req.Name,
			Email:         req.Email,
			Date:          req.Date,
			Time:          req.Time,
			Service:       req.Service,
			OriginAddress: c.ClientIP(),
		},
	)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cita confirmada y correo enviado.",
		"booking": rec,
	})
}

////////////////////////////////////////////////////////
// LOOKUP / CANCEL
////////////////////////////////////////////////////////

func (h *BookingHandler) Lookup(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.BadRequest(c, "missing_params", "El correo es obligatorio.")
		return
	}

	matches, err := h.lookupUC.Execute(c.Request.Context(), email)
	if err != nil {
		h.mapError(c, err)
		return
	}

	httpresp.List(c, matches)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	rec, err := h.cancelUC.Execute(
		c.Request.Context(),
		usecase.CancelBookingInput{
			Email:  req.Email,
			RowNum: req.Row,
			Reason: req.Reason,
		},
	)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cita cancelada.",
		"booking": rec,
	})
}

////////////////////////////////////////////////////////
// SESIÓN
////////////////////////////////////////////////////////

// ensureSession devuelve el identificador de sesión del visitante,
// emitiendo la cookie en el primer contacto.
func (h *BookingHandler) ensureSession(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}

	id := uuid.NewString()
	c.SetCookie(
		sessionCookie,
		id,
		int(h.cfg.SessionTTL().Seconds()),
		"/",
		"",
		false,
		true,
	)
	return id
}

////////////////////////////////////////////////////////
// MAPEO DE ERRORES
////////////////////////////////////////////////////////

func (h *BookingHandler) mapError(c *gin.Context, err error) {

	var partial *httperr.PartialFailureError
	if errors.As(err, &partial) {
		httperr.BadGateway(c, "partial_failure", partial.Error())
		return
	}

	var collab *httperr.CollaboratorError
	if errors.As(err, &collab) {
		httperr.BadGateway(c, "collaborator_error", collab.Error())
		return
	}

	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Error inesperado.")
		return
	}

	switch code {
	case "slot_taken":
		httperr.Conflict(c, code, "Ese horario ya está ocupado.")
	case "already_confirmed":
		httperr.Conflict(c, code, "Esta sesión ya confirmó una reserva.")
	case "cooldown_email", "cooldown_address":
		httperr.TooManyRequests(c, code, "Ya tienes una reserva reciente.")
	case "booking_not_found":
		httperr.NotFound(c, code, "Reserva no encontrada.")
	case "invalid_name":
		httperr.BadRequest(c, code, "Nombre inválido.")
	case "invalid_email":
		httperr.BadRequest(c, code, "Correo inválido.")
	case "missing_fields":
		httperr.BadRequest(c, code, "Por favor, completa todos los campos.")
	case "missing_reason":
		httperr.BadRequest(c, code, "El motivo de cancelación es obligatorio.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Fecha u hora inválida.")
	case "outside_working_hours":
		httperr.BadRequest(c, code, "Fuera del horario de atención.")
	case "unknown_service":
		httperr.BadRequest(c, code, "Servicio inválido.")
	default:
		httperr.BadRequest(c, code, "Solicitud rechazada.")
	}
}
