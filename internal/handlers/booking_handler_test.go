package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luckybarber/booking-api/internal/config"
	domain "github.com/luckybarber/booking-api/internal/domain/booking"
	"github.com/luckybarber/booking-api/internal/models"
	"github.com/luckybarber/booking-api/internal/routes"
	"github.com/luckybarber/booking-api/internal/session"
)

// Dobles mínimos para probar el mapeo HTTP.

type stubCalendar struct {
	busy []models.BusyInterval
}

func (s *stubCalendar) ListBusy(ctx context.Context, from, to time.Time) ([]models.BusyInterval, error) {
	return s.busy, nil
}

func (s *stubCalendar) CreateEvent(ctx context.Context, in domain.EventInput) (string, error) {
	return "ev-1", nil
}

func (s *stubCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	return nil
}

type stubLedger struct {
	rows     [][]string
	appended int
}

func (s *stubLedger) Append(ctx context.Context, cells []string) error {
	s.appended++
	return nil
}

func (s *stubLedger) Rows(ctx context.Context) ([][]string, error) {
	return s.rows, nil
}

func (s *stubLedger) UpdateTrailing(ctx context.Context, rowNum int, status, origin, cancelledAt, reason string) error {
	return nil
}

type stubMailer struct{}

func (s *stubMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	return nil
}

func newTestRouter(cal *stubCalendar, led *stubLedger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Timezone:        "UTC",
		WorkStartHour:   9,
		WorkEndHour:     18,
		SlotMinutes:     45,
		CooldownHours:   72,
		SessionTTLHours: 24,
	}

	r := gin.New()
	routes.RegisterRoutes(r, nil, cfg, cal, led, &stubMailer{}, session.NewMemory())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Code string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad error body %q: %v", w.Body.String(), err)
	}
	return resp.Code
}

func TestListServices(t *testing.T) {
	r := newTestRouter(&stubCalendar{}, &stubLedger{})

	w := doJSON(t, r, http.MethodGet, "/api/services", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Data  []models.Service `json:"data"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Total != 5 {
		t.Errorf("total = %d, want 5 services", resp.Total)
	}
}

func TestAvailabilityEndpoint(t *testing.T) {
	r := newTestRouter(&stubCalendar{}, &stubLedger{})

	t.Run("missing date", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/availability", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("full day", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/availability?date=2026-09-10", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Date  string            `json:"date"`
			Slots []domain.TimeSlot `json:"slots"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if len(resp.Slots) != 12 {
			t.Errorf("got %d slots, want 12 for an empty 09:00-18:00 day", len(resp.Slots))
		}
	})
}

func TestCreateBookingEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		led := &stubLedger{}
		r := newTestRouter(&stubCalendar{}, led)

		w := doJSON(t, r, http.MethodPost, "/api/bookings",
			`{"name":"Juan Pérez","email":"juan@example.com","date":"2026-09-10","time":"10:30","service":"Corte Clasico"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}
		if led.appended != 1 {
			t.Errorf("appended %d rows, want 1", led.appended)
		}
	})

	t.Run("slot taken maps to 409", func(t *testing.T) {
		cal := &stubCalendar{busy: []models.BusyInterval{{
			Start: time.Date(2026, 9, 10, 10, 30, 0, 0, time.UTC),
			End:   time.Date(2026, 9, 10, 11, 15, 0, 0, time.UTC),
		}}}
		r := newTestRouter(cal, &stubLedger{})

		w := doJSON(t, r, http.MethodPost, "/api/bookings",
			`{"name":"Juan Pérez","email":"juan@example.com","date":"2026-09-10","time":"10:30","service":"Corte Clasico"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
		}
		if errorCode(t, w) != "slot_taken" {
			t.Errorf("error code = %q, want slot_taken", errorCode(t, w))
		}
	})

	t.Run("cooldown maps to 429", func(t *testing.T) {
		led := &stubLedger{rows: [][]string{
			{"2026-09-09", "11:00", "Juan", "juan@example.com", "Corte Clasico", "9000", "ev-old", "ACTIVE", "", "", ""},
		}}
		r := newTestRouter(&stubCalendar{}, led)

		w := doJSON(t, r, http.MethodPost, "/api/bookings",
			`{"name":"Juan Pérez","email":"juan@example.com","date":"2026-09-10","time":"10:30","service":"Corte Clasico"}`)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429: %s", w.Code, w.Body.String())
		}
	})

	t.Run("binding failure maps to 400", func(t *testing.T) {
		r := newTestRouter(&stubCalendar{}, &stubLedger{})

		w := doJSON(t, r, http.MethodPost, "/api/bookings", `{"name":"Juan"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestCancelBookingEndpoint(t *testing.T) {
	led := &stubLedger{rows: [][]string{
		{"2026-09-10", "10:30", "Juan", "juan@example.com", "Corte Clasico", "9000", "ev-1", "ACTIVE", "", "", ""},
	}}
	r := newTestRouter(&stubCalendar{}, led)

	t.Run("missing reason maps to 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/bookings/cancel",
			`{"email":"juan@example.com","row":1,"reason":"  "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
		}
		if errorCode(t, w) != "missing_reason" {
			t.Errorf("error code = %q, want missing_reason", errorCode(t, w))
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/bookings/cancel",
			`{"email":"juan@example.com","row":1,"reason":"viaje"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown row maps to 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/bookings/cancel",
			`{"email":"juan@example.com","row":9,"reason":"viaje"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
		}
	})
}

func TestLookupEndpoint(t *testing.T) {
	led := &stubLedger{rows: [][]string{
		{"2026-09-10", "10:30", "Juan", "juan@example.com", "Corte Clasico", "9000", "ev-1", "ACTIVE", "", "", ""},
	}}
	r := newTestRouter(&stubCalendar{}, led)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?email=juan@example.com", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("total = %d, want 1", resp.Total)
	}
}
