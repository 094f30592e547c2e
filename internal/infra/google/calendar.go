package google

import (
	"context"
	"errors"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	domain "github.com/luckybarber/booking-api/internal/domain/booking"
	"github.com/luckybarber/booking-api/internal/models"
)

type CalendarService struct {
	svc        *calendar.Service
	calendarID string
	tzName     string
}

func NewCalendar(
	ctx context.Context,
	client *http.Client,
	calendarID string,
	tzName string,
) (*CalendarService, error) {

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	return &CalendarService{
		svc:        svc,
		calendarID: calendarID,
		tzName:     tzName,
	}, nil
}

func (c *CalendarService) ListBusy(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.BusyInterval, error) {

	events, err := c.svc.Events.List(c.calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	var busy []models.BusyInterval
	for _, ev := range events.Items {
		// eventos de día completo no traen DateTime
		if ev.Start == nil || ev.End == nil ||
			ev.Start.DateTime == "" || ev.End.DateTime == "" {
			continue
		}

		start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, ev.End.DateTime)
		if err != nil {
			continue
		}

		busy = append(busy, models.BusyInterval{Start: start, End: end})
	}

	return busy, nil
}

func (c *CalendarService) CreateEvent(
	ctx context.Context,
	in domain.EventInput,
) (string, error) {

	ev := &calendar.Event{
		Summary:     in.Title,
		Description: in.Description,
		Start: &calendar.EventDateTime{
			DateTime: in.Start.Format(time.RFC3339),
			TimeZone: c.tzName,
		},
		End: &calendar.EventDateTime{
			DateTime: in.End.Format(time.RFC3339),
			TimeZone: c.tzName,
		},
	}

	if in.Attendee != "" {
		ev.Attendees = []*calendar.EventAttendee{
			{Email: in.Attendee},
		}
	}

	created, err := c.svc.Events.Insert(c.calendarID, ev).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	return created.Id, nil
}

func (c *CalendarService) DeleteEvent(
	ctx context.Context,
	eventID string,
) error {

	err := c.svc.Events.Delete(c.calendarID, eventID).
		Context(ctx).
		Do()

	if isGone(err) {
		return nil
	}

	return err
}

// isGone reconoce la respuesta "ya no existe" del calendario, que la
// cancelación trata como éxito.
func isGone(err error) bool {
	if err == nil {
		return false
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusNotFound ||
			gerr.Code == http.StatusGone
	}

	return false
}

// Compile-time check
var _ domain.Calendar = (*CalendarService)(nil)
