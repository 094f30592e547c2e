package google

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	domain "github.com/luckybarber/booking-api/internal/domain/booking"
)

type GmailMailer struct {
	svc *gmail.Service
}

func NewGmailMailer(
	ctx context.Context,
	client *http.Client,
) (*GmailMailer, error) {

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	return &GmailMailer{svc: svc}, nil
}

func (m *GmailMailer) Send(
	ctx context.Context,
	to string,
	subject string,
	htmlBody string,
) error {

	msg := fmt.Sprintf(
		"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		to,
		mime.QEncoding.Encode("UTF-8", subject),
		htmlBody,
	)

	raw := base64.URLEncoding.EncodeToString([]byte(msg))

	_, err := m.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).
		Context(ctx).
		Do()

	return err
}

// Compile-time check
var _ domain.Mailer = (*GmailMailer)(nil)
