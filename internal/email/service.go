package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/tassuhoiva/booking-api/internal/config"
	"github.com/tassuhoiva/booking-api/internal/model"
)

// Service sends customer-facing booking mail. Sending is best-effort: callers
// log failures and move on, a booking is never rolled back over a lost email.
type Service interface {
	SendBookingReceived(ctx context.Context, booking *model.Booking) error
}

func NewService(cfg config.SMTPConfig) Service {
	if !cfg.Enabled {
		return &noopService{}
	}
	return &smtpService{cfg: cfg}
}

type smtpService struct {
	cfg config.SMTPConfig
}

func (s *smtpService) SendBookingReceived(_ context.Context, booking *model.Booking) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", booking.CustomerEmail)
	if s.cfg.NotifyAddress != "" {
		m.SetHeader("Bcc", s.cfg.NotifyAddress)
	}
	m.SetHeader("Subject", fmt.Sprintf("Varauksesi on vastaanotettu: %s", booking.ServiceName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hei %s,\n\n"+
			"Kiitos varauksestasi! Olemme vastaanottaneet varauksen palvelulle %s (%s - %s).\n"+
			"Hinta yhteensä: %.2f €\n\n"+
			"Otamme sinuun yhteyttä pian vahvistaaksemme varauksen.\n",
		booking.CustomerName, booking.ServiceName, booking.StartDate, booking.EndDate, booking.Price,
	))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking email: %w", err)
	}
	return nil
}

type noopService struct{}

func (s *noopService) SendBookingReceived(context.Context, *model.Booking) error {
	return nil
}
