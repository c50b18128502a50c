package notification

import (
	"context"
	"fmt"
	"log/slog"

	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/readmodel"

	"gopkg.in/gomail.v2"
)

// New selects the delivery channel from config. Unknown channels fall
// back to the log notifier so a misconfigured environment still boots.
func New(cfg config.NotifyConfig) usecase.Notifier {
	switch cfg.Channel {
	case "email":
		return NewEmailNotifier(cfg)
	default:
		return NewLogNotifier()
	}
}

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) BookingConfirmed(_ context.Context, b *readmodel.BookingRM) error {
	slog.Info("booking confirmed",
		"booking_number", b.Number,
		"customer_email", b.CustomerEmail,
		"activity", b.ActivityTitle,
		"date", b.Date.Format("2006-01-02"),
		"slot", b.SlotStart+"-"+b.SlotEnd,
	)
	return nil
}

type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailNotifier(cfg config.NotifyConfig) *EmailNotifier {
	return &EmailNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.From,
	}
}

func (n *EmailNotifier) BookingConfirmed(_ context.Context, b *readmodel.BookingRM) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", b.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Booking %s confirmed", b.Number))
	m.SetBody("text/html", confirmationBody(b))

	if err := n.dialer.DialAndSend(m); err != nil {
		return errs.Wrap(err, "failed to send confirmation email")
	}
	return nil
}

func confirmationBody(b *readmodel.BookingRM) string {
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your booking <b>%s</b> for <b>%s</b> is confirmed.</p>
<ul>
  <li>Date: %s</li>
  <li>Time: %s - %s</li>
  <li>Participants: %d</li>
  <li>Venue: %s, %s</li>
  <li>Amount paid: %.2f</li>
</ul>`,
		b.CustomerName, b.Number, b.ActivityTitle,
		b.Date.Format("Monday, 2 January 2006"),
		b.SlotStart, b.SlotEnd,
		b.Participants,
		b.Venue, b.Address,
		float64(b.FinalAmount)/100,
	)
	if b.CredentialToken != nil {
		body += fmt.Sprintf(
			`<p>Show this entry code at the venue:</p><pre>%s</pre>`,
			*b.CredentialToken,
		)
	}
	return body + "<p>See you there!</p>"
}
