package mailer

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"panditji-api/models"
)

var ErrNotConfigured = errors.New("smtp is not configured")

// Mailer sends operator notification mail over SMTP.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

func New(host string, port int, username, password, from, to string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
	}
}

// SendBookingNotification mails the booking summary to the operator
// address. Callers treat a failure as best-effort: log it, keep the
// booking.
func (m *Mailer) SendBookingNotification(b models.Booking) error {
	if m.host == "" || m.to == "" {
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", BookingSubject(b))
	msg.SetBody("text/plain", BookingBody(b))

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return d.DialAndSend(msg)
}

func BookingSubject(b models.Booking) string {
	return fmt.Sprintf("New booking: %s on %s", b.PujaName, b.Date)
}

// BookingBody renders the plain-text booking summary.
func BookingBody(b models.Booking) string {
	var sb strings.Builder
	sb.WriteString("A new booking has been received.\n\n")
	fmt.Fprintf(&sb, "Puja: %s\n", b.PujaName)
	fmt.Fprintf(&sb, "Date: %s\n", b.Date)
	if b.BookingTime != "" {
		fmt.Fprintf(&sb, "Time: %s\n", b.BookingTime)
	}
	if b.Japa != "" {
		fmt.Fprintf(&sb, "Japa: %s\n", b.Japa)
	}
	fmt.Fprintf(&sb, "Quantity: %d\n", b.Quantity)
	fmt.Fprintf(&sb, "Total: %.2f\n\n", b.TotalPrice)
	fmt.Fprintf(&sb, "Customer: %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "Email: %s\n", b.CustomerEmail)
	fmt.Fprintf(&sb, "Phone: %s\n", b.CustomerPhone)
	if b.CustomerAddress != "" {
		fmt.Fprintf(&sb, "Address: %s\n", b.CustomerAddress)
	}
	return sb.String()
}
