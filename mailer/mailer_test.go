package mailer

import (
	"errors"
	"strings"
	"testing"

	"panditji-api/models"
)

func sampleBooking() models.Booking {
	return models.Booking{
		PujaName:      "Satyanarayan Puja",
		CustomerName:  "Ramesh Sharma",
		CustomerEmail: "ramesh@example.com",
		CustomerPhone: "+91 98765 43210",
		Date:          "2026-09-15",
		BookingTime:   "10:00 AM",
		Japa:          "11 Mala",
		Quantity:      1,
		TotalPrice:    5100,
	}
}

func TestBookingBody(t *testing.T) {
	body := BookingBody(sampleBooking())

	for _, want := range []string{
		"Satyanarayan Puja",
		"2026-09-15",
		"10:00 AM",
		"11 Mala",
		"5100.00",
		"Ramesh Sharma",
		"ramesh@example.com",
		"+91 98765 43210",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestBookingBodyOmitsEmptyOptionalFields(t *testing.T) {
	b := sampleBooking()
	b.BookingTime = ""
	b.Japa = ""
	b.CustomerAddress = ""

	body := BookingBody(b)
	for _, label := range []string{"Time:", "Japa:", "Address:"} {
		if strings.Contains(body, label) {
			t.Errorf("body should omit %q when empty:\n%s", label, body)
		}
	}
}

func TestBookingSubject(t *testing.T) {
	got := BookingSubject(sampleBooking())
	want := "New booking: Satyanarayan Puja on 2026-09-15"
	if got != want {
		t.Errorf("subject = %q, want %q", got, want)
	}
}

func TestSendBookingNotificationNotConfigured(t *testing.T) {
	tests := []struct {
		name string
		m    *Mailer
	}{
		{"no host", New("", 587, "", "", "from@example.com", "ops@example.com")},
		{"no recipient", New("smtp.example.com", 587, "", "", "from@example.com", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.SendBookingNotification(sampleBooking())
			if !errors.Is(err, ErrNotConfigured) {
				t.Errorf("err = %v, want ErrNotConfigured", err)
			}
		})
	}
}
