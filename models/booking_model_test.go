package models

import "testing"

func TestIsValidBookingStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{BookingStatusPending, true},
		{BookingStatusConfirmed, true},
		{BookingStatusCompleted, true},
		{BookingStatusCancelled, true},
		{"shipped", false},
		{"Pending", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidBookingStatus(tt.status); got != tt.want {
				t.Errorf("IsValidBookingStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
