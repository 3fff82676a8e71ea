package model

import "testing"

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusConverted,
		BookingStatusCompleted, BookingStatusCancelled,
	} {
		if !s.Valid() {
			t.Errorf("%s 应为合法状态", s)
		}
	}
	if BookingStatus("unknown").Valid() {
		t.Error("unknown 不应为合法状态")
	}
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusConverted, false},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusConverted, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusConverted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusPending, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s→%s：期望 %v，实际 %v", c.from, c.to, c.want, got)
		}
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	terminal := map[BookingStatus]bool{
		BookingStatusPending:   false,
		BookingStatusConfirmed: false,
		BookingStatusConverted: true,
		BookingStatusCompleted: true,
		BookingStatusCancelled: true,
	}
	for s, want := range terminal {
		if got := s.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal()：期望 %v，实际 %v", s, want, got)
		}
	}
}
