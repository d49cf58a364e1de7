package domain

import "testing"

func TestBusTypeCapacity(t *testing.T) {
	cases := map[BusType]int{
		BusSmall:  20,
		BusMedium: 30,
		BusLarge:  50,
		"double":  0,
	}
	for b, want := range cases {
		if got := b.Capacity(); got != want {
			t.Fatalf("%q capacity: got %d want %d", b, got, want)
		}
	}
	if BusType("double").Valid() {
		t.Fatalf("unknown bus type reported valid")
	}
	if len(BusTypes()) != 3 {
		t.Fatalf("expected 3 bus types, got %v", BusTypes())
	}
}

func TestNewSeatsInfoOverbooked(t *testing.T) {
	full := NewSeatsInfo(BusMedium, 30)
	if full.TotalSeats != 30 || full.OccupiedSeats != 30 || full.AvailableSeats != 0 {
		t.Fatalf("unexpected full trip seats: %+v", full)
	}

	over := NewSeatsInfo(BusMedium, 31)
	if over.AvailableSeats != -1 {
		t.Fatalf("overbooked trip should go negative, got %d", over.AvailableSeats)
	}
}
