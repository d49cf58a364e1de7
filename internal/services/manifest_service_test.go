package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/mark1um/bus-seat-manage-api/internal/domain"
	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
)

func TestManifestLayoutEmptyTrip(t *testing.T) {
	layout := manifestLayout(models.Trip{Destination: "Rio"}, nil)

	if len(layout) != 1+len(manifestColumns) {
		t.Fatalf("expected title and header only, got %d entries", len(layout))
	}
	title := layout[0]
	if title.Text != "Passengers for trip to Rio" || !title.Centered || title.Y != 50 || title.Size != 20 {
		t.Fatalf("unexpected title: %+v", title)
	}
	for i, h := range layout[1:] {
		if h.Y != 120 || h.Style != "B" || h.Text != manifestColumns[i].Header || h.X != manifestColumns[i].X {
			t.Fatalf("unexpected header cell %d: %+v", i, h)
		}
	}
}

func TestManifestLayoutRows(t *testing.T) {
	passengers := []models.Passenger{
		{Name: "Ana", CPF: "111", SeatNumber: "1", HasPaid: true},
		{Name: "Bruno", CPF: "222", SeatNumber: "2", HasPaid: false},
	}
	layout := manifestLayout(models.Trip{Destination: "Rio"}, passengers)

	rows := layout[1+len(manifestColumns):]
	if len(rows) != 2*len(manifestColumns) {
		t.Fatalf("expected %d row cells, got %d", 2*len(manifestColumns), len(rows))
	}

	first, second := rows[:4], rows[4:]
	if first[0].Y != 140 || second[0].Y != 160 {
		t.Fatalf("unexpected row offsets: %v, %v", first[0].Y, second[0].Y)
	}
	if first[0].Text != "Ana" || first[1].Text != "111" || first[2].Text != "1" || first[3].Text != "Sim" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if second[3].Text != "Não" {
		t.Fatalf("unpaid label: got %q", second[3].Text)
	}
}

func TestManifestGenerate(t *testing.T) {
	ctx := context.Background()
	db, trips, passengers := newTripFixture()
	trip, _ := trips.CreateTrip(ctx, models.TripInput{Destination: "São Paulo", BusType: domain.BusLarge})
	if _, err := passengers.AddPassenger(ctx, trip.ID, models.PassengerInput{Name: "João", CPF: "111", SeatNumber: "1"}); err != nil {
		t.Fatalf("AddPassenger returned error: %v", err)
	}

	svc := ManifestService{Trips: memTrips{db}, Passengers: memPassengers{db}}
	pdf, filename, err := svc.Generate(ctx, trip.ID)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF document")
	}
	if filename != "passageiros_"+trip.ID+".pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestManifestGenerateMissingTrip(t *testing.T) {
	db := newMemDB()
	svc := ManifestService{Trips: memTrips{db}, Passengers: memPassengers{db}}

	pdf, _, err := svc.Generate(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if pdf != nil {
		t.Fatalf("no document expected for a missing trip")
	}
}
