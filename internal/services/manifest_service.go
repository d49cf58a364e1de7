package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/mark1um/bus-seat-manage-api/internal/domain/models"
	"github.com/mark1um/bus-seat-manage-api/internal/metrics"
	"github.com/mark1um/bus-seat-manage-api/internal/utils"
)

// Manifest geometry in points. Rows are never paginated.
const (
	manifestTitleY   = 50.0
	manifestTableTop = 100.0
	manifestRowStep  = 20.0
	manifestFont     = "Helvetica"
)

var manifestColumns = [...]struct {
	Header string
	X      float64
}{
	{"Name", 50},
	{"CPF", 250},
	{"Seat", 400},
	{"Paid", 480},
}

// ManifestService renders the passenger list of a trip as PDF.
type ManifestService struct {
	Trips      TripStore
	Passengers PassengerStore
	RequestID  string
}

// manifestText is one positioned string of the document.
type manifestText struct {
	X, Y     float64
	Text     string
	Style    string
	Size     float64
	Centered bool
}

// Generate loads the trip and renders the whole document in memory. Nothing
// is returned unless rendering completed.
func (s ManifestService) Generate(ctx context.Context, tripID string) ([]byte, string, error) {
	trip, err := s.Trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, "", err
	}
	passengers, err := s.Passengers.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, "", err
	}

	pdf, err := renderManifest(manifestLayout(trip, passengers))
	if err != nil {
		metrics.ManifestsRendered.WithLabelValues("error").Inc()
		return nil, "", err
	}
	metrics.ManifestsRendered.WithLabelValues("ok").Inc()
	utils.LogEvent(s.RequestID, "manifest", "generate", fmt.Sprintf("trip_id=%s passengers=%d bytes=%d", tripID, len(passengers), len(pdf)))
	return pdf, ManifestFilename(tripID), nil
}

// ManifestFilename is the attachment name for a trip manifest.
func ManifestFilename(tripID string) string {
	return fmt.Sprintf("passageiros_%s.pdf", tripID)
}

func manifestTitle(destination string) string {
	return "Passengers for trip to " + destination
}

func manifestRowY(index int) float64 {
	return manifestTableTop + float64(index+2)*manifestRowStep
}

func paidLabel(hasPaid bool) string {
	if hasPaid {
		return "Sim"
	}
	return "Não"
}

// manifestLayout computes every text command: the title, the header row at
// tableTop+20 and one row per passenger at tableTop+(i+2)*20.
func manifestLayout(trip models.Trip, passengers []models.Passenger) []manifestText {
	out := make([]manifestText, 0, 1+len(manifestColumns)*(len(passengers)+1))
	out = append(out, manifestText{
		Y:        manifestTitleY,
		Text:     manifestTitle(trip.Destination),
		Style:    "B",
		Size:     20,
		Centered: true,
	})

	headerY := manifestTableTop + manifestRowStep
	for _, col := range manifestColumns {
		out = append(out, manifestText{X: col.X, Y: headerY, Text: col.Header, Style: "B", Size: 12})
	}

	for i, p := range passengers {
		y := manifestRowY(i)
		cells := [...]string{p.Name, p.CPF, p.SeatNumber, paidLabel(p.HasPaid)}
		for c, col := range manifestColumns {
			out = append(out, manifestText{X: col.X, Y: y, Text: cells[c], Size: 10})
		}
	}
	return out
}

func renderManifest(layout []manifestText) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	if len(layout) > 0 {
		pdf.SetTitle(layout[0].Text, true)
	}
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	for _, t := range layout {
		pdf.SetFont(manifestFont, t.Style, t.Size)
		text := tr(t.Text)
		x := t.X
		if t.Centered {
			x = (pageW - pdf.GetStringWidth(text)) / 2
		}
		pdf.Text(x, t.Y, text)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
