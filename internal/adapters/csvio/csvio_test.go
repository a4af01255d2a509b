package csvio

import (
	"context"
	"courier-route-service/internal/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileRecordSourceReadsRowsVerbatim(t *testing.T) {
	path := writeFile(t, "deliveries.csv",
		"customer,latitude,longitude,priority,weight_kg\n"+
			"Kairo Juan,59.9139,10.7522,HIGH,15.5\n"+
			"Broken Row,not-a-number,10.75,LOW,3\n")

	records, err := NewFileRecordSource(path).ListRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Customer != "Kairo Juan" || records[0].WeightKg != "15.5" {
		t.Errorf("record 0 = %+v", records[0])
	}
	// Field content is passed through untouched; typing is not the reader's job.
	if records[1].Latitude != "not-a-number" {
		t.Errorf("record 1 latitude = %q", records[1].Latitude)
	}
}

func TestFileRecordSourceShortRowsPadEmpty(t *testing.T) {
	path := writeFile(t, "deliveries.csv",
		"customer,latitude,longitude,priority,weight_kg\n"+
			"Only Name\n")

	records, err := NewFileRecordSource(path).ListRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Customer != "Only Name" || records[0].Latitude != "" || records[0].WeightKg != "" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestFileRecordSourceRejectsBadHeader(t *testing.T) {
	path := writeFile(t, "deliveries.csv",
		"name,lat,lon,prio,kg\nA,59.9,10.7,HIGH,1\n")

	if _, err := NewFileRecordSource(path).ListRecords(context.Background()); err == nil {
		t.Fatal("expected header error")
	}
}

func TestFileRecordSourceEmptyFile(t *testing.T) {
	path := writeFile(t, "deliveries.csv", "")

	records, err := NewFileRecordSource(path).ListRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("records = %d, want 0", len(records))
	}
}

func TestFileResultWriterArtifacts(t *testing.T) {
	dir := t.TempDir()
	routePath := filepath.Join(dir, "route.csv")
	rejectedPath := filepath.Join(dir, "rejected.csv")

	plan := &domain.RoutePlan{
		Mode:     domain.ModeCar,
		Criteria: domain.CriteriaCheapest,
		Stops: []domain.RouteStop{
			{
				StopNumber: 1,
				Delivery: domain.Delivery{
					Customer:   "Kairo Juan",
					Coordinate: domain.Coordinates{Lat: 59.9139, Lon: 10.7522},
					Priority:   domain.PriorityHigh,
					WeightKg:   15.5,
				},
				DistanceKm:           1.044,
				CumulativeDistanceKm: 1.044,
				ETAHours:             0.0209,
				CostNOK:              4.176,
				CO2Grams:             125.28,
			},
		},
		TotalDistanceKm: 1.044,
		TotalTimeHours:  0.0209,
		TotalCostNOK:    4.176,
		TotalCO2Grams:   125.28,
	}

	rejections := []domain.Rejection{
		{
			Record: domain.RawRecord{
				Customer: "Isaac Rey", Latitude: "62.0", Longitude: "11.5", Priority: "INVALID", WeightKg: "30.0",
			},
			Warnings: []string{"bad latitude", "bad priority"},
		},
	}

	w := NewFileResultWriter(routePath, rejectedPath)
	if err := w.WriteRoute(plan); err != nil {
		t.Fatalf("write route: %v", err)
	}
	if err := w.WriteRejected(rejections); err != nil {
		t.Fatalf("write rejected: %v", err)
	}

	routeBytes, err := os.ReadFile(routePath)
	if err != nil {
		t.Fatalf("read route.csv: %v", err)
	}
	route := string(routeBytes)
	for _, want := range []string{"stop_number", "Kairo Juan", "1.04", "TOTAL", "CAR", "CHEAPEST"} {
		if !strings.Contains(route, want) {
			t.Errorf("route.csv missing %q:\n%s", want, route)
		}
	}

	rejectedBytes, err := os.ReadFile(rejectedPath)
	if err != nil {
		t.Fatalf("read rejected.csv: %v", err)
	}
	rejected := string(rejectedBytes)
	if !strings.Contains(rejected, "Isaac Rey") {
		t.Errorf("rejected.csv missing original record:\n%s", rejected)
	}
	if !strings.Contains(rejected, "bad latitude | bad priority") {
		t.Errorf("rejected.csv warnings not pipe-joined:\n%s", rejected)
	}
}
