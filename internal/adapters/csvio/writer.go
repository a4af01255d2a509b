package csvio

import (
	"courier-route-service/internal/domain"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CSV-file implementation of the ResultWriter port, producing the route and
// rejected artifacts of one run. Numeric formatting (2-decimal rounding) is a
// concern of this writer, not of the planning core.
type FileResultWriter struct {
	RoutePath    string
	RejectedPath string
}

func NewFileResultWriter(routePath, rejectedPath string) *FileResultWriter {
	return &FileResultWriter{RoutePath: routePath, RejectedPath: rejectedPath}
}

// Write one row per stop plus a trailing totals row.
func (w *FileResultWriter) WriteRoute(plan *domain.RoutePlan) error {
	rows := [][]string{{
		"stop_number", "customer", "latitude", "longitude", "priority", "weight_kg",
		"distance_km", "cumulative_distance_km", "eta_hours", "cost_nok", "co2_grams",
	}}

	for _, s := range plan.Stops {
		rows = append(rows, []string{
			strconv.Itoa(s.StopNumber),
			s.Delivery.Customer,
			fmt.Sprintf("%.4f", s.Delivery.Coordinate.Lat),
			fmt.Sprintf("%.4f", s.Delivery.Coordinate.Lon),
			string(s.Delivery.Priority),
			fmt.Sprintf("%.1f", s.Delivery.WeightKg),
			fmt.Sprintf("%.2f", s.DistanceKm),
			fmt.Sprintf("%.2f", s.CumulativeDistanceKm),
			fmt.Sprintf("%.2f", s.ETAHours),
			fmt.Sprintf("%.2f", s.CostNOK),
			fmt.Sprintf("%.2f", s.CO2Grams),
		})
	}

	rows = append(rows, []string{
		"TOTAL", string(plan.Mode), "", "", string(plan.Criteria), "",
		fmt.Sprintf("%.2f", plan.TotalDistanceKm),
		fmt.Sprintf("%.2f", plan.TotalDistanceKm),
		fmt.Sprintf("%.2f", plan.TotalTimeHours),
		fmt.Sprintf("%.2f", plan.TotalCostNOK),
		fmt.Sprintf("%.2f", plan.TotalCO2Grams),
	})

	if err := writeAll(w.RoutePath, rows); err != nil {
		return fmt.Errorf("write route: %w", err)
	}
	return nil
}

// Write every rejected record verbatim with its warnings pipe-joined.
func (w *FileResultWriter) WriteRejected(rejections []domain.Rejection) error {
	rows := [][]string{{
		"customer", "latitude", "longitude", "priority", "weight_kg", "warnings",
	}}

	for _, rej := range rejections {
		rows = append(rows, []string{
			rej.Record.Customer,
			rej.Record.Latitude,
			rej.Record.Longitude,
			rej.Record.Priority,
			rej.Record.WeightKg,
			strings.Join(rej.Warnings, " | "),
		})
	}

	if err := writeAll(w.RejectedPath, rows); err != nil {
		return fmt.Errorf("write rejected: %w", err)
	}
	return nil
}

func writeAll(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}

	return f.Close()
}
