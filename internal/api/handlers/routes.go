package handlers

import (
	"courier-route-service/internal/adapters/repositories"
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/platform/obs"
	"courier-route-service/internal/ports"
	"courier-route-service/internal/services"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
)

type RouteHandler struct {
	Source ports.RecordSource
	// Optional: when set, route.csv/rejected.csv artifacts are written after
	// each successful run.
	Writer ports.ResultWriter
}

// Plan orchestrates validation and route construction for one batch.
// Records may come inline with the request; otherwise the stored batch is used.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	mode := strings.TrimSpace(req.TransportMode)
	if mode == "" {
		writeError(w, r, http.StatusBadRequest, "transport_mode is required")
		return
	}
	if _, err := domain.ProfileFor(mode); err != nil {
		writeError(w, r, http.StatusBadRequest, "transport_mode must be one of CAR, BICYCLE, WALKING")
		return
	}

	criteria := strings.TrimSpace(req.Criteria)
	if criteria == "" {
		criteria = string(domain.CriteriaFastest)
	}
	if _, err := domain.CriteriaFor(criteria); err != nil {
		writeError(w, r, http.StatusBadRequest, "criteria must be one of FASTEST, CHEAPEST, GREENEST")
		return
	}

	source := h.Source
	if len(req.Records) > 0 {
		records := make([]domain.RawRecord, 0, len(req.Records))
		for _, rec := range req.Records {
			records = append(records, domain.RawRecord{
				Customer:  rec.Customer,
				Latitude:  rec.Latitude,
				Longitude: rec.Longitude,
				Priority:  rec.Priority,
				WeightKg:  rec.WeightKg,
			})
		}
		source = repositories.NewStaticRecordSource(records)
	}

	svcReq := services.OptimizeRequest{
		TransportMode: mode,
		Criteria:      criteria,
	}

	var err error
	defer obs.Time(r.Context(), "optimize_deliveries")(&err)

	result, err := services.OptimizeDeliveries(r.Context(), svcReq, source)
	if err != nil {
		log.Printf("optimize deliveries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// Artifact writing is reporting, not planning: a failed write is logged
	// and the response still carries the full result.
	if h.Writer != nil {
		if werr := h.Writer.WriteRoute(result.Plan); werr != nil {
			log.Printf("write route artifact failed: %v", werr)
		}
		if werr := h.Writer.WriteRejected(result.Rejections); werr != nil {
			log.Printf("write rejected artifact failed: %v", werr)
		}
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(result))
}

func toRouteResponse(result *services.ResultSet) dto.RouteResponse {
	plan := result.Plan

	stops := make([]dto.RouteStopResponse, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		stops = append(stops, dto.RouteStopResponse{
			StopNumber:           s.StopNumber,
			Customer:             s.Delivery.Customer,
			Latitude:             s.Delivery.Coordinate.Lat,
			Longitude:            s.Delivery.Coordinate.Lon,
			Priority:             string(s.Delivery.Priority),
			WeightKg:             s.Delivery.WeightKg,
			DistanceKm:           s.DistanceKm,
			CumulativeDistanceKm: s.CumulativeDistanceKm,
			ETAHours:             s.ETAHours,
			CostNOK:              s.CostNOK,
			CO2Grams:             s.CO2Grams,
		})
	}

	rejected := make([]dto.RejectionResponse, 0, len(result.Rejections))
	for _, rej := range result.Rejections {
		rejected = append(rejected, dto.RejectionResponse{
			Customer:  rej.Record.Customer,
			Latitude:  rej.Record.Latitude,
			Longitude: rej.Record.Longitude,
			Priority:  rej.Record.Priority,
			WeightKg:  rej.Record.WeightKg,
			Warnings:  rej.Warnings,
		})
	}

	return dto.RouteResponse{
		TransportMode:   string(plan.Mode),
		Criteria:        string(plan.Criteria),
		Stops:           stops,
		TotalDistanceKm: plan.TotalDistanceKm,
		TotalTimeHours:  plan.TotalTimeHours,
		TotalCostNOK:    plan.TotalCostNOK,
		TotalCO2Grams:   plan.TotalCO2Grams,
		TotalRecords:    result.TotalRecords,
		ValidCount:      result.ValidCount,
		RejectedCount:   len(result.Rejections),
		Rejected:        rejected,
	}
}
