package handlers

import (
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/ports"
	"log"
	"net/http"
)

// DeliveryHandler exposes read-only access to the stored raw records.
type DeliveryHandler struct {
	Source ports.RecordSource
}

func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := h.Source.ListRecords(r.Context())
	if err != nil {
		log.Printf("list deliveries failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListDeliveriesResponse{
		Records: make([]dto.RecordPayload, 0, len(records)),
	}
	for _, rec := range records {
		res.Records = append(res.Records, dto.RecordPayload{
			Customer:  rec.Customer,
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
			Priority:  rec.Priority,
			WeightKg:  rec.WeightKg,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
