package handlers_test

import (
	"bytes"
	"courier-route-service/internal/adapters/repositories"
	"courier-route-service/internal/api"
	"courier-route-service/internal/api/dto"
	"courier-route-service/internal/domain"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(records []domain.RawRecord) http.Handler {
	return api.NewRouter(repositories.NewStaticRecordSource(records), nil)
}

func postRoutes(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/routes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPlanRouteFromStoredRecords(t *testing.T) {
	h := newTestServer([]domain.RawRecord{
		{Customer: "Low Near", Latitude: "59.9150", Longitude: "10.7343", Priority: "LOW", WeightKg: "2"},
		{Customer: "High Far", Latitude: "59.9600", Longitude: "10.7343", Priority: "HIGH", WeightKg: "3"},
		{Customer: "Bad Row", Latitude: "62.0", Longitude: "11.5", Priority: "INVALID", WeightKg: "30"},
	})

	rec := postRoutes(t, h, dto.RouteRequest{TransportMode: "CAR", Criteria: "CHEAPEST"})
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RouteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))

	require.Equal(t, "CAR", res.TransportMode)
	require.Equal(t, "CHEAPEST", res.Criteria)
	require.Equal(t, 3, res.TotalRecords)
	require.Equal(t, 2, res.ValidCount)
	require.Equal(t, 1, res.RejectedCount)

	require.Len(t, res.Stops, 2)
	require.Equal(t, "High Far", res.Stops[0].Customer)
	require.Equal(t, 1, res.Stops[0].StopNumber)
	require.Equal(t, "Low Near", res.Stops[1].Customer)

	require.Len(t, res.Rejected, 1)
	require.Equal(t, "Bad Row", res.Rejected[0].Customer)
	require.NotEmpty(t, res.Rejected[0].Warnings)

	require.InDelta(t, res.TotalDistanceKm*4.0, res.TotalCostNOK, 1e-9)
	require.InDelta(t, res.TotalDistanceKm*120.0, res.TotalCO2Grams, 1e-9)
	require.InDelta(t, res.TotalDistanceKm/50.0, res.TotalTimeHours, 1e-9)
}

func TestPlanRouteInlineRecordsOverrideStore(t *testing.T) {
	h := newTestServer([]domain.RawRecord{
		{Customer: "Stored", Latitude: "59.9150", Longitude: "10.7400", Priority: "LOW", WeightKg: "2"},
	})

	rec := postRoutes(t, h, dto.RouteRequest{
		TransportMode: "bicycle",
		Records: []dto.RecordPayload{
			{Customer: "Inline", Latitude: "59.9200", Longitude: "10.7500", Priority: "MEDIUM", WeightKg: "1"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RouteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))

	require.Len(t, res.Stops, 1)
	require.Equal(t, "Inline", res.Stops[0].Customer)
	require.Equal(t, "BICYCLE", res.TransportMode)
	// Criteria defaults to FASTEST when omitted.
	require.Equal(t, "FASTEST", res.Criteria)
	require.Zero(t, res.TotalCostNOK)
}

func TestPlanRouteEmptyBatch(t *testing.T) {
	h := newTestServer(nil)

	rec := postRoutes(t, h, dto.RouteRequest{TransportMode: "WALKING", Criteria: "GREENEST"})
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RouteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))

	require.Empty(t, res.Stops)
	require.Zero(t, res.TotalDistanceKm)
	require.Zero(t, res.TotalTimeHours)
}

func TestPlanRouteRejectsBadInput(t *testing.T) {
	h := newTestServer(nil)

	rec := postRoutes(t, h, dto.RouteRequest{TransportMode: "PLANE"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postRoutes(t, h, dto.RouteRequest{Criteria: "FASTEST"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postRoutes(t, h, dto.RouteRequest{TransportMode: "CAR", Criteria: "SHORTEST"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postRoutes(t, h, map[string]any{"transport_mode": "CAR", "unexpected": true})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanRouteMethodNotAllowed(t *testing.T) {
	h := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestListDeliveries(t *testing.T) {
	h := newTestServer([]domain.RawRecord{
		{Customer: "A", Latitude: "59.9", Longitude: "10.7", Priority: "HIGH", WeightKg: "1"},
	})

	req := httptest.NewRequest(http.MethodGet, "/deliveries", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListDeliveriesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Len(t, res.Records, 1)
	require.Equal(t, "A", res.Records[0].Customer)
}

func TestHealth(t *testing.T) {
	h := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
