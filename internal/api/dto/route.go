package dto

type RouteRequest struct {
	TransportMode string          `json:"transport_mode"`
	Criteria      string          `json:"criteria"`
	Records       []RecordPayload `json:"records"`
}

type RecordPayload struct {
	Customer  string `json:"customer"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Priority  string `json:"priority"`
	WeightKg  string `json:"weight_kg"`
}

type RouteStopResponse struct {
	StopNumber           int     `json:"stop_number"`
	Customer             string  `json:"customer"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Priority             string  `json:"priority"`
	WeightKg             float64 `json:"weight_kg"`
	DistanceKm           float64 `json:"distance_km"`
	CumulativeDistanceKm float64 `json:"cumulative_distance_km"`
	ETAHours             float64 `json:"eta_hours"`
	CostNOK              float64 `json:"cost_nok"`
	CO2Grams             float64 `json:"co2_grams"`
}

type RejectionResponse struct {
	Customer  string   `json:"customer"`
	Latitude  string   `json:"latitude"`
	Longitude string   `json:"longitude"`
	Priority  string   `json:"priority"`
	WeightKg  string   `json:"weight_kg"`
	Warnings  []string `json:"warnings"`
}

type RouteResponse struct {
	TransportMode   string              `json:"transport_mode"`
	Criteria        string              `json:"criteria"`
	Stops           []RouteStopResponse `json:"stops"`
	TotalDistanceKm float64             `json:"total_distance_km"`
	TotalTimeHours  float64             `json:"total_time_hours"`
	TotalCostNOK    float64             `json:"total_cost_nok"`
	TotalCO2Grams   float64             `json:"total_co2_grams"`
	TotalRecords    int                 `json:"total_records"`
	ValidCount      int                 `json:"valid_count"`
	RejectedCount   int                 `json:"rejected_count"`
	Rejected        []RejectionResponse `json:"rejected"`
}
