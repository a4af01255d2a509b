package domain

// Represents a single stop in a planned route.
// DistanceKm, CostNOK and CO2Grams are per-leg figures measured from the
// previous stop (the depot for the first stop); CumulativeDistanceKm and
// ETAHours run from the depot. Never mutated after construction.
type RouteStop struct {
	StopNumber           int
	Delivery             Delivery
	DistanceKm           float64
	CumulativeDistanceKm float64
	ETAHours             float64
	CostNOK              float64
	CO2Grams             float64
}

// Represents the planned route for a single run.
// A RoutePlan is the output of the route builder and describes the ordered
// sequence of stops along with aggregate distance, time, cost and emission
// metrics. It is immutable planning data and contains no side effects.
type RoutePlan struct {
	Mode            TransportMode
	Criteria        Criteria
	Stops           []RouteStop
	TotalDistanceKm float64
	TotalTimeHours  float64
	TotalCostNOK    float64
	TotalCO2Grams   float64
}
