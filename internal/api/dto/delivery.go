package dto

type ListDeliveriesResponse struct {
	Records []RecordPayload `json:"records"`
}
