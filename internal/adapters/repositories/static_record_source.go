package repositories

import (
	"context"
	"courier-route-service/internal/domain"
)

// In-memory implementation of the RecordSource port, for inline request
// payloads and tests.
type StaticRecordSource struct{ Records []domain.RawRecord }

func NewStaticRecordSource(records []domain.RawRecord) *StaticRecordSource {
	return &StaticRecordSource{Records: records}
}

func (s *StaticRecordSource) ListRecords(ctx context.Context) ([]domain.RawRecord, error) {
	out := make([]domain.RawRecord, len(s.Records))
	copy(out, s.Records)
	return out, nil
}
