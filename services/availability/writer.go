package availability

import (
	"context"
	"fmt"

	"mindwell/models"
)

// DefaultBatchSize caps one insert batch so a large month's worth of slots
// never hits store parameter limits in a single call.
const DefaultBatchSize = 500

// writeBatched inserts slots in fixed-size chunks. Batches already written
// stay committed when a later batch fails; a re-run picks the work back up
// because regeneration is idempotent over AVAILABLE slots.
func (s *DefaultAvailabilityService) writeBatched(ctx context.Context, slots []models.AvailabilitySlot) error {
	size := s.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	for i := 0; i < len(slots); i += size {
		end := min(i+size, len(slots))
		if err := s.Slots.InsertSlots(ctx, slots[i:end]); err != nil {
			return fmt.Errorf("failed to insert slot batch at offset %d: %w", i, err)
		}
	}
	return nil
}
