package availability

import (
	"context"
	"fmt"
	"time"

	availabilityRepo "mindwell/database/repository/availability"
	scheduleRepo "mindwell/database/repository/schedule"
	"mindwell/models"
	"mindwell/utils"

	"go.uber.org/zap"
)

// Service regenerates the AVAILABLE slot set for the upcoming month while
// preserving TAKEN slots. Both operations are idempotent with respect to
// AVAILABLE slots and never touch TAKEN ones.
type Service interface {
	RegenerateForTherapist(ctx context.Context, therapistID string) (*models.RegenerationReport, error)
	RegenerateAll(ctx context.Context) (*models.RegenerationReport, error)
}

// DefaultAvailabilityService is the concrete implementation.
type DefaultAvailabilityService struct {
	Schedules scheduleRepo.ScheduleRepository
	Slots     availabilityRepo.AvailabilitySlotRepository

	// Now supplies the reference time the target window is derived from.
	// Left nil it falls back to time.Now; tests inject a fixed date.
	Now func() time.Time

	BatchSize int
	// Timeout bounds a whole run. Zero means no deadline beyond the caller's.
	Timeout time.Duration
}

func (s *DefaultAvailabilityService) referenceTime() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAvailabilityService) runContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout > 0 {
		return context.WithTimeout(ctx, s.Timeout)
	}
	return context.WithCancel(ctx)
}

// RegenerateForTherapist recomputes next month's AVAILABLE slots for one
// therapist. Returns ErrScheduleNotFound / ErrNoScheduleDays when the
// therapist has no usable configuration.
func (s *DefaultAvailabilityService) RegenerateForTherapist(ctx context.Context, therapistID string) (*models.RegenerationReport, error) {
	logger := utils.GetLogger()
	ctx, cancel := s.runContext(ctx)
	defer cancel()

	schedule, err := s.Schedules.GetByTherapistID(ctx, therapistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}
	if len(schedule.Days) == 0 {
		return nil, ErrNoScheduleDays
	}

	window := NextMonthWindow(s.referenceTime())
	therapistIDs := []string{therapistID}

	taken, err := s.Slots.FindTakenSlots(ctx, therapistIDs, window.StartDate(), window.EndDate())
	if err != nil {
		return nil, fmt.Errorf("failed to load taken slots: %w", err)
	}

	// Only AVAILABLE rows go; TAKEN reservations survive regeneration.
	if _, err := s.Slots.DeleteAvailableSlots(ctx, therapistIDs, window.StartDate(), window.EndDate()); err != nil {
		return nil, fmt.Errorf("failed to clear available slots: %w", err)
	}

	slots := generateSlots(*schedule, window, indexTaken(taken))
	if err := s.writeBatched(ctx, slots); err != nil {
		return nil, err
	}

	logger.Info("availability regenerated",
		zap.String("therapistId", therapistID),
		zap.String("window", window.String()),
		zap.Int("created", len(slots)),
		zap.Int("preservedTaken", len(taken)),
	)

	return &models.RegenerationReport{
		TherapistsProcessed: 1,
		Created:             len(slots),
		PreservedTaken:      len(taken),
	}, nil
}

// RegenerateAll recomputes next month's AVAILABLE slots for every therapist
// with a schedule. Schedules and TAKEN slots are loaded in one pass each so
// the run issues a constant number of queries regardless of therapist count.
// Therapists without day windows count as processed but contribute nothing.
func (s *DefaultAvailabilityService) RegenerateAll(ctx context.Context) (*models.RegenerationReport, error) {
	logger := utils.GetLogger()
	ctx, cancel := s.runContext(ctx)
	defer cancel()

	schedules, err := s.Schedules.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules: %w", err)
	}
	if len(schedules) == 0 {
		return &models.RegenerationReport{}, nil
	}

	window := NextMonthWindow(s.referenceTime())
	therapistIDs := make([]string, len(schedules))
	for i, schedule := range schedules {
		therapistIDs[i] = schedule.TherapistID
	}

	taken, err := s.Slots.FindTakenSlots(ctx, therapistIDs, window.StartDate(), window.EndDate())
	if err != nil {
		return nil, fmt.Errorf("failed to load taken slots: %w", err)
	}
	idx := indexTaken(taken)

	if _, err := s.Slots.DeleteAvailableSlots(ctx, therapistIDs, window.StartDate(), window.EndDate()); err != nil {
		return nil, fmt.Errorf("failed to clear available slots: %w", err)
	}

	var slots []models.AvailabilitySlot
	for _, schedule := range schedules {
		if len(schedule.Days) == 0 {
			continue
		}
		slots = append(slots, generateSlots(schedule, window, idx)...)
	}

	if err := s.writeBatched(ctx, slots); err != nil {
		return nil, err
	}

	logger.Info("bulk availability regeneration completed",
		zap.String("window", window.String()),
		zap.Int("therapistsProcessed", len(schedules)),
		zap.Int("created", len(slots)),
		zap.Int("preservedTaken", len(taken)),
	)

	return &models.RegenerationReport{
		TherapistsProcessed: len(schedules),
		Created:             len(slots),
		PreservedTaken:      len(taken),
	}, nil
}
