package schedule

import (
	"context"
	"fmt"
	"time"

	scheduleRepo "mindwell/database/repository/schedule"
	therapistRepo "mindwell/database/repository/therapist"
	"mindwell/models"
	"mindwell/utils"

	"go.uber.org/zap"
)

// RegenerationEnqueuer schedules a deferred availability regeneration after
// a configuration change. The delay gives the write time to commit before
// the worker reads it back.
type RegenerationEnqueuer interface {
	EnqueueTherapistRegeneration(ctx context.Context, therapistID string, delay time.Duration) error
}

// regenerationDelay matches the source platform's post-edit trigger delay.
const regenerationDelay = 5 * time.Second

// Service is the therapist self-service surface for weekly schedules.
type Service interface {
	Upsert(ctx context.Context, userID string, req models.UpsertScheduleRequest) (*models.WeeklySchedule, error)
	Get(ctx context.Context, userID string) (*models.WeeklySchedule, error)
	ReplaceDays(ctx context.Context, userID, scheduleID string, req models.ReplaceDaysRequest) error
}

// DefaultScheduleService is the concrete implementation.
type DefaultScheduleService struct {
	Therapists therapistRepo.TherapistRepository
	Schedules  scheduleRepo.ScheduleRepository
	Enqueuer   RegenerationEnqueuer
}

func (s *DefaultScheduleService) therapistFor(ctx context.Context, userID string) (*models.Therapist, error) {
	therapist, err := s.Therapists.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapist: %w", err)
	}
	if therapist == nil {
		return nil, ErrTherapistNotFound
	}
	return therapist, nil
}

// Upsert creates or updates the therapist's schedule. Fields missing from
// the request keep their stored values; on first write the platform
// defaults apply.
func (s *DefaultScheduleService) Upsert(ctx context.Context, userID string, req models.UpsertScheduleRequest) (*models.WeeklySchedule, error) {
	therapist, err := s.therapistFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Schedules.GetByTherapistID(ctx, therapist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	duration := models.DefaultAppointmentDuration
	maxPerDay := models.DefaultMaxPerDay
	if existing != nil {
		duration = existing.AppointmentDuration
		maxPerDay = existing.MaxPerDay
	}
	if req.AppointmentDuration != nil {
		duration = *req.AppointmentDuration
	}
	if req.MaxPerDay != nil {
		maxPerDay = *req.MaxPerDay
	}

	if duration < models.MinAppointmentDuration || duration > models.MaxAppointmentDuration {
		return nil, invalidConfig("appointmentDuration", "must be between %d and %d minutes",
			models.MinAppointmentDuration, models.MaxAppointmentDuration)
	}
	if maxPerDay < models.MinAppointmentsPerDay || maxPerDay > models.MaxAppointmentsPerDay {
		return nil, invalidConfig("maxPerDay", "must be between %d and %d",
			models.MinAppointmentsPerDay, models.MaxAppointmentsPerDay)
	}

	schedule := &models.WeeklySchedule{
		TherapistID:         therapist.ID,
		AppointmentDuration: duration,
		MaxPerDay:           maxPerDay,
	}
	if existing != nil {
		schedule.ID = existing.ID
		schedule.Days = existing.Days
	}

	if err := s.Schedules.Upsert(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to save schedule: %w", err)
	}
	return schedule, nil
}

// Get returns the therapist's schedule with its day windows, or nil when the
// therapist has not configured one yet.
func (s *DefaultScheduleService) Get(ctx context.Context, userID string) (*models.WeeklySchedule, error) {
	therapist, err := s.therapistFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	schedule, err := s.Schedules.GetByTherapistID(ctx, therapist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	return schedule, nil
}

// ReplaceDays swaps the schedule's full day-window set after validating every
// window, then enqueues a delayed regeneration for the therapist.
func (s *DefaultScheduleService) ReplaceDays(ctx context.Context, userID, scheduleID string, req models.ReplaceDaysRequest) error {
	logger := utils.GetLogger()

	therapist, err := s.therapistFor(ctx, userID)
	if err != nil {
		return err
	}

	schedule, err := s.Schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	if schedule == nil || schedule.TherapistID != therapist.ID {
		return ErrScheduleNotFound
	}

	days, err := validateDays(req.Days)
	if err != nil {
		return err
	}

	if err := s.Schedules.ReplaceDays(ctx, scheduleID, days); err != nil {
		return fmt.Errorf("failed to save schedule days: %w", err)
	}

	if err := s.Enqueuer.EnqueueTherapistRegeneration(ctx, therapist.ID, regenerationDelay); err != nil {
		// The nightly bulk run will still pick the change up.
		logger.Warn("failed to enqueue availability regeneration",
			zap.String("therapistId", therapist.ID), zap.Error(err))
	}

	return nil
}

// validateDays normalizes day-window input to stored form ("HH:MM:SS") and
// rejects malformed or inverted windows.
func validateDays(inputs []models.ScheduleDayInput) ([]models.ScheduleDay, error) {
	if len(inputs) == 0 || len(inputs) > 7 {
		return nil, invalidConfig("days", "must contain between 1 and 7 entries")
	}

	days := make([]models.ScheduleDay, 0, len(inputs))
	seen := make(map[int]bool, len(inputs))
	for i, in := range inputs {
		if in.Weekday < 0 || in.Weekday > 6 {
			return nil, invalidConfig("weekday", "entry %d: must be 0..6", i+1)
		}
		if seen[in.Weekday] {
			return nil, invalidConfig("weekday", "entry %d: duplicate weekday %d", i+1, in.Weekday)
		}
		seen[in.Weekday] = true

		start, err := utils.NormalizeClock(in.StartHour)
		if err != nil {
			return nil, invalidConfig("startHour", "entry %d: %v", i+1, err)
		}
		end, err := utils.NormalizeClock(in.EndHour)
		if err != nil {
			return nil, invalidConfig("endHour", "entry %d: %v", i+1, err)
		}
		if start >= end {
			return nil, invalidConfig("endHour", "entry %d: startHour must be earlier than endHour", i+1)
		}

		days = append(days, models.ScheduleDay{
			Weekday:   in.Weekday,
			StartHour: start,
			EndHour:   end,
		})
	}
	return days, nil
}
