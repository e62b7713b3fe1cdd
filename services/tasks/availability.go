package tasks

import (
	"context"
	"encoding/json"
	"time"

	"mindwell/config"

	"github.com/hibiken/asynq"
)

const (
	TypeRegenerateTherapist = "availability:regenerate"
	TypeRegenerateAll       = "availability:regenerate_all"
)

// RegeneratePayload carries the therapist for a single regeneration task.
type RegeneratePayload struct {
	TherapistID string `json:"therapistId"`
}

// NewRegenerateTherapistTask builds a delayed per-therapist regeneration task.
func NewRegenerateTherapistTask(therapistID string, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(RegeneratePayload{TherapistID: therapistID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeRegenerateTherapist, b)
	opts := []asynq.Option{asynq.ProcessIn(delay), asynq.MaxRetry(3)}

	return task, opts, nil
}

// NewRegenerateAllTask builds the bulk regeneration task the nightly
// schedule enqueues.
func NewRegenerateAllTask() *asynq.Task {
	return asynq.NewTask(TypeRegenerateAll, nil)
}

// RedisOpt returns the asynq redis connection settings from app config.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}
}

// AsynqEnqueuer hands regeneration tasks to the task queue. It satisfies
// schedule.RegenerationEnqueuer.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

// NewAsynqEnqueuer creates an enqueuer backed by a fresh asynq client.
func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{Client: asynq.NewClient(RedisOpt())}
}

// EnqueueTherapistRegeneration queues a per-therapist regeneration to run
// after the given delay.
func (e *AsynqEnqueuer) EnqueueTherapistRegeneration(ctx context.Context, therapistID string, delay time.Duration) error {
	task, opts, err := NewRegenerateTherapistTask(therapistID, delay)
	if err != nil {
		return err
	}
	_, err = e.Client.EnqueueContext(ctx, task, opts...)
	return err
}
