package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mindwell/config"
	"mindwell/services/availability"
	"mindwell/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitRegenerationWorker runs the async worker in background: it consumes
// per-therapist regeneration tasks (enqueued after schedule edits) and the
// bulk task, and registers the nightly bulk entry with the asynq scheduler.
func InitRegenerationWorker(svc availability.Service) {
	redisOpts := tasks.RedisOpt()

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRegenerateTherapist, handleRegenerateTherapist(svc))
	mux.HandleFunc(tasks.TypeRegenerateAll, handleRegenerateAll(svc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Nightly bulk regeneration.
	go runNightlySchedule(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[RegenWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RegenWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RegenWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleRegenerateTherapist(svc availability.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.RegeneratePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RegenWorker] invalid payload: %v", err)
			return err
		}

		report, err := svc.RegenerateForTherapist(ctx, p.TherapistID)
		if err != nil {
			log.Printf("[RegenWorker] regeneration failed for therapist %s: %v", p.TherapistID, err)
			return err
		}

		log.Printf("[RegenWorker] therapist %s: created=%d preservedTaken=%d",
			p.TherapistID, report.Created, report.PreservedTaken)
		return nil
	}
}

func handleRegenerateAll(svc availability.Service) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		report, err := svc.RegenerateAll(ctx)
		if err != nil {
			log.Printf("[RegenWorker] bulk regeneration failed: %v", err)
			return err
		}

		log.Printf("[RegenWorker] bulk run: therapists=%d created=%d preservedTaken=%d",
			report.TherapistsProcessed, report.Created, report.PreservedTaken)
		return nil
	}
}

// runNightlySchedule registers the bulk regeneration task on a cron schedule
// and blocks running the asynq scheduler.
func runNightlySchedule(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)

	spec := config.AppConfig.RegenCronSpec
	if _, err := scheduler.Register(spec, tasks.NewRegenerateAllTask()); err != nil {
		log.Printf("[RegenWorker] failed to register nightly schedule %q: %v", spec, err)
		return
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[RegenWorker] scheduler stopped: %v", err)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[RegenWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
