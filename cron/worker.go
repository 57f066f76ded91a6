package cron

import (
	"context"
	"log"
	"time"

	"viavela/config"
	"viavela/services/schedule"

	"github.com/hibiken/asynq"
)

const TypeBlockedPrune = "blocked:prune"

// InitMaintenanceWorker runs the async maintenance worker in background. It
// currently handles one job: pruning blocked dates that have already passed,
// scheduled once a day.
func InitMaintenanceWorker(scheduleSvc schedule.ScheduleService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBlockedPrune, handleBlockedPruneTask(scheduleSvc))

	go func() {
		log.Println("[MaintenanceWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[MaintenanceWorker] worker stopped: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@daily", asynq.NewTask(TypeBlockedPrune, nil)); err != nil {
		log.Printf("[MaintenanceWorker] failed to register prune schedule: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[MaintenanceWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleBlockedPruneTask(scheduleSvc schedule.ScheduleService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		removed, err := scheduleSvc.PruneExpiredBlockedDates(ctx, time.Now())
		if err != nil {
			log.Printf("[MaintenanceWorker] blocked-date prune failed: %v", err)
			return err
		}
		if removed > 0 {
			log.Printf("[MaintenanceWorker] pruned %d expired blocked dates", removed)
		}
		return nil
	}
}
