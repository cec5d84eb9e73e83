package cron

import (
	"context"
	"log"
	"time"

	"bookit/config"
	userRepo "bookit/database/repository/user"

	"github.com/hibiken/asynq"
)

const TypeAccountsPurge = "accounts:purge-unverified"

// purgeGrace is how long an expired verification code may linger before the
// account is removed, giving users room to request a fresh code.
const purgeGrace = 24 * time.Hour

// purgeInterval is how often the purge task runs.
const purgeInterval = "@every 6h"

// InitPurgeWorker runs the async worker and its periodic schedule in the
// background.
func InitPurgeWorker(repo userRepo.UserRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAccountsPurge, handlePurgeTask(repo))

	go func() {
		log.Println("[PurgeWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[PurgeWorker] worker stopped: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(purgeInterval, asynq.NewTask(TypeAccountsPurge, nil)); err != nil {
		log.Printf("[PurgeWorker] failed to register schedule: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[PurgeWorker] scheduler stopped: %v", err)
		}
	}()
}

func handlePurgeTask(repo userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		cutoff := time.Now().Add(-purgeGrace)
		removed, err := repo.PurgeExpiredUnverified(cutoff)
		if err != nil {
			log.Printf("[PurgeWorker] purge failed: %v", err)
			return err
		}
		if removed > 0 {
			log.Printf("[PurgeWorker] removed %d expired unverified accounts", removed)
		}
		return nil
	}
}
