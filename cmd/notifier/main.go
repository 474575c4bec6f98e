package main

import (
	"context"
	"os/signal"
	"syscall"

	"portfolio-api/internal/repo/cache"
	"portfolio-api/internal/usecase"
	pkgcache "portfolio-api/pkg/cache"
	"portfolio-api/pkg/config"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/queue"
)

// notifier drains the portfolio event log into the admin activity feed.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	if cfg.RabbitMQHost == "" || cfg.RedisHost == "" {
		log.Error("RABBITMQ_HOST and REDIS_HOST must both be set for the notifier")
		panic("notifier needs RabbitMQ and Redis")
	}

	redisClient, err := pkgcache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}
	defer redisClient.Close()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	notificationUseCase := usecase.NewNotificationUseCase(cache.NewNotificationStore(redisClient, log), log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Notifier consuming %s", queue.EventsQueueName)
	if err := queueClient.ConsumeEvents(ctx, notificationUseCase.Handle); err != nil {
		log.Error("Event consumer stopped: %v", err)
		return
	}
	log.Info("Notifier exited")
}
