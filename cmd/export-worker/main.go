package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/client"
	"cineiut.com/catalog/internal/config"
	"cineiut.com/catalog/internal/core/port"
	"cineiut.com/catalog/internal/core/service"
	"cineiut.com/catalog/internal/handler"
	"cineiut.com/catalog/internal/infrastructure/amqp"
	"cineiut.com/catalog/internal/infrastructure/redis"
	"cineiut.com/catalog/internal/server"
	"cineiut.com/catalog/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ConfigureLogger()

	if cfg.Export.QueueDriver != config.QueueDriverAMQP {
		log.Fatalf("The export worker needs QUEUE_DRIVER=%s, the in-memory queue runs inside the API", config.QueueDriverAMQP)
	}

	ctx := context.Background()
	db, err := storage.NewPostgresDB(ctx, storage.Options{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	catalogStorage := storage.NewCatalogStorage(db)

	mailer, err := client.NewSMTPMailer(client.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		FromName: cfg.SMTP.Name,
		Timeout:  cfg.SMTP.Timeout,
	})
	if err != nil {
		log.Fatalf("Failed to create mailer: %v", err)
	}

	var tracker port.DeliveryTracker
	if cfg.RedisURL != "" {
		rdb, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		tracker = redis.NewDeliveryTracker(rdb, redis.DefaultTTL)
	}

	// Create AMQP client
	amqpClient, err := amqp.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()

	// Set up topology (queue and optional dead-letter route)
	topologyManager := amqp.NewTopologyManager(amqpClient)
	if err := topologyManager.Setup(amqp.QueueOptions{
		Name:               cfg.Export.Queue,
		Durable:            cfg.Export.Durable,
		DeadLetterExchange: cfg.Export.DeadLetterExchange,
	}); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	validate := validator.New()
	exportWorker := service.NewExportWorker(catalogStorage, mailer, tracker, validate)
	exportConsumer := handler.NewExportConsumer(
		exportWorker,
		cfg.Export.Workers,
		cfg.Export.JobTimeout,
		cfg.Export.RetryDelay,
	)
	exportConsumer.Start()

	consumer := amqp.NewConsumer(amqpClient, exportConsumer, cfg.Export.Workers)

	// Start consuming messages
	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()

	if err := consumer.Consume(consumeCtx, cfg.Export.Queue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	metricsServer := server.NewMetricsServer()
	go func() {
		if err := metricsServer.Start(cfg.MetricsAddr); err != nil {
			log.Errorf("Metrics server stopped: %v", err)
		}
	}()

	log.Info("Export worker started successfully")
	log.Infof("Consuming messages from queue: %s", cfg.Export.Queue)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down export worker...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Stop new deliveries, let running jobs settle their messages, then
	// release the channel. Unsettled messages go back to the queue.
	consumeCancel()
	<-consumer.Done()
	exportConsumer.Stop(shutdownCtx)
	if err := consumer.Close(); err != nil {
		log.Errorf("Error closing consumer channel: %v", err)
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down metrics server: %v", err)
	}
}
