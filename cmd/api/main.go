package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"cineiut.com/catalog/internal/auth"
	"cineiut.com/catalog/internal/client"
	"cineiut.com/catalog/internal/config"
	"cineiut.com/catalog/internal/core/port"
	"cineiut.com/catalog/internal/core/service"
	"cineiut.com/catalog/internal/handler"
	"cineiut.com/catalog/internal/infrastructure/amqp"
	"cineiut.com/catalog/internal/infrastructure/memqueue"
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

	if cfg.Auth.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
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

	validate := validator.New()

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var publisher port.ExportPublisher
	var exportConsumer *handler.ExportConsumer

	switch cfg.Export.QueueDriver {
	case config.QueueDriverMemory:
		// Single-process mode: the export pool runs next to the API.
		queue := memqueue.New(0)
		publisher = queue

		var tracker port.DeliveryTracker
		if cfg.RedisURL != "" {
			rdb, err := redis.NewClient(ctx, cfg.RedisURL)
			if err != nil {
				log.Fatalf("Failed to connect to redis: %v", err)
			}
			defer rdb.Close()
			tracker = redis.NewDeliveryTracker(rdb, redis.DefaultTTL)
		}

		exportWorker := service.NewExportWorker(catalogStorage, mailer, tracker, validate)
		exportConsumer = handler.NewExportConsumer(exportWorker, cfg.Export.Workers, cfg.Export.JobTimeout, cfg.Export.RetryDelay)
		exportConsumer.Start()
		go queue.Consume(workerCtx, exportConsumer)
		log.Warn("Using in-memory export queue, exports are lost on restart")

	default:
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

		publisher = client.NewAMQPExportQueue(amqp.NewPublisher(amqpClient), cfg.Export.Queue, cfg.Export.Durable)
	}

	exportProducer := service.NewExportProducer(publisher, validate)
	notifier := service.NewCatalogNotifier(catalogStorage, mailer)
	verifier := auth.NewVerifier(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.Audience)

	// Create HTTP server
	httpServer := server.NewHTTPServer(verifier, exportProducer, notifier)

	// Start HTTP server in a goroutine
	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Catalog API started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down catalog API...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}

	// Announcement mails still in flight get the rest of the shutdown budget.
	if err := notifier.Wait(shutdownCtx); err != nil {
		log.WithError(err).Warn("Some catalog announcements were still pending at shutdown")
	}

	if exportConsumer != nil {
		workerCancel()
		exportConsumer.Stop(shutdownCtx)
	}
}
