package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"order-review-svc/internal/auth"
	"order-review-svc/internal/configs"
	httpdelivery "order-review-svc/internal/delivery/http"
	"order-review-svc/internal/delivery/kafka"
	"order-review-svc/internal/repository"
	"order-review-svc/internal/repository/cache"
	"order-review-svc/internal/repository/postgres"
	"order-review-svc/internal/service"
	"order-review-svc/internal/tracing"
)

// @title order review service
// @version 1.0
// @description Restaurant marketplace API. Customers place orders against one restaurant, track their status and review restaurants and the dishes they received. Status commands also arrive over kafka.

// @host localhost:8081
// @basePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	if err := cfg.SetupLogger(); err != nil {
		logrus.Fatalf("logger: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Open(cfg.PgDSN())
	if err != nil {
		logrus.Fatalf("postgres connect: %s", err)
	}
	defer func() {
		if derr := db.Close(); derr != nil {
			logrus.Errorf("db close: %v", derr)
		}
	}()
	if err := postgres.Migrate(db); err != nil {
		logrus.Fatalf("migrate: %s", err)
	}
	logrus.Print("connected to postgres, schema up to date")

	var kv cache.KV
	if cfg.CacheTTL > 0 {
		store := cache.New(cfg.CacheShards, cfg.CacheTTL)
		defer store.Close()
		kv = store
		logrus.WithFields(logrus.Fields{"ttl": cfg.CacheTTL, "shards": cfg.CacheShards}).Print("catalog cache enabled")
	}

	repo := repository.NewRepository(db, kv)
	svc := service.NewService(repo)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)

	if cfg.TracingEnabled {
		tp, err := tracing.Init(cfg.JaegerEndpoint)
		if err != nil {
			logrus.Fatalf("tracing: %s", err)
		}
		defer func() {
			sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer scancel()
			if serr := tp.Shutdown(sctx); serr != nil {
				logrus.Errorf("tracer shutdown: %v", serr)
			}
		}()
		logrus.Printf("tracing to %s", cfg.JaegerEndpoint)
	}

	opts := []httpdelivery.Option{
		httpdelivery.WithCORSOrigins(cfg.CorsAllowedOrigins),
		httpdelivery.WithServiceName(tracing.ServiceName),
	}

	var (
		wg       sync.WaitGroup
		consumer *kafka.Consumer
	)
	if cfg.KafkaEnabled {
		brokers := cfg.KafkaBrokersSlice()

		pub := kafka.NewPublisher(brokers, cfg.KafkaEventsTopic)
		defer func() {
			if perr := pub.Close(); perr != nil {
				logrus.Errorf("publisher close: %v", perr)
			}
		}()
		opts = append(opts, httpdelivery.WithEvents(pub))

		consumer = kafka.NewConsumer(kafka.Config{
			Brokers:     brokers,
			GroupID:     cfg.KafkaGroupID,
			Topic:       cfg.KafkaCommandsTopic,
			DLQ:         cfg.KafkaDLQTopic,
			MaxRetries:  5,
			BaseBackoff: 200 * time.Millisecond,
		}, issuer, svc)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Subscribe(ctx); err != nil {
				logrus.Errorf("consumer stopped: %v", err)
				cancel()
			}
		}()
		logrus.Printf("kafka subscription to %s started", cfg.KafkaCommandsTopic)
	}

	h := httpdelivery.NewHandler(svc, issuer, opts...)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer scancel()
	if err := srv.Shutdown(sctx); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}

	cancel()
	wg.Wait()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logrus.Errorf("consumer close: %s", err)
		}
	}
	logrus.Print("service stopped")
}
