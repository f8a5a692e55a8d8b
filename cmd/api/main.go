package main

import (
	"context"
	"log"

	orderapp "github.com/Samuel-ncu/goshopsync/internal/application/order"
	"github.com/Samuel-ncu/goshopsync/internal/application/sales"
	"github.com/Samuel-ncu/goshopsync/internal/config"
	ginfra "github.com/Samuel-ncu/goshopsync/internal/infrastructure/http/gin"
	kafkainfra "github.com/Samuel-ncu/goshopsync/internal/infrastructure/messaging/kafka"
	"github.com/Samuel-ncu/goshopsync/internal/infrastructure/persistence/postgres"
	"github.com/Samuel-ncu/goshopsync/internal/infrastructure/workbook"
	"github.com/Samuel-ncu/goshopsync/internal/interfaces/http/handler"
	"github.com/Samuel-ncu/goshopsync/internal/interfaces/http/router"
	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

// Read-side service: consumes ingested raw orders from Kafka into
// Postgres and serves them, plus the sales summary, over HTTP.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatal("KAFKA_BOOTSTRAP_SERVERS is empty")
	}

	lg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer lg.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		lg.Fatal("connect postgres failed", logger.Error(err))
	}
	defer pool.Close()

	orderRepo := postgres.NewRawOrderRepository(pool)
	orderSvc := orderapp.NewService(orderRepo)

	consumer, err := kafkainfra.NewRecordConsumer(cfg.Kafka, orderSvc, lg)
	if err != nil {
		lg.Fatal("init kafka consumer failed", logger.Error(err))
	}
	defer consumer.Close()

	go func() {
		if err := consumer.Start(ctx); err != nil {
			lg.Error("order consumer stopped", logger.Error(err))
		}
	}()

	store := workbook.NewStore(cfg.Store.DataDir, lg)
	salesSvc := sales.NewService(store, lg)

	engine := ginfra.NewEngine()
	router.RegisterRoutes(engine, handler.NewOrderHandler(orderSvc), handler.NewSalesHandler(salesSvc))

	server := ginfra.NewServer(cfg.Server, engine)
	lg.Info("http server starting", logger.String("addr", cfg.Server.Address()))
	if err := server.Run(); err != nil {
		lg.Fatal("http server stopped", logger.Error(err))
	}
}
