package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Samuel-ncu/goshopsync/internal/application/ingest"
	"github.com/Samuel-ncu/goshopsync/internal/application/sales"
	"github.com/Samuel-ncu/goshopsync/internal/config"
	"github.com/Samuel-ncu/goshopsync/internal/infrastructure/checkpoint"
	kafkainfra "github.com/Samuel-ncu/goshopsync/internal/infrastructure/messaging/kafka"
	"github.com/Samuel-ncu/goshopsync/internal/infrastructure/listing"
	"github.com/Samuel-ncu/goshopsync/internal/infrastructure/workbook"
	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

// One-shot ingestion run: open the seller listing, wait for the
// operator to log in, then pull new orders down to the previous
// checkpoint, reconcile them against the catalog and persist the
// snapshot, sales history and new checkpoint.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if cfg.Store.Operator == "" {
		log.Fatal("STORE_OPERATOR is empty (the operator name is part of every snapshot)")
	}

	lg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer lg.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := workbook.NewStore(cfg.Store.DataDir, lg)
	catalogFile := workbook.NewCatalogFile(cfg.Store.CatalogPath(), lg)
	checkpoints := checkpoint.NewFileStore(cfg.Store.CheckpointPath())
	salesSvc := sales.NewService(store, lg)

	var publisher ingest.Publisher
	if cfg.Kafka.Enabled() {
		producer, err := kafkainfra.NewRecordProducer(cfg.Kafka, lg)
		if err != nil {
			lg.Fatal("init kafka producer failed", logger.Error(err))
		}
		defer producer.Close(ctx)
		publisher = producer
	} else {
		lg.Info("kafka not configured, skipping record publishing")
	}

	pager := listing.NewBrowserPager(cfg.Listing, lg)
	if err := pager.Start(ctx); err != nil {
		lg.Fatal("start browser failed", logger.Error(err))
	}
	defer pager.Close()

	fmt.Printf("%s\nLog in to the seller portal in the opened browser, then press Enter to continue...\n", cfg.Store.Operator)
	bufio.NewReader(os.Stdin).ReadString('\n')

	if err := pager.OpenOrders(ctx); err != nil {
		lg.Fatal("open orders listing failed", logger.Error(err))
	}

	svc := ingest.NewService(ingest.Deps{
		Pager:       pager,
		Catalog:     catalogFile,
		Checkpoints: checkpoints,
		Snapshots:   store,
		Sales:       salesSvc,
		Publisher:   publisher,
		Logger:      lg,
	}, ingest.Options{
		Operator: cfg.Store.Operator,
	})

	res, err := svc.Run(ctx)
	if err != nil {
		lg.Fatal("ingestion run failed", logger.Error(err))
	}

	fmt.Printf("run %s done: %d pending / %d rest orders, %d merged items (%d without catalog entry)\n",
		res.RunID, res.Pending, res.Rest, res.MergedItems, res.Unmatched)
	fmt.Printf("revenue %s, cost %s, profit %s\n",
		res.Totals.Revenue.StringFixed(2), res.Totals.Cost.StringFixed(2), res.Totals.Profit.StringFixed(2))
	fmt.Printf("snapshot: %s\n", res.SnapshotPath)
	if res.Checkpoint != "" {
		fmt.Printf("checkpoint advanced to %s\n", res.Checkpoint)
	}
}
