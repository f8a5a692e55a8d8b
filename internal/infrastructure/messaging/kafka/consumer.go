package kafka

import (
	"context"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	app "github.com/Samuel-ncu/goshopsync/internal/application/order"
	"github.com/Samuel-ncu/goshopsync/internal/config"
	"github.com/Samuel-ncu/goshopsync/internal/infrastructure/encoding/avro"
	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

// RecordConsumer reads Avro-encoded raw-order records off the ingestion
// topic and lands them in the audit mirror.
type RecordConsumer struct {
	reader  *kafkago.Reader
	codec   *avro.Codec
	handler *app.Service
	log     logger.Logger
}

func NewRecordConsumer(cfg config.KafkaConfig, handler *app.Service, log logger.Logger) (*RecordConsumer, error) {
	codec, err := avro.NewCodec()
	if err != nil {
		return nil, err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.OrderTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})

	return &RecordConsumer{
		reader:  reader,
		codec:   codec,
		handler: handler,
		log:     log,
	}, nil
}

func (c *RecordConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		rec, err := c.codec.Decode(msg.Value)
		if err != nil {
			// A bad payload should not wedge the consumer on one
			// offset forever.
			c.log.Warn("skipping undecodable message",
				logger.Int64("offset", msg.Offset),
				logger.Error(err),
			)
			continue
		}

		if err := c.handler.HandleIngestedRecord(ctx, &rec); err != nil {
			return fmt.Errorf("handle order %s: %w", rec.Code, err)
		}
	}
}

func (c *RecordConsumer) Close() {
	_ = c.reader.Close()
}
