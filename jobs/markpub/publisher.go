// Package markpub pushes mark-price updates to Kafka on a fixed cadence so
// downstream risk systems get them without holding a gRPC stream open.
package markpub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/severussssss/hp-node-stream/service"
)

// Update is the published payload for one market.
type Update struct {
	MarketID    uint32  `json:"market_id"`
	Symbol      string  `json:"symbol"`
	Sequence    uint64  `json:"sequence"`
	TimestampMS int64   `json:"timestamp_ms"`
	MidPrice    float64 `json:"mid_price"`
	ImpactMid   float64 `json:"impact_mid_price"`
	EMAPrice    float64 `json:"ema_price"`
	MarkPrice   float64 `json:"mark_price"`
	Confidence  float64 `json:"confidence"`
}

// Publisher ticks over every tracked market and publishes whichever mark
// prices are currently available. Markets with a withheld mark (empty side)
// are skipped, not published as zeroes.
type Publisher struct {
	log      *zap.Logger
	engine   *service.Engine
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

func New(engine *service.Engine, brokers []string, topic string, interval time.Duration, log *zap.Logger) (*Publisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Publisher{
		log:      log,
		engine:   engine,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// Run blocks until ctx is cancelled.
func (p *Publisher) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Info("mark price publisher started",
		zap.String("topic", p.topic),
		zap.Duration("interval", p.interval))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.publishOnce()
		}
	}
}

func (p *Publisher) publishOnce() {
	now := time.Now().UnixMilli()

	for _, info := range p.engine.Markets() {
		stats, err := p.engine.MarkStats(info.ID)
		if err != nil || stats == nil {
			continue
		}
		seq, err := p.engine.Sequence(info.ID)
		if err != nil {
			continue
		}

		payload, err := json.Marshal(Update{
			MarketID:    info.ID,
			Symbol:      info.Symbol,
			Sequence:    seq,
			TimestampMS: now,
			MidPrice:    stats.MidPrice,
			ImpactMid:   stats.ImpactMidPrice,
			EMAPrice:    stats.EMAPrice,
			MarkPrice:   stats.MarkPrice,
			Confidence:  stats.Confidence,
		})
		if err != nil {
			continue
		}

		_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(info.Symbol),
			Value: sarama.ByteEncoder(payload),
		})
		if err != nil {
			// Transient broker trouble: next tick retries with fresher data.
			p.log.Warn("publish mark price",
				zap.Uint32("market", info.ID),
				zap.Error(err))
		}
	}
}

// Close releases the producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
