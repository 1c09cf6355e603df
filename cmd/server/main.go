package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/severussssss/hp-node-stream/api/grpcserver"
	pb "github.com/severussssss/hp-node-stream/api/pb"
	"github.com/severussssss/hp-node-stream/config"
	"github.com/severussssss/hp-node-stream/domain/market"
	"github.com/severussssss/hp-node-stream/domain/orderbook"
	"github.com/severussssss/hp-node-stream/infra/checkpoint"
	infrakafka "github.com/severussssss/hp-node-stream/infra/kafka"
	"github.com/severussssss/hp-node-stream/infra/watch"
	"github.com/severussssss/hp-node-stream/jobs/markpub"
	"github.com/severussssss/hp-node-stream/service"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---------------- Markets ----------------

	reg, err := market.LoadRegistry(cfg.MarketsFile)
	if err != nil {
		return err
	}
	log.Info("markets loaded",
		zap.String("file", cfg.MarketsFile),
		zap.Int("count", len(reg.IDs())))

	// ---------------- Engine ----------------

	markCfg := orderbook.MarkPriceConfig{
		ImpactNotional:  cfg.ImpactNotional,
		EMAHalfLife:     cfg.EMAHalfLife,
		MaxDeviationBPS: cfg.MaxDeviationBPS,
	}
	engine := service.NewEngine(reg, markCfg, log)
	defer engine.Close()

	// ---------------- Event source ----------------

	srcErr := make(chan error, 1)
	switch cfg.Source {
	case config.SourceKafka:
		src := infrakafka.NewSource(cfg.KafkaBrokers, cfg.KafkaEventsTopic, cfg.KafkaGroupID, engine, log)
		go func() { srcErr <- src.Run(ctx) }()

	default:
		ckpt, err := checkpoint.Open(cfg.CheckpointDir)
		if err != nil {
			return err
		}
		defer ckpt.Close()

		w := watch.New(cfg.DataDir, engine, ckpt, log)
		go func() { srcErr <- w.Run(ctx) }()
	}

	// ---------------- Background jobs ----------------

	if cfg.MarkPublish {
		pub, err := markpub.New(engine, cfg.KafkaBrokers, cfg.MarkPublishTopic, cfg.MarkPublishInterval, log)
		if err != nil {
			return err
		}
		defer pub.Close()
		go func() { _ = pub.Run(ctx) }()
	}

	// ---------------- Metrics ----------------

	metricsSrv := &http.Server{Addr: cfg.MetricsAddr, Handler: promhttp.Handler()}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn("metrics server exited", zap.Error(err))
		}
	}()
	defer metricsSrv.Close()

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderbookServiceServer(grpcSrv, grpcserver.NewServer(engine, cfg.MaxDepth, log))

	grpcErr := make(chan error, 1)
	go func() { grpcErr <- grpcSrv.Serve(lis) }()

	log.Info("serving",
		zap.String("grpc", cfg.GRPCAddr),
		zap.String("metrics", cfg.MetricsAddr),
		zap.String("source", cfg.Source))

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-srcErr:
		if err != nil && ctx.Err() == nil {
			log.Error("event source failed", zap.Error(err))
		}
	case err := <-grpcErr:
		return err
	}

	stop()

	done := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		grpcSrv.Stop()
	}
	return nil
}
