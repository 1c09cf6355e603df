package grpcserver

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/severussssss/hp-node-stream/api/pb"
	"github.com/severussssss/hp-node-stream/domain/market"
	"github.com/severussssss/hp-node-stream/domain/orderbook"
	"github.com/severussssss/hp-node-stream/service"
)

// Server adapts the engine to the OrderbookService gRPC surface.
type Server struct {
	pb.UnimplementedOrderbookServiceServer

	log      *zap.Logger
	engine   *service.Engine
	maxDepth int
}

func NewServer(engine *service.Engine, maxDepth int, log *zap.Logger) *Server {
	return &Server{log: log, engine: engine, maxDepth: maxDepth}
}

// -------------------- Queries --------------------

func (s *Server) GetOrderbook(
	ctx context.Context,
	req *pb.GetOrderbookRequest,
) (*pb.OrderbookSnapshot, error) {
	depth, err := s.checkDepth(req.Depth)
	if err != nil {
		return nil, err
	}

	snap, err := s.engine.Snapshot(req.MarketId, depth)
	if err != nil {
		return nil, rpcError(err, req.MarketId)
	}
	return toSnapshot(snap), nil
}

func (s *Server) GetMarkets(
	ctx context.Context,
	req *pb.GetMarketsRequest,
) (*pb.GetMarketsResponse, error) {
	infos := s.engine.Markets()

	resp := &pb.GetMarketsResponse{
		Markets: make([]*pb.MarketInfo, 0, len(infos)),
	}
	for _, m := range infos {
		resp.Markets = append(resp.Markets, &pb.MarketInfo{
			MarketId: m.ID,
			Symbol:   m.Symbol,
			Active:   m.Active,
		})
	}
	return resp, nil
}

// -------------------- Streaming --------------------

func (s *Server) SubscribeOrderbook(
	req *pb.SubscribeRequest,
	stream pb.OrderbookService_SubscribeOrderbookServer,
) error {
	depth, err := s.checkDepth(req.Depth)
	if err != nil {
		return err
	}
	interval := time.Duration(req.UpdateIntervalMs) * time.Millisecond

	sub, err := s.engine.Hub().Subscribe(req.MarketIds, depth, interval)
	if err != nil {
		switch {
		case errors.Is(err, market.ErrUnknownMarket):
			return status.Error(codes.NotFound, err.Error())
		case errors.Is(err, service.ErrNoMarkets):
			return status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, service.ErrEngineClosed):
			return status.Error(codes.Unavailable, err.Error())
		default:
			return status.Error(codes.Internal, err.Error())
		}
	}
	defer sub.Close()

	// Current state first, so a quiet market is still visible immediately.
	for _, id := range req.MarketIds {
		snap, err := s.engine.Snapshot(id, depth)
		if err != nil {
			return rpcError(err, id)
		}
		if err := stream.Send(toSnapshot(snap)); err != nil {
			return err
		}
	}

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("subscriber went away", zap.Error(ctx.Err()))
			return status.FromContextError(ctx.Err()).Err()
		case snap, ok := <-sub.C():
			if !ok {
				return status.Error(codes.Unavailable, "shutting down")
			}
			if err := stream.Send(toSnapshot(snap)); err != nil {
				return err
			}
		}
	}
}

func (s *Server) checkDepth(depth uint32) (int, error) {
	if depth == 0 || int(depth) > s.maxDepth {
		return 0, status.Errorf(codes.InvalidArgument,
			"depth must be in [1,%d], got %d", s.maxDepth, depth)
	}
	return int(depth), nil
}

func rpcError(err error, marketID uint32) error {
	if errors.Is(err, market.ErrUnknownMarket) {
		return status.Errorf(codes.NotFound, "unknown market %d", marketID)
	}
	return status.Error(codes.Internal, err.Error())
}

// -------------------- Converters --------------------

func toSnapshot(snap orderbook.Snapshot) *pb.OrderbookSnapshot {
	return &pb.OrderbookSnapshot{
		MarketId:    snap.MarketID,
		Symbol:      snap.Symbol,
		TimestampUs: snap.TimestampUS,
		Sequence:    snap.Sequence,
		Bids:        toLevels(snap.Bids),
		Asks:        toLevels(snap.Asks),
		MarkPrice:   toMark(snap.Mark),
	}
}

func toLevels(levels []orderbook.Level) []*pb.PriceLevel {
	out := make([]*pb.PriceLevel, 0, len(levels))
	for _, lv := range levels {
		out = append(out, &pb.PriceLevel{
			Price:      lv.Price,
			Quantity:   lv.Size,
			OrderCount: lv.Count,
		})
	}
	return out
}

func toMark(m *orderbook.MarkPriceStats) *pb.MarkPriceStats {
	if m == nil {
		return nil
	}
	return &pb.MarkPriceStats{
		MarkPrice:      m.MarkPrice,
		MidPrice:       m.MidPrice,
		ImpactBidPrice: m.ImpactBidPrice,
		ImpactAskPrice: m.ImpactAskPrice,
		ImpactMidPrice: m.ImpactMidPrice,
		EmaPrice:       m.EMAPrice,
		Confidence:     m.Confidence,
	}
}
