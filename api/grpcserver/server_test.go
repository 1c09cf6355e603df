package grpcserver

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/severussssss/hp-node-stream/api/pb"
	"github.com/severussssss/hp-node-stream/domain/market"
	"github.com/severussssss/hp-node-stream/domain/orderbook"
	"github.com/severussssss/hp-node-stream/feed"
	"github.com/severussssss/hp-node-stream/service"
)

func newTestServer(t *testing.T) (*Server, *service.Engine) {
	t.Helper()
	reg := market.NewRegistry()
	reg.Put(market.Info{ID: 0, Symbol: "BTC-PERP", Active: true})
	reg.Put(market.Info{ID: 159, Symbol: "HYPE-PERP", Active: true})

	eng := service.NewEngine(reg, orderbook.DefaultMarkPriceConfig(), zap.NewNop())
	t.Cleanup(eng.Close)
	return NewServer(eng, 1000, zap.NewNop()), eng
}

func openOrder(id uint64, marketID uint32, price, size float64, buy bool) feed.Record {
	return feed.Record{
		OrderID:     id,
		MarketID:    marketID,
		Price:       price,
		Size:        size,
		IsBuy:       buy,
		TimestampNS: uint64(time.Now().UnixNano()),
		Status:      feed.StatusOpen,
	}
}

func waitSeq(t *testing.T, eng *service.Engine, marketID uint32, want uint64) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if seq, err := eng.Sequence(marketID); err == nil && seq >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("market %d never reached sequence %d", marketID, want)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if status.Code(err) != code {
		t.Fatalf("got %v, want code %v", err, code)
	}
}

func TestGetOrderbookDepthValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()

	_, err := srv.GetOrderbook(ctx, &pb.GetOrderbookRequest{MarketId: 0, Depth: 0})
	wantCode(t, err, codes.InvalidArgument)

	_, err = srv.GetOrderbook(ctx, &pb.GetOrderbookRequest{MarketId: 0, Depth: 2000})
	wantCode(t, err, codes.InvalidArgument)
}

func TestGetOrderbookUnknownMarket(t *testing.T) {
	srv, _ := newTestServer(t)
	_, err := srv.GetOrderbook(context.Background(), &pb.GetOrderbookRequest{MarketId: 7, Depth: 10})
	wantCode(t, err, codes.NotFound)
}

func TestGetOrderbookEmptyMarket(t *testing.T) {
	srv, _ := newTestServer(t)
	snap, err := srv.GetOrderbook(context.Background(), &pb.GetOrderbookRequest{MarketId: 159, Depth: 10})
	if err != nil {
		t.Fatalf("GetOrderbook: %v", err)
	}
	if snap.MarketId != 159 || snap.Symbol != "HYPE-PERP" {
		t.Errorf("snapshot header = %d %q", snap.MarketId, snap.Symbol)
	}
	if len(snap.Bids) != 0 || len(snap.Asks) != 0 || snap.Sequence != 0 {
		t.Errorf("expected empty book, got %d bids %d asks seq %d",
			len(snap.Bids), len(snap.Asks), snap.Sequence)
	}
	if snap.MarkPrice != nil {
		t.Error("mark price should be absent on an empty book")
	}
}

func TestGetOrderbookPopulated(t *testing.T) {
	srv, eng := newTestServer(t)
	if err := eng.Process(openOrder(1, 0, 100, 2, true)); err != nil {
		t.Fatal(err)
	}
	if err := eng.Process(openOrder(2, 0, 101, 3, false)); err != nil {
		t.Fatal(err)
	}
	waitSeq(t, eng, 0, 2)

	snap, err := srv.GetOrderbook(context.Background(), &pb.GetOrderbookRequest{MarketId: 0, Depth: 10})
	if err != nil {
		t.Fatalf("GetOrderbook: %v", err)
	}
	if len(snap.Bids) != 1 || snap.Bids[0].Price != 100 || snap.Bids[0].Quantity != 2 || snap.Bids[0].OrderCount != 1 {
		t.Errorf("bids = %+v", snap.Bids)
	}
	if len(snap.Asks) != 1 || snap.Asks[0].Price != 101 {
		t.Errorf("asks = %+v", snap.Asks)
	}
	if snap.MarkPrice == nil || snap.MarkPrice.MidPrice != 100.5 {
		t.Errorf("mark = %+v", snap.MarkPrice)
	}
}

func TestGetMarkets(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := srv.GetMarkets(context.Background(), &pb.GetMarketsRequest{})
	if err != nil {
		t.Fatalf("GetMarkets: %v", err)
	}
	if len(resp.Markets) != 2 {
		t.Fatalf("got %d markets", len(resp.Markets))
	}
	if resp.Markets[0].MarketId != 0 || resp.Markets[1].MarketId != 159 {
		t.Errorf("markets out of order: %+v", resp.Markets)
	}
	if resp.Markets[1].Symbol != "HYPE-PERP" || !resp.Markets[1].Active {
		t.Errorf("market 159 = %+v", resp.Markets[1])
	}
}

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context

	mu   sync.Mutex
	sent []*pb.OrderbookSnapshot
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func (f *fakeStream) Send(m *pb.OrderbookSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeStream) snapshots() []*pb.OrderbookSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*pb.OrderbookSnapshot(nil), f.sent...)
}

func TestSubscribeValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	stream := &fakeStream{ctx: context.Background()}

	err := srv.SubscribeOrderbook(&pb.SubscribeRequest{MarketIds: []uint32{0}, Depth: 0}, stream)
	wantCode(t, err, codes.InvalidArgument)

	err = srv.SubscribeOrderbook(&pb.SubscribeRequest{MarketIds: nil, Depth: 10}, stream)
	wantCode(t, err, codes.InvalidArgument)

	err = srv.SubscribeOrderbook(&pb.SubscribeRequest{MarketIds: []uint32{7}, Depth: 10}, stream)
	wantCode(t, err, codes.NotFound)
}

func TestSubscribeStreamsUpdates(t *testing.T) {
	srv, eng := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	stream := &fakeStream{ctx: ctx}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.SubscribeOrderbook(&pb.SubscribeRequest{MarketIds: []uint32{0}, Depth: 10}, stream)
	}()

	// Initial snapshot arrives before any mutation.
	waitFor(t, func() bool { return len(stream.snapshots()) >= 1 })
	first := stream.snapshots()[0]
	if first.MarketId != 0 || first.Sequence != 0 {
		t.Errorf("initial snapshot = %+v", first)
	}

	if err := eng.Process(openOrder(1, 0, 100, 2, true)); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool {
		snaps := stream.snapshots()
		return len(snaps) >= 2 && snaps[len(snaps)-1].Sequence >= 1
	})

	cancel()
	select {
	case err := <-errc:
		wantCode(t, err, codes.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end after cancel")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition never satisfied")
}
