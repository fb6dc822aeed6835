package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/market-proxy/internal/adapter"
	"github.com/MKhiriev/market-proxy/internal/logger"
	"github.com/MKhiriev/market-proxy/internal/mock"
	"github.com/MKhiriev/market-proxy/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMarketSvc(t *testing.T) (MarketService, *mock.MockMarketAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockMarketAdapter(ctrl)
	return NewMarketService(mockAdapter, logger.Nop()), mockAdapter
}

func TestMarketService_DelegatesReads(t *testing.T) {
	svc, mockAdapter := newTestMarketSvc(t)
	ctx := context.Background()

	cfg := models.MarketConfig{Commission: "5", UserCashback: "1", DepositWallet: "UQ", USDTCourse: "3.2"}
	limits := models.WalletLimits{MaxPerTransaction: "100", MaxDaily: "1000", DailyUsed: "0", DailyRemaining: "1000"}
	balance := models.WalletBalance{Balance: "10.00", FrozenFunds: "1.00"}
	list := models.NFTList{NFTs: []models.NFTItem{{ID: "n1"}}}
	backdrops := []models.Backdrop{{Name: "Black"}, {Name: "Amber"}}
	floors := models.FloorPrices{FloorPrices: map[string]json.RawMessage{"Black": json.RawMessage(`"1.2"`)}}

	gomock.InOrder(
		mockAdapter.EXPECT().GetConfig(ctx).Return(cfg, nil),
		mockAdapter.EXPECT().GetWalletLimits(ctx).Return(limits, nil),
		mockAdapter.EXPECT().GetWalletBalance(ctx).Return(balance, nil),
		mockAdapter.EXPECT().ListNFTs(ctx).Return(list, nil),
		mockAdapter.EXPECT().GetBackdrops(ctx).Return(backdrops, nil),
		mockAdapter.EXPECT().GetBackdropFloors(ctx).Return(floors, nil),
	)

	gotCfg, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, gotCfg)

	gotLimits, err := svc.GetWalletLimits(ctx)
	require.NoError(t, err)
	assert.Equal(t, limits, gotLimits)

	gotBalance, err := svc.GetWalletBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, balance, gotBalance)

	gotList, err := svc.ListNFTs(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, gotList)

	gotBackdrops, err := svc.GetBackdrops(ctx)
	require.NoError(t, err)
	assert.Equal(t, backdrops, gotBackdrops)

	gotFloors, err := svc.GetBackdropFloors(ctx)
	require.NoError(t, err)
	assert.Equal(t, floors, gotFloors)
}

func TestMarketService_PassesQueriesThrough(t *testing.T) {
	svc, mockAdapter := newTestMarketSvc(t)
	ctx := context.Background()

	types := "buy,sell"
	historyQuery := models.WalletHistoryQuery{Page: models.Page{Offset: 5, Limit: 10}, Types: &types}
	searchQuery := models.SearchQuery{Page: models.Page{Limit: 20}, SortBy: "price asc", Status: "listed"}
	page := models.Page{Offset: 0, Limit: 20}

	mockAdapter.EXPECT().GetWalletHistory(ctx, historyQuery).Return(models.WalletHistory{Actions: []models.WalletAction{}}, nil)
	mockAdapter.EXPECT().SearchNFTs(ctx, searchQuery).Return(json.RawMessage(`{"results":[]}`), nil)
	mockAdapter.EXPECT().GetUserActions(ctx, page).Return(models.UserActions{Actions: []models.UserAction{}}, nil)

	history, err := svc.GetWalletHistory(ctx, historyQuery)
	require.NoError(t, err)
	assert.Empty(t, history.Actions)

	raw, err := svc.SearchNFTs(ctx, searchQuery)
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(raw))

	actions, err := svc.GetUserActions(ctx, page)
	require.NoError(t, err)
	assert.Empty(t, actions.Actions)
}

func TestMarketService_BuyAndWithdraw(t *testing.T) {
	svc, mockAdapter := newTestMarketSvc(t)
	ctx := context.Background()

	buy := models.BuyRequest{NFTDetails: []models.NFTPurchase{{ID: "abc", Price: "1.50"}}}
	withdraw := models.WithdrawRequest{GiftIDs: []string{"g1"}}

	mockAdapter.EXPECT().BuyNFTs(ctx, buy).Return(json.RawMessage(`{"status":"ok"}`), nil)
	mockAdapter.EXPECT().WithdrawNFTs(ctx, withdraw).Return(json.RawMessage(`{"status":"ok"}`), nil)

	got, err := svc.BuyNFTs(ctx, buy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(got))

	got, err = svc.WithdrawNFTs(ctx, withdraw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(got))
}

func TestMarketService_BuyAndWithdrawLogWithRequestLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockMarketAdapter(ctrl)

	var processBuf, requestBuf bytes.Buffer
	svc := NewMarketService(mockAdapter, &logger.Logger{Logger: zerolog.New(&processBuf)})

	ctx := zerolog.New(&requestBuf).With().Str("trace_id", "trace-7").Logger().WithContext(context.Background())

	buy := models.BuyRequest{NFTDetails: []models.NFTPurchase{{ID: "abc", Price: "1.50"}}}
	withdraw := models.WithdrawRequest{GiftIDs: []string{"g1", "g2"}}

	mockAdapter.EXPECT().BuyNFTs(ctx, buy).Return(json.RawMessage(`{}`), nil)
	mockAdapter.EXPECT().WithdrawNFTs(ctx, withdraw).Return(json.RawMessage(`{}`), nil)

	_, err := svc.BuyNFTs(ctx, buy)
	require.NoError(t, err)
	_, err = svc.WithdrawNFTs(ctx, withdraw)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(requestBuf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"trace_id":"trace-7"`)
	assert.Contains(t, lines[0], "forwarding NFT purchase")
	assert.Contains(t, lines[1], `"trace_id":"trace-7"`)
	assert.Contains(t, lines[1], "forwarding NFT withdrawal")
	assert.Empty(t, processBuf.String())
}

func TestMarketService_BuyLogsWithProcessLoggerWithoutRequestLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockMarketAdapter(ctrl)

	var processBuf bytes.Buffer
	svc := NewMarketService(mockAdapter, &logger.Logger{Logger: zerolog.New(&processBuf)})

	ctx := context.Background()
	buy := models.BuyRequest{NFTDetails: []models.NFTPurchase{{ID: "abc", Price: "1"}}}
	mockAdapter.EXPECT().BuyNFTs(ctx, buy).Return(json.RawMessage(`{}`), nil)

	_, err := svc.BuyNFTs(ctx, buy)
	require.NoError(t, err)

	assert.Contains(t, processBuf.String(), "forwarding NFT purchase")
}

func TestMarketService_PropagatesUpstreamError(t *testing.T) {
	svc, mockAdapter := newTestMarketSvc(t)
	ctx := context.Background()

	upstreamErr := &adapter.UpstreamError{StatusCode: http.StatusNotFound, Message: "Failed to fetch wallet balance"}
	mockAdapter.EXPECT().GetWalletBalance(ctx).Return(models.WalletBalance{}, upstreamErr)

	_, err := svc.GetWalletBalance(ctx)

	require.Error(t, err)
	assert.Same(t, upstreamErr, err)
}
