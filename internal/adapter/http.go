package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/market-proxy/internal/app"
	"github.com/MKhiriev/market-proxy/internal/config"
	"github.com/MKhiriev/market-proxy/internal/logger"
	"github.com/MKhiriev/market-proxy/internal/utils"
	"github.com/MKhiriev/market-proxy/models"
)

// upstream endpoints, relative to the configured base URL
const (
	pathConfig         = "/market/config"
	pathWalletLimits   = "/users/wallets/limits"
	pathWalletHistory  = "/users/wallets/history"
	pathWalletBalance  = "/users/wallets/"
	pathNFTs           = "/nfts"
	pathNFTsSearch     = "/nfts/search"
	pathBackdrops      = "/collections/filters/backdrops"
	pathBackdropsFloor = "/collections/filters/backdrops/floor"
	pathNFTsWithdraw   = "/nfts/withdraw"
	pathUserActions    = "/users/actions/"
)

// operation names a single upstream call: the label used in logs and the
// fixed message returned to callers when it fails.
type operation struct {
	name     string
	message  string
	accepted []int
}

var (
	opGetConfig         = operation{"get_config", app.MsgFailedToFetchConfig, []int{http.StatusOK}}
	opGetWalletLimits   = operation{"get_wallet_limits", app.MsgFailedToFetchWalletLimits, []int{http.StatusOK}}
	opGetWalletHistory  = operation{"get_wallet_history", app.MsgFailedToFetchWalletHistory, []int{http.StatusOK}}
	opGetWalletBalance  = operation{"get_wallet_balance", app.MsgFailedToFetchWalletBalance, []int{http.StatusOK}}
	opListNFTs          = operation{"list_nfts", app.MsgFailedToListNFTs, []int{http.StatusOK}}
	opSearchNFTs        = operation{"search_nfts", app.MsgFailedToSearchNFTs, []int{http.StatusOK}}
	opGetBackdrops      = operation{"get_backdrops", app.MsgFailedToFetchBackdrops, []int{http.StatusOK}}
	opGetBackdropFloors = operation{"get_backdrop_floors", app.MsgFailedToFetchFloorPrices, []int{http.StatusOK}}
	opBuyNFTs           = operation{"buy_nfts", app.MsgFailedToBuyNFTs, []int{http.StatusOK, http.StatusCreated}}
	opWithdrawNFTs      = operation{"withdraw_nfts", app.MsgFailedToWithdrawNFTs, []int{http.StatusOK, http.StatusCreated}}
	opGetUserActions    = operation{"get_user_actions", app.MsgFailedToFetchUserActions, []int{http.StatusOK}}
)

type httpMarketAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewMarketAdapter constructs the HTTP/REST implementation of [MarketAdapter].
// It normalises and validates cfg.BaseURL and builds the single shared client
// with the fixed identity headers and request timeout. The client is owned by
// the adapter and released by Close.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewMarketAdapter(cfg config.Upstream, logger *logger.Logger) (MarketAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL: baseURL,
		Timeout: cfg.RequestTimeout,
		Headers: fixedHeaders(cfg),
	})

	return &httpMarketAdapter{client: client, logger: logger}, nil
}

func fixedHeaders(cfg config.Upstream) map[string]string {
	headers := map[string]string{
		"Accept":          "application/json",
		"Accept-Encoding": "identity",
		"Authorization":   cfg.AuthToken,
	}
	if cfg.Referer != "" {
		headers["Referer"] = cfg.Referer
	}
	if cfg.UserAgent != "" {
		headers["User-Agent"] = cfg.UserAgent
	}

	return headers
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Close implements [MarketAdapter].
func (h *httpMarketAdapter) Close() {
	h.client.Close()
}

// GetConfig implements [MarketAdapter]. GET /market/config.
func (h *httpMarketAdapter) GetConfig(ctx context.Context) (models.MarketConfig, error) {
	var cfg models.MarketConfig
	err := h.getJSON(ctx, opGetConfig, pathConfig, nil, &cfg)
	return cfg, err
}

// GetWalletLimits implements [MarketAdapter]. GET /users/wallets/limits.
func (h *httpMarketAdapter) GetWalletLimits(ctx context.Context) (models.WalletLimits, error) {
	var limits models.WalletLimits
	err := h.getJSON(ctx, opGetWalletLimits, pathWalletLimits, nil, &limits)
	return limits, err
}

// GetWalletHistory implements [MarketAdapter]. GET /users/wallets/history
// with offset, limit and the optional types filter.
func (h *httpMarketAdapter) GetWalletHistory(ctx context.Context, query models.WalletHistoryQuery) (models.WalletHistory, error) {
	params := pageParams(query.Page)
	setOptional(params, "types", query.Types)

	var history models.WalletHistory
	err := h.getJSON(ctx, opGetWalletHistory, pathWalletHistory, params, &history)
	return history, err
}

// GetWalletBalance implements [MarketAdapter]. GET /users/wallets/.
func (h *httpMarketAdapter) GetWalletBalance(ctx context.Context) (models.WalletBalance, error) {
	var balance models.WalletBalance
	err := h.getJSON(ctx, opGetWalletBalance, pathWalletBalance, nil, &balance)
	return balance, err
}

// ListNFTs implements [MarketAdapter]. GET /nfts.
func (h *httpMarketAdapter) ListNFTs(ctx context.Context) (models.NFTList, error) {
	var list models.NFTList
	err := h.getJSON(ctx, opListNFTs, pathNFTs, nil, &list)
	return list, err
}

// SearchNFTs implements [MarketAdapter]. GET /nfts/search; the body is
// relayed without decoding.
func (h *httpMarketAdapter) SearchNFTs(ctx context.Context, query models.SearchQuery) (json.RawMessage, error) {
	params := pageParams(query.Page)
	setOptional(params, "filter_by_collections", query.Collections)
	setOptional(params, "filter_by_backdrops", query.Backdrops)
	setOptional(params, "filter_by_symbols", query.Symbols)
	setOptional(params, "filter_by_models", query.Models)
	if query.SortBy != "" {
		params["sort_by"] = query.SortBy
	}
	if query.Status != "" {
		params["status"] = query.Status
	}

	body, err := h.do(ctx, opSearchNFTs, http.MethodGet, pathNFTsSearch, params, nil)
	if err != nil {
		return nil, err
	}

	return h.rawJSON(opSearchNFTs, pathNFTsSearch, body)
}

// GetBackdrops implements [MarketAdapter]. GET /collections/filters/backdrops.
func (h *httpMarketAdapter) GetBackdrops(ctx context.Context) ([]models.Backdrop, error) {
	var backdrops []models.Backdrop
	if err := h.getJSON(ctx, opGetBackdrops, pathBackdrops, nil, &backdrops); err != nil {
		return nil, err
	}
	if backdrops == nil {
		backdrops = []models.Backdrop{}
	}

	return backdrops, nil
}

// GetBackdropFloors implements [MarketAdapter].
// GET /collections/filters/backdrops/floor.
func (h *httpMarketAdapter) GetBackdropFloors(ctx context.Context) (models.FloorPrices, error) {
	var floors models.FloorPrices
	err := h.getJSON(ctx, opGetBackdropFloors, pathBackdropsFloor, nil, &floors)
	return floors, err
}

// BuyNFTs implements [MarketAdapter]. POST /nfts with {"nft_details": [...]}.
func (h *httpMarketAdapter) BuyNFTs(ctx context.Context, req models.BuyRequest) (json.RawMessage, error) {
	body, err := h.do(ctx, opBuyNFTs, http.MethodPost, pathNFTs, nil, req)
	if err != nil {
		return nil, err
	}

	return h.rawJSON(opBuyNFTs, pathNFTs, body)
}

// WithdrawNFTs implements [MarketAdapter]. POST /nfts/withdraw with
// {"gift_ids": [...]}.
func (h *httpMarketAdapter) WithdrawNFTs(ctx context.Context, req models.WithdrawRequest) (json.RawMessage, error) {
	body, err := h.do(ctx, opWithdrawNFTs, http.MethodPost, pathNFTsWithdraw, nil, req)
	if err != nil {
		return nil, err
	}

	return h.rawJSON(opWithdrawNFTs, pathNFTsWithdraw, body)
}

// GetUserActions implements [MarketAdapter]. GET /users/actions/.
func (h *httpMarketAdapter) GetUserActions(ctx context.Context, page models.Page) (models.UserActions, error) {
	var actions models.UserActions
	err := h.getJSON(ctx, opGetUserActions, pathUserActions, pageParams(page), &actions)
	return actions, err
}

// do executes one upstream call and returns the body of an accepted
// response. Any failure is returned as *UpstreamError.
func (h *httpMarketAdapter) do(ctx context.Context, op operation, method, path string, params map[string]string, body any) ([]byte, error) {
	req := h.client.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		mapped := mapTransportError(err, op.message)
		h.logFailure(op, path, mapped)
		return nil, mapped
	}
	if err = mapUpstreamError(resp, op.message, op.accepted...); err != nil {
		h.logFailure(op, path, err)
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpMarketAdapter) getJSON(ctx context.Context, op operation, path string, params map[string]string, dst any) error {
	body, err := h.do(ctx, op, http.MethodGet, path, params, nil)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(body, dst); err != nil {
		mapped := mapDecodeError(err, op.message)
		h.logFailure(op, path, mapped)
		return mapped
	}

	return nil
}

// rawJSON validates an opaque upstream document. An empty body of an
// accepted response is relayed as JSON null.
func (h *httpMarketAdapter) rawJSON(op operation, path string, body []byte) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(body) {
		mapped := mapDecodeError(errors.New("invalid json"), op.message)
		h.logFailure(op, path, mapped)
		return nil, mapped
	}

	return json.RawMessage(body), nil
}

func (h *httpMarketAdapter) logFailure(op operation, path string, err error) {
	event := h.logger.Error().
		Str("operation", op.name).
		Str("path", path).
		Err(err)

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		event = event.Int("status", upstreamErr.StatusCode)
	}

	event.Msg("upstream call failed")
}

func pageParams(page models.Page) map[string]string {
	return map[string]string{
		"offset": strconv.Itoa(page.Offset),
		"limit":  strconv.Itoa(page.Limit),
	}
}

// setOptional adds key only when value is present.
func setOptional(params map[string]string, key string, value *string) {
	if value != nil {
		params[key] = *value
	}
}

var _ MarketAdapter = (*httpMarketAdapter)(nil)
