// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound side of the market proxy: one
// shared HTTP client talking to the upstream marketplace REST API.
//
// The primary abstraction is [MarketAdapter], which decouples the service
// layer from the upstream protocol. [NewMarketAdapter] returns the resty
// based implementation configured with the fixed identity headers, base URL
// and request timeout.
//
// Every failed call returns an [*UpstreamError] carrying the HTTP status the
// proxy should answer with and a fixed message naming the failed operation.
// Callers inspect it with [errors.As]; the cause is exposed through
// [errors.Is] ([ErrUpstreamStatus], [ErrUpstreamTimeout],
// [ErrUpstreamUnavailable], [ErrMalformedUpstreamBody]).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/market-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/market_adapter_mock.go -package=mock

// MarketAdapter forwards marketplace operations to the upstream API. Each
// method performs exactly one upstream round trip; nothing is retried.
type MarketAdapter interface {
	// GetConfig returns the marketplace commission, cashback, deposit wallet
	// and USDT exchange rate.
	GetConfig(ctx context.Context) (models.MarketConfig, error)

	// GetWalletLimits returns the per-transaction and daily limits of the
	// authenticated wallet.
	GetWalletLimits(ctx context.Context) (models.WalletLimits, error)

	// GetWalletHistory returns a page of wallet ledger entries. A nil
	// query.Types is not sent upstream.
	GetWalletHistory(ctx context.Context, query models.WalletHistoryQuery) (models.WalletHistory, error)

	// GetWalletBalance returns the current and frozen balance.
	GetWalletBalance(ctx context.Context) (models.WalletBalance, error)

	// ListNFTs returns the NFTs owned by the authenticated user.
	ListNFTs(ctx context.Context) (models.NFTList, error)

	// SearchNFTs runs a marketplace search and returns the upstream document
	// untouched. Nil filters are not sent upstream.
	SearchNFTs(ctx context.Context, query models.SearchQuery) (json.RawMessage, error)

	// GetBackdrops returns the backdrop filter catalogue in upstream order.
	GetBackdrops(ctx context.Context) ([]models.Backdrop, error)

	// GetBackdropFloors returns the floor price per backdrop name.
	GetBackdropFloors(ctx context.Context) (models.FloorPrices, error)

	// BuyNFTs purchases all entries of req in one upstream call. 200 and 201
	// are both success.
	BuyNFTs(ctx context.Context, req models.BuyRequest) (json.RawMessage, error)

	// WithdrawNFTs withdraws the listed gifts in one upstream call. 200 and
	// 201 are both success.
	WithdrawNFTs(ctx context.Context, req models.WithdrawRequest) (json.RawMessage, error)

	// GetUserActions returns a page of the user's marketplace activity.
	GetUserActions(ctx context.Context, page models.Page) (models.UserActions, error)

	// Close releases the idle connections of the shared client.
	Close()
}
