// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Default paging and sorting values applied when the caller omits them.
const (
	DefaultHistoryLimit = 30
	DefaultSearchLimit  = 20
	DefaultActionsLimit = 20

	DefaultSearchSortBy = "price asc"
	DefaultSearchStatus = "listed"
)

// Page is an offset/limit window over an upstream list.
type Page struct {
	// Offset is the number of entries to skip. Must be >= 0.
	Offset int `json:"offset"`

	// Limit is the maximum number of entries to return. Must be >= 1.
	Limit int `json:"limit"`
}

// WalletHistoryQuery selects a page of the wallet ledger.
type WalletHistoryQuery struct {
	Page

	// Types is a comma-separated list of ledger entry types to keep.
	// Nil means "no filter" and is never sent upstream.
	Types *string `json:"types,omitempty"`
}

// SearchQuery describes a marketplace NFT search.
//
// Filter fields are comma-joined lists; a nil filter is omitted from the
// upstream request entirely.
type SearchQuery struct {
	Page

	Collections *string `json:"filter_by_collections,omitempty"`
	Backdrops   *string `json:"filter_by_backdrops,omitempty"`
	Symbols     *string `json:"filter_by_symbols,omitempty"`
	Models      *string `json:"filter_by_models,omitempty"`

	// SortBy is the upstream sort expression, e.g. "price asc".
	SortBy string `json:"sort_by"`

	// Status restricts results by listing status, e.g. "listed".
	Status string `json:"status"`
}

// NFTPurchase identifies one NFT to buy at the price the caller agreed to.
type NFTPurchase struct {
	// ID is the marketplace NFT identifier.
	ID string `json:"id"`

	// Price is a decimal string. It is validated locally and forwarded
	// unchanged.
	Price string `json:"price"`
}

// BuyRequest is the body of a batch purchase. All entries are bought in a
// single upstream call.
type BuyRequest struct {
	NFTDetails []NFTPurchase `json:"nft_details"`
}

// WithdrawRequest is the body of a batch withdrawal of gifts to Telegram.
type WithdrawRequest struct {
	GiftIDs []string `json:"gift_ids"`
}
