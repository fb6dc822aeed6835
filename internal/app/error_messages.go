// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// market proxy adapter, services and handlers.
//
// All Msg* constants are human-readable message strings that end up in the
// "detail" field of error responses. Keeping them in one place keeps the
// wording identical on every route.
package app

const (
	// MsgInvalidDataProvided prefixes every local validation failure
	// (bad offset or limit, empty purchase list, malformed price, ...).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when a buy or withdraw body cannot be
	// decoded into the expected shape.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidQueryParam is returned when a numeric query parameter is not
	// an integer.
	MsgInvalidQueryParam = "invalid query parameter"

	// MsgRequestTooLarge is returned when a buy or withdraw body exceeds the
	// accepted size.
	MsgRequestTooLarge = "request body is too large"
)

// Fixed per-operation messages relayed to the caller whenever the upstream
// call fails, whatever the upstream said. The upstream body is never exposed.
const (
	MsgFailedToFetchConfig        = "Failed to fetch config"
	MsgFailedToFetchWalletLimits  = "Failed to fetch wallet limits"
	MsgFailedToFetchWalletHistory = "Failed to fetch wallet history"
	MsgFailedToFetchWalletBalance = "Failed to fetch wallet balance"
	MsgFailedToListNFTs           = "Failed to list NFTs"
	MsgFailedToSearchNFTs         = "Failed to search NFTs"
	MsgFailedToFetchBackdrops     = "Failed to fetch backdrops"
	MsgFailedToFetchFloorPrices   = "Failed to fetch floor prices"
	MsgFailedToBuyNFTs            = "Failed to buy NFT(s)"
	MsgFailedToWithdrawNFTs       = "Failed to withdraw NFT(s)"
	MsgFailedToFetchUserActions   = "Failed to fetch user actions"
)
