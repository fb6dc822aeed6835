// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WalletBalance is the current balance of the authenticated user's wallet.
// Amounts are decimal strings and are never converted to floating point.
type WalletBalance struct {
	// Balance is the spendable amount.
	Balance string `json:"balance"`

	// FrozenFunds is the amount locked by pending offers and withdrawals.
	FrozenFunds string `json:"frozen_funds"`
}

// WalletLimits describes per-transaction and daily spending limits.
type WalletLimits struct {
	MaxPerTransaction string `json:"max_per_transaction"`
	MaxDaily          string `json:"max_daily"`
	DailyUsed         string `json:"daily_used"`
	DailyRemaining    string `json:"daily_remaining"`
}

// WalletAction is a single ledger entry of the wallet history.
//
// Pointer fields are optional: they are emitted as JSON null when the
// upstream omitted them or sent null, and are never replaced by defaults.
type WalletAction struct {
	// Type is the ledger operation kind (deposit, withdraw, buy, sell, ...).
	Type string `json:"type"`

	// FromWallet is the counterparty wallet address.
	FromWallet string `json:"from_wallet"`

	// AddedAt is the upstream timestamp string, relayed as-is.
	AddedAt string `json:"added_at"`

	Amount string `json:"amount"`

	// TxHash and TxLt identify the on-chain transaction when there is one.
	TxHash *string `json:"tx_hash"`
	TxLt   *string `json:"tx_lt"`

	BalanceBefore string `json:"balance_before"`
	BalanceAfter  string `json:"balance_after"`

	// RelatedEntityID and RelatedEntityType point to the marketplace object
	// (offer, NFT, ...) that caused the entry.
	RelatedEntityID   *string `json:"related_entity_id"`
	RelatedEntityType *string `json:"related_entity_type"`

	Description string `json:"description"`

	// NFT is the asset involved in the entry, if any.
	NFT *NFTInfo `json:"nft"`
}

// WalletHistory is the page of ledger entries returned by the upstream,
// in upstream order.
type WalletHistory struct {
	Actions []WalletAction `json:"actions"`
}
