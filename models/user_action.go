// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserActionMetadata holds revenue details attached to a marketplace action.
type UserActionMetadata struct {
	SellerRevenue  *string `json:"seller_revenue"`
	CashbackAmount *string `json:"cashback_amount"`
}

// UserAction is a marketplace activity record (listing, purchase, offer, ...).
type UserAction struct {
	// InitiatorUserID is the Telegram user that performed the action.
	InitiatorUserID int64 `json:"initiator_user_id"`

	NFTID string `json:"nft_id"`

	// OfferID is set only for offer-related actions.
	OfferID *string `json:"offer_id"`

	Type      string `json:"type"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`

	ReferrerRevenue *string `json:"referrer_revenue"`

	CollectionID string             `json:"collection_id"`
	Metadata     UserActionMetadata `json:"metadata"`

	NFT *NFTInfo `json:"nft"`
}

// UserActions is a page of marketplace actions in upstream order.
type UserActions struct {
	Actions []UserAction `json:"actions"`
}
