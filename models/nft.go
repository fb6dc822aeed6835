// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// NFTAttribute is a single trait of an NFT (model, symbol, backdrop, ...).
type NFTAttribute struct {
	// Type is the trait name.
	Type string `json:"type"`

	// Value is any JSON scalar. It is kept as raw JSON so numbers and
	// strings are relayed byte-for-byte.
	Value json.RawMessage `json:"value"`

	// RarityPerMille is relayed byte-for-byte, null and quoted values included.
	RarityPerMille json.RawMessage `json:"rarity_per_mille"`
}

// NFTInfo is the NFT representation embedded into wallet history entries and
// user actions.
type NFTInfo struct {
	ID                       string         `json:"id"`
	Name                     string         `json:"name"`
	PhotoURL                 *string        `json:"photo_url"`
	CollectionID             string         `json:"collection_id"`
	ExternalCollectionNumber int64          `json:"external_collection_number"`
	Status                   string         `json:"status"`
	AnimationURL             *string        `json:"animation_url"`
	HasAnimation             bool           `json:"has_animation"`
	Attributes               []NFTAttribute `json:"attributes"`
	EmojiID                  *string        `json:"emoji_id"`
	IsOwned                  *bool          `json:"is_owned"`
	FloorPrice               *string        `json:"floor_price"`
}

// NFTItem is an NFT as returned by the listing endpoint. Unlike [NFTInfo] it
// carries the listing price and the Telegram gift identifier.
type NFTItem struct {
	ID                       string         `json:"id"`
	TgID                     string         `json:"tg_id"`
	CollectionID             string         `json:"collection_id"`
	ExternalCollectionNumber int64          `json:"external_collection_number"`
	Name                     string         `json:"name"`
	PhotoURL                 *string        `json:"photo_url"`
	Price                    *string        `json:"price"`
	Attributes               []NFTAttribute `json:"attributes"`
	ListedAt                 string         `json:"listed_at"`
	Status                   string         `json:"status"`
	AnimationURL             *string        `json:"animation_url"`
	EmojiID                  *string        `json:"emoji_id"`
	HasAnimation             bool           `json:"has_animation"`
	UnlocksAt                string         `json:"unlocks_at"`
}

// NFTList is the full listing of the authenticated user's NFTs.
type NFTList struct {
	NFTs []NFTItem `json:"nfts"`
}
