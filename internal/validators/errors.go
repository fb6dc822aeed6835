package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOffset     = errors.New("offset must be greater than or equal to 0")
	ErrInvalidLimit      = errors.New("limit must be greater than or equal to 1")
	ErrEmptyNFTDetails   = errors.New("nft_details list cannot be empty")
	ErrInvalidNFTID      = errors.New("nft id is required")
	ErrInvalidPrice      = errors.New("price must be a positive decimal string")
	ErrEmptyGiftIDs      = errors.New("gift_ids list cannot be empty")
	ErrInvalidGiftID     = errors.New("gift id is required")
	ErrInvalidSortBy     = errors.New("sort_by is required")
	ErrInvalidSaleStatus = errors.New("status is required")
)
