package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/market-proxy/models"
	"github.com/shopspring/decimal"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldOffset targets Page.Offset, which must be >= 0.
	FieldOffset = "offset"

	// FieldLimit targets Page.Limit, which must be >= 1.
	FieldLimit = "limit"

	// FieldSortBy targets SearchQuery.SortBy.
	FieldSortBy = "sort_by"

	// FieldStatus targets SearchQuery.Status.
	FieldStatus = "status"

	// FieldNFTDetails targets the purchase list of a BuyRequest.
	FieldNFTDetails = "nft_details"

	// FieldNFTID targets NFTPurchase.ID.
	FieldNFTID = "id"

	// FieldPrice targets NFTPurchase.Price.
	FieldPrice = "price"

	// FieldGiftIDs targets the id list of a WithdrawRequest.
	FieldGiftIDs = "gift_ids"
)

// MarketValidator implements Validator for every marketplace request shape.
type MarketValidator struct {
}

func NewMarketValidator() Validator {
	return &MarketValidator{}
}

func (v *MarketValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Page:
		return v.validatePage(ctx, value, fields...)
	case *models.Page:
		return v.validatePage(ctx, *value, fields...)

	case models.WalletHistoryQuery:
		return v.validatePage(ctx, value.Page, fields...)
	case *models.WalletHistoryQuery:
		return v.validatePage(ctx, value.Page, fields...)

	case models.SearchQuery:
		return v.validateSearchQuery(ctx, value, fields...)
	case *models.SearchQuery:
		return v.validateSearchQuery(ctx, *value, fields...)

	case models.BuyRequest:
		return v.validateBuyRequest(ctx, value, fields...)
	case *models.BuyRequest:
		return v.validateBuyRequest(ctx, *value, fields...)

	case models.NFTPurchase:
		return v.validateNFTPurchase(ctx, value, fields...)
	case *models.NFTPurchase:
		return v.validateNFTPurchase(ctx, *value, fields...)

	case models.WithdrawRequest:
		return v.validateWithdrawRequest(ctx, value, fields...)
	case *models.WithdrawRequest:
		return v.validateWithdrawRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MarketValidator) validatePage(ctx context.Context, page models.Page, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOffset, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldOffset:
			if page.Offset < 0 {
				return ErrInvalidOffset
			}
		case FieldLimit:
			if page.Limit < 1 {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketValidator) validateSearchQuery(ctx context.Context, query models.SearchQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOffset, FieldLimit, FieldSortBy, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldOffset, FieldLimit:
			if err := v.validatePage(ctx, query.Page, f); err != nil {
				return err
			}
		case FieldSortBy:
			if strings.TrimSpace(query.SortBy) == "" {
				return ErrInvalidSortBy
			}
		case FieldStatus:
			if strings.TrimSpace(query.Status) == "" {
				return ErrInvalidSaleStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketValidator) validateBuyRequest(ctx context.Context, request models.BuyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNFTDetails}
	}

	for _, f := range fields {
		switch f {
		case FieldNFTDetails:
			if len(request.NFTDetails) == 0 {
				return ErrEmptyNFTDetails
			}
			for i, purchase := range request.NFTDetails {
				if err := v.validateNFTPurchase(ctx, purchase); err != nil {
					return fmt.Errorf("nft_details[%d]: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketValidator) validateNFTPurchase(ctx context.Context, purchase models.NFTPurchase, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNFTID, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldNFTID:
			if strings.TrimSpace(purchase.ID) == "" {
				return ErrInvalidNFTID
			}
		case FieldPrice:
			price, err := decimal.NewFromString(strings.TrimSpace(purchase.Price))
			if err != nil || !price.IsPositive() {
				return ErrInvalidPrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketValidator) validateWithdrawRequest(ctx context.Context, request models.WithdrawRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGiftIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldGiftIDs:
			if len(request.GiftIDs) == 0 {
				return ErrEmptyGiftIDs
			}
			for i, id := range request.GiftIDs {
				if strings.TrimSpace(id) == "" {
					return fmt.Errorf("gift_ids[%d]: %w", i, ErrInvalidGiftID)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
