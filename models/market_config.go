package models

// MarketConfig is the marketplace-wide configuration published by the
// upstream at GET /market/config.
type MarketConfig struct {
	// Commission is the marketplace fee charged on every sale.
	Commission string `json:"commission"`

	// UserCashback is the share of the fee returned to the buyer.
	UserCashback string `json:"user_cashback"`

	// DepositWallet is the on-chain address users top up their balance with.
	DepositWallet string `json:"deposit_wallet"`

	// USDTCourse is the current USDT exchange rate.
	USDTCourse string `json:"usdt_course"`
}
