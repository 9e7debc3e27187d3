package trading

import "github.com/shopspring/decimal"

// OrderRequest asks a venue client to place one order. A set LimitPrice is
// the sole signal that selects a limit order; leaving it nil places a market
// order. There is no separate type field to keep in sync.
type OrderRequest struct {
	AssetPair  AssetPair        `json:"asset_pair"`
	Amount     Amount           `json:"amount"`
	Side       OrderSide        `json:"side"`
	LimitPrice *decimal.Decimal `json:"limit_price,omitempty"`
}
